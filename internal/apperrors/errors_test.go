// internal/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "missing")))
	assert.Equal(t, KindValidation, KindOf(Newf(KindValidation, "bad %s", "input")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))

	// Kind survives wrapping
	wrapped := fmt.Errorf("handler: %w", New(KindConflict, "duplicate email"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "duplicate email", MessageOf(New(KindConflict, "duplicate email")))

	// Internal detail never reaches the client
	assert.Equal(t, "internal server error", MessageOf(Wrap(KindInternal, "db exploded", errors.New("dial tcp"))))
	assert.Equal(t, "internal server error", MessageOf(errors.New("plain")))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("record not found")
	err := Wrap(KindNotFound, "product not found", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "product not found")
	assert.Contains(t, err.Error(), "record not found")
}
