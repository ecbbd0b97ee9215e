// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abcdef1!", true},
		{"Passw0rd$", true},
		{"XYZabc9?", true},
		{"abcdef1!", false},  // no uppercase
		{"Abcdefg!", false},  // no digit
		{"Abcdefg1", false},  // no symbol
		{"Ab1!", false},      // too short
		{"Abcdef1#", false},  // '#' outside the accepted symbol set
		{"Abcdef1 !", false}, // space not accepted
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestValidateStructStrongPasswordTag(t *testing.T) {
	type form struct {
		Password string `validate:"required,strong_password"`
	}

	assert.NoError(t, ValidateStruct(&form{Password: "Abcdef1!"}))

	err := ValidateStruct(&form{Password: "weak"})
	assert.Error(t, err)

	verrs := GetValidationErrors(err)
	assert.Len(t, verrs, 1)
	assert.Equal(t, "strong_password", verrs[0].Tag)
}
