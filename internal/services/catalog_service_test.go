// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteImageURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		relPath string
		want    string
	}{
		{
			name:    "plain join",
			base:    "http://localhost:8080",
			relPath: "uploads/20250101_abcd1234.png",
			want:    "http://localhost:8080/uploads/20250101_abcd1234.png",
		},
		{
			name:    "trailing slash on base",
			base:    "https://cdn.example.com/",
			relPath: "uploads/a.jpg",
			want:    "https://cdn.example.com/uploads/a.jpg",
		},
		{
			name:    "leading slash on path",
			base:    "http://localhost:8080",
			relPath: "/uploads/a.jpg",
			want:    "http://localhost:8080/uploads/a.jpg",
		},
		{
			name:    "empty path yields empty URL",
			base:    "http://localhost:8080",
			relPath: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsoluteImageURL(tt.base, tt.relPath))
		})
	}
}
