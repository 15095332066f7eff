package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned doctor photo",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/doctors/jane-a1b2c3d4.jpg",
			want: "doctors/jane-a1b2c3d4",
		},
		{
			name: "versioned avatar",
			url:  "https://res.cloudinary.com/demo/image/upload/v99/avatars/me-12345678.png",
			want: "avatars/me-12345678",
		},
		{
			name: "no version segment",
			url:  "https://res.cloudinary.com/demo/image/upload/doctors/jane.jpg",
			want: "doctors/jane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractPublicID(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPublicIDRejectsForeignURL(t *testing.T) {
	_, err := extractPublicID("https://example.com/some/image.jpg")
	assert.Error(t, err)
}
