package videoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	valid := []struct {
		name string
		ref  string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch url without scheme", "youtube.com/watch?v=dQw4w9WgXcQ"},
		{"short url", "https://youtu.be/dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"v path", "http://youtube.com/v/dQw4w9WgXcQ"},
		{"bare id", "dQw4w9WgXcQ"},
	}

	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Extract(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, "dQw4w9WgXcQ", id)
		})
	}

	invalid := []struct {
		name string
		ref  string
	}{
		{"empty", ""},
		{"random text", "not a url"},
		{"wrong host", "https://vimeo.com/123456"},
		{"id too short", "https://youtu.be/short"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.ref)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
