package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDataURI(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "/static/uploads")

	url, err := store.SaveDataURI("data:image/png;base64,aGVsbG8gd29ybGQ=")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/static/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	rel := strings.TrimPrefix(url, "/static/uploads/")
	raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(raw))
}

func TestSaveDataURI_Rejections(t *testing.T) {
	store := NewStore(t.TempDir(), "/static/uploads")

	cases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain string", "just-a-string", ErrNotDataURI},
		{"missing base64 marker", "data:image/png,aGVsbG8=", ErrNotDataURI},
		{"unsupported mime", "data:image/tiff;base64,aGVsbG8=", ErrInvalidMimeType},
		{"broken base64", "data:image/png;base64,%%%", ErrNotDataURI},
		{"empty payload", "data:image/png;base64,", ErrEmptyImage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.SaveDataURI(tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
