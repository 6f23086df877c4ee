package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaTypeByExt(t *testing.T) {
	cases := []struct {
		name  string
		want  string
		known bool
	}{
		{"paper.pdf", "application/pdf", true},
		{"slides.PPTX", "application/vnd.openxmlformats-officedocument.presentationml.presentation", true},
		{"report.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"scan.png", "image/png", true},
		{"photo.JPG", "image/jpeg", true},
		{"photo.jpeg", "image/jpeg", true},
		{"pic.avif", "image/avif", true},
		{"notes.txt", "", false},
		{"noext", "", false},
	}
	for _, tc := range cases {
		mt, ok := MediaTypeByExt(tc.name)
		assert.Equal(t, tc.known, ok, tc.name)
		assert.Equal(t, tc.want, mt, tc.name)
	}
}

func TestSniffMediaType(t *testing.T) {
	assert.Equal(t, "image/jpeg", SniffMediaType([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	assert.Equal(t, "image/png", SniffMediaType([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}))
	assert.Equal(t, "application/pdf", SniffMediaType([]byte("%PDF-1.7 rest")))
	assert.Equal(t, "application/octet-stream", SniffMediaType(nil))
}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	payload := []byte("%PDF-1.4 hello")
	b64 := base64.StdEncoding.EncodeToString(payload)

	got, hint, err := DecodeBase64MaybeDataURL(b64)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Empty(t, hint)

	got, hint, err = DecodeBase64MaybeDataURL("data:application/pdf;base64," + b64)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, "application/pdf", hint)

	_, _, err = DecodeBase64MaybeDataURL("!!! not base64 !!!")
	assert.Error(t, err)
}

func TestPickMediaType(t *testing.T) {
	pdf := []byte("%PDF-1.4")

	// explicit wins
	assert.Equal(t, "image/png", PickMediaType("image/png", "application/pdf", pdf))
	// then the data:URI hint
	assert.Equal(t, "application/pdf", PickMediaType("", "application/pdf", []byte{0xFF, 0xD8}))
	// then detection
	assert.Equal(t, "application/pdf", PickMediaType("", "", pdf))
}

func TestIsImageMediaType(t *testing.T) {
	assert.True(t, IsImageMediaType("image/png"))
	assert.True(t, IsImageMediaType(" IMAGE/JPEG "))
	assert.False(t, IsImageMediaType("application/pdf"))
}

func TestMakeDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,abc", MakeDataURL("image/png", "abc"))
}
