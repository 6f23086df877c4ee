package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr"
)

func TestProcessMissingKey(t *testing.T) {
	e := New("", "gemini-2.5-flash")
	_, err := e.Process(context.Background(), ocr.Request{
		Document: ocr.Document{Kind: ocr.KindBase64, Base64: "aGk=", MediaType: "image/png"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestProcessRejectsURLInput(t *testing.T) {
	e := New("some-key", "gemini-2.5-flash")
	_, err := e.Process(context.Background(), ocr.Request{
		Document: ocr.Document{Kind: ocr.KindDocumentURL, URL: "https://example.com/doc.pdf"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url input not supported")
}

func TestProcessRejectsBadBase64(t *testing.T) {
	e := New("some-key", "gemini-2.5-flash")
	_, err := e.Process(context.Background(), ocr.Request{
		Document: ocr.Document{Kind: ocr.KindBase64, Base64: "!!!", MediaType: "image/png"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad base64")
}
