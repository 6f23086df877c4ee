package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MISTRAL_API_KEY", "test-key")

	cfg := Load()
	assert.Equal(t, "test-key", cfg.MistralAPIKey)
	assert.Equal(t, "mistral-ocr-latest", cfg.MistralModel)
	assert.Equal(t, "mistral", cfg.Engine)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, "8000", cfg.Port)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MISTRAL_API_KEY", "test-key")
	t.Setenv("MISTRAL_OCR_MODEL", "mistral-ocr-2505")
	t.Setenv("OCR_ENGINE", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("MCP_TRANSPORT", "sse")
	t.Setenv("PORT", "9000")

	cfg := Load()
	assert.Equal(t, "mistral-ocr-2505", cfg.MistralModel)
	assert.Equal(t, "gemini", cfg.Engine)
	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.Equal(t, "sse", cfg.Transport)
	assert.Equal(t, "9000", cfg.Port)
}
