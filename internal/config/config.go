package config

import (
	"log"
	"os"
)

type Config struct {
	MistralAPIKey string
	MistralModel  string

	GeminiAPIKey string
	GeminiModel  string

	// Engine selects the OCR backend: "mistral" (default) or "gemini".
	Engine string

	// Transport is "stdio" (default) or "sse".
	Transport string
	Port      string

	DatabaseURL string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		MistralAPIKey: mustEnv("MISTRAL_API_KEY"),
		MistralModel:  getEnv("MISTRAL_OCR_MODEL", "mistral-ocr-latest"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		Engine: getEnv("OCR_ENGINE", "mistral"),

		Transport: getEnv("MCP_TRANSPORT", "stdio"),
		Port:      getEnv("PORT", "8000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
