package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

const transcribePrompt = `You transcribe a document or image to markdown.
Reproduce the readable content faithfully: headers, paragraphs, lists and
tables as markdown. Do not summarize, translate or add commentary.
Return only the markdown.`

// Process runs OCR through the Gemini generateContent API. Only inline
// base64 payloads are supported; URL inputs must be downloaded first
// (the download_and_ocr tool does exactly that).
func (e *Engine) Process(ctx context.Context, in ocr.Request) (ocr.Result, error) {
	if e.APIKey == "" {
		return ocr.Result{}, errors.New("GEMINI_API_KEY is empty")
	}
	if in.Document.Kind != ocr.KindBase64 {
		return ocr.Result{}, errors.New("gemini: url input not supported; use download_and_ocr")
	}

	data, hint, err := util.DecodeBase64MaybeDataURL(in.Document.Base64)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("gemini: bad base64: %w", err)
	}
	mime := util.PickMediaType(in.Document.MediaType, hint, data)

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return ocr.Result{}, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return ocr.Result{}, fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(transcribePrompt)},
	}

	resp, err := m.GenerateContent(ctx,
		genai.Blob{MIMEType: mime, Data: data},
		genai.Text("Transcribe this document to markdown."),
	)
	if err != nil {
		return ocr.Result{}, err
	}

	text := collectText(resp)
	if strings.TrimSpace(text) == "" {
		return ocr.Result{}, errors.New("gemini: empty response")
	}
	text = util.StripCodeFences(text)

	return ocr.Result{
		Text:  text,
		Pages: []ocr.Page{{Index: 0, Markdown: text}},
		Model: e.Model,
	}, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}

func ptrFloat32(v float32) *float32 { return &v }
