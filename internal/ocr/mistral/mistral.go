package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/util"
)

const defaultEndpoint = "https://api.mistral.ai/v1/ocr"

type Engine struct {
	APIKey   string
	Model    string
	Endpoint string
	httpc    *http.Client
}

func New(key, model string) *Engine {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second, // TCP connect
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		// OCR of large PDFs can take a while before the first byte arrives
		ResponseHeaderTimeout: 120 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   100,
	}

	return &Engine{
		APIKey:   key,
		Model:    model,
		Endpoint: defaultEndpoint,
		httpc: &http.Client{
			Timeout:   0,
			Transport: tr,
		},
	}
}

// WithHTTPClient overrides the internal HTTP client (e.g., for custom timeouts or tracing).
func (e *Engine) WithHTTPClient(c *http.Client) *Engine {
	if c != nil {
		e.httpc = c
	}
	return e
}

// WithEndpoint overrides the OCR endpoint URL.
func (e *Engine) WithEndpoint(url string) *Engine {
	if url != "" {
		e.Endpoint = url
	}
	return e
}

func (e *Engine) Name() string     { return "mistral" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Process(ctx context.Context, in ocr.Request) (ocr.Result, error) {
	if e.APIKey == "" {
		return ocr.Result{}, fmt.Errorf("MISTRAL_API_KEY is empty")
	}

	doc, err := documentChunk(in.Document)
	if err != nil {
		return ocr.Result{}, err
	}

	body := map[string]any{
		"model":                e.Model,
		"document":             doc,
		"include_image_base64": in.IncludeImageBase64,
	}

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, "POST", e.Endpoint, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return ocr.Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return ocr.Result{}, fmt.Errorf("mistral ocr %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ocr.Result{}, fmt.Errorf("mistral ocr: bad JSON: %w", err)
	}
	return out.toResult(), nil
}

// documentChunk shapes the request's document part. Base64 payloads are sent
// as data URLs, which the endpoint accepts in place of a fetchable URL.
func documentChunk(d ocr.Document) (map[string]any, error) {
	switch d.Kind {
	case ocr.KindDocumentURL:
		return map[string]any{"type": "document_url", "document_url": d.URL}, nil
	case ocr.KindImageURL:
		return map[string]any{"type": "image_url", "image_url": d.URL}, nil
	case ocr.KindBase64:
		if d.MediaType == "" {
			return nil, fmt.Errorf("mistral ocr: media type is required for base64 documents")
		}
		dataURL := util.MakeDataURL(d.MediaType, d.Base64)
		if util.IsImageMediaType(d.MediaType) {
			return map[string]any{"type": "image_url", "image_url": dataURL}, nil
		}
		return map[string]any{"type": "document_url", "document_url": dataURL}, nil
	default:
		return nil, fmt.Errorf("mistral ocr: unknown document kind %q", d.Kind)
	}
}
