package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/store"
)

type Handle struct {
	engs   *ocr.Engines
	engine string
	runs   *store.RunRepo
	httpc  *http.Client
	log    *zap.Logger
}

func New(engs *ocr.Engines, log *zap.Logger) *Handle {
	return &Handle{
		engs:   engs,
		engine: "mistral",
		httpc:  &http.Client{Timeout: 60 * time.Second},
		log:    log,
	}
}

// WithEngine selects the OCR backend by name ("mistral", "gemini").
func (h *Handle) WithEngine(name string) *Handle {
	if name != "" {
		h.engine = name
	}
	return h
}

// WithRuns enables run-history recording.
func (h *Handle) WithRuns(r *store.RunRepo) *Handle {
	h.runs = r
	return h
}

// WithHTTPClient overrides the client used by download_and_ocr.
func (h *Handle) WithHTTPClient(c *http.Client) *Handle {
	if c != nil {
		h.httpc = c
	}
	return h
}

// Envelope is the fixed response record every tool returns. Failures are
// reported inside it, never as protocol errors. Text is always serialized:
// success implies the text key is present even when the provider returned
// zero pages.
type Envelope struct {
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Text       string         `json:"text"`
	OutputFile string         `json:"output_file,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func fail(err error, metadata map[string]any) Envelope {
	return Envelope{Success: false, Error: err.Error(), Metadata: metadata}
}

func toolResult(env Envelope) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}

// record persists the run when a store is configured; failures are logged only.
func (h *Handle) record(ctx context.Context, run store.Run) {
	if h.runs == nil {
		return
	}
	if err := h.runs.Insert(ctx, run); err != nil {
		h.log.Warn("run history insert failed", zap.String("tool", run.Tool), zap.Error(err))
	}
}
