package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// StartSSE serves the MCP server over SSE with a plain /healthz next to it.
// Blocks until the listener fails.
func StartSSE(addr string, mcpServer *server.MCPServer, log *zap.Logger) error {
	sse := server.NewSSEServer(mcpServer)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/", sse)

	log.Info("mcp sse server listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
