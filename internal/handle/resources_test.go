package handle

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr"
)

func readResourceRequest(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func TestStaticResources(t *testing.T) {
	for uri, want := range map[string]string{
		"mistral-ocr://supported-formats": supportedFormatsDoc,
		"mistral-ocr://usage-examples":    usageExamplesDoc,
	} {
		contents, err := staticResource(want)(context.Background(), readResourceRequest(uri))
		require.NoError(t, err)
		require.Len(t, contents, 1)

		tc, ok := contents[0].(mcp.TextResourceContents)
		require.True(t, ok)
		assert.Equal(t, uri, tc.URI)
		assert.Equal(t, "text/markdown", tc.MIMEType)
		assert.Equal(t, want, tc.Text)
	}
}

func TestRecentRunsWithoutStore(t *testing.T) {
	h := New(&ocr.Engines{Mistral: new(MockEngine)}, zaptest.NewLogger(t))
	_, err := h.RecentRuns(context.Background(), readResourceRequest("mistral-ocr://recent-runs"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestRecentRunsStoreUnavailable(t *testing.T) {
	h := New(&ocr.Engines{Mistral: new(MockEngine)}, zaptest.NewLogger(t)).
		WithRuns(brokenRunRepo(t))
	_, err := h.RecentRuns(context.Background(), readResourceRequest("mistral-ocr://recent-runs"))
	require.Error(t, err, "store failures surface to the resource read")
}
