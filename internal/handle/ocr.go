package handle

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/output"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/store"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/util"
)

// OcrDocumentURL extracts text from a document reachable by URL.
func (h *Handle) OcrDocumentURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentURL, err := req.RequireString("document_url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	include := req.GetBool("include_image_base64", false)

	meta := map[string]any{"document_url": documentURL}
	res, err := h.process(ctx, ocr.Request{
		Document:           ocr.Document{Kind: ocr.KindDocumentURL, URL: documentURL},
		IncludeImageBase64: include,
	})
	if err != nil {
		h.record(ctx, store.Run{Tool: "ocr_document_url", Source: documentURL, Error: err.Error()})
		return toolResult(fail(err, meta))
	}

	meta["include_image_base64"] = include
	meta["pages"] = res.PageCount()
	h.record(ctx, store.Run{Tool: "ocr_document_url", Source: documentURL, Pages: res.PageCount(), Success: true})
	return toolResult(Envelope{Success: true, Text: res.Text, Metadata: meta})
}

// OcrImageURL extracts text from an image reachable by URL.
func (h *Handle) OcrImageURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	imageURL, err := req.RequireString("image_url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	include := req.GetBool("include_image_base64", false)

	meta := map[string]any{"image_url": imageURL}
	res, err := h.process(ctx, ocr.Request{
		Document:           ocr.Document{Kind: ocr.KindImageURL, URL: imageURL},
		IncludeImageBase64: include,
	})
	if err != nil {
		h.record(ctx, store.Run{Tool: "ocr_image_url", Source: imageURL, Error: err.Error()})
		return toolResult(fail(err, meta))
	}

	meta["include_image_base64"] = include
	meta["pages"] = res.PageCount()
	h.record(ctx, store.Run{Tool: "ocr_image_url", Source: imageURL, Pages: res.PageCount(), Success: true})
	return toolResult(Envelope{Success: true, Text: res.Text, Metadata: meta})
}

// OcrDocumentBase64 extracts text from inline base64 content.
func (h *Handle) OcrDocumentBase64(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentBase64, err := req.RequireString("document_base64")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mediaType, err := req.RequireString("media_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	include := req.GetBool("include_image_base64", false)

	meta := map[string]any{"media_type": mediaType}

	decoded, hint, err := util.DecodeBase64MaybeDataURL(documentBase64)
	if err != nil {
		err = fmt.Errorf("invalid base64 content: %w", err)
		h.record(ctx, store.Run{Tool: "ocr_document_base64", Source: "base64", MediaType: mediaType, Error: err.Error()})
		return toolResult(fail(err, meta))
	}
	mediaType = util.PickMediaType(mediaType, hint, decoded)

	res, err := h.process(ctx, ocr.Request{
		Document: ocr.Document{
			Kind:      ocr.KindBase64,
			Base64:    base64.StdEncoding.EncodeToString(decoded),
			MediaType: mediaType,
		},
		IncludeImageBase64: include,
	})
	run := store.Run{Tool: "ocr_document_base64", Source: "base64", MediaType: mediaType, SizeBytes: int64(len(decoded))}
	if err != nil {
		run.Error = err.Error()
		h.record(ctx, run)
		return toolResult(fail(err, meta))
	}

	meta["include_image_base64"] = include
	meta["document_size_bytes"] = len(decoded)
	meta["pages"] = res.PageCount()
	run.Pages, run.Success = res.PageCount(), true
	h.record(ctx, run)
	return toolResult(Envelope{Success: true, Text: res.Text, Metadata: meta})
}

// DownloadAndOcr fetches a document over HTTP and runs OCR on the content.
func (h *Handle) DownloadAndOcr(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	include := req.GetBool("include_image_base64", false)

	meta := map[string]any{"url": url}

	body, contentType, err := h.download(ctx, url)
	if err != nil {
		h.record(ctx, store.Run{Tool: "download_and_ocr", Source: url, Error: err.Error()})
		return toolResult(fail(err, meta))
	}
	mediaType := util.PickMediaType("", contentType, body)

	res, err := h.process(ctx, ocr.Request{
		Document: ocr.Document{
			Kind:      ocr.KindBase64,
			Base64:    base64.StdEncoding.EncodeToString(body),
			MediaType: mediaType,
		},
		IncludeImageBase64: include,
	})
	run := store.Run{Tool: "download_and_ocr", Source: url, MediaType: mediaType, SizeBytes: int64(len(body))}
	if err != nil {
		run.Error = err.Error()
		h.record(ctx, run)
		return toolResult(fail(err, meta))
	}

	meta["content_type"] = mediaType
	meta["content_size_bytes"] = len(body)
	meta["include_image_base64"] = include
	meta["pages"] = res.PageCount()
	run.Pages, run.Success = res.PageCount(), true
	h.record(ctx, run)
	return toolResult(Envelope{Success: true, Text: res.Text, Metadata: meta})
}

// OcrLocalFile reads a file from disk, runs OCR and writes the markdown
// either to output_path or next to the input with a .md extension.
func (h *Handle) OcrLocalFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath, err := req.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath := req.GetString("output_path", "")
	include := req.GetBool("include_image_base64", false)

	meta := map[string]any{"file_path": filePath}

	if _, err := os.Stat(filePath); err != nil {
		err = fmt.Errorf("File not found: %s", filePath)
		h.record(ctx, store.Run{Tool: "ocr_local_file", Source: filePath, Error: err.Error()})
		return toolResult(fail(err, meta))
	}

	mediaType, ok := util.MediaTypeByExt(filePath)
	if !ok {
		ext := strings.ToLower(filepath.Ext(filePath))
		meta["file_extension"] = ext
		err = fmt.Errorf("Unsupported file type: %s", ext)
		h.record(ctx, store.Run{Tool: "ocr_local_file", Source: filePath, Error: err.Error()})
		return toolResult(fail(err, meta))
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		h.record(ctx, store.Run{Tool: "ocr_local_file", Source: filePath, MediaType: mediaType, Error: err.Error()})
		return toolResult(fail(err, meta))
	}

	res, err := h.process(ctx, ocr.Request{
		Document: ocr.Document{
			Kind:      ocr.KindBase64,
			Base64:    base64.StdEncoding.EncodeToString(data),
			MediaType: mediaType,
		},
		IncludeImageBase64: include,
	})
	run := store.Run{Tool: "ocr_local_file", Source: filePath, MediaType: mediaType, SizeBytes: int64(len(data))}
	if err != nil {
		run.Error = err.Error()
		h.record(ctx, run)
		return toolResult(fail(err, meta))
	}

	if outputPath == "" {
		outputPath = output.DerivePath(filePath)
	}
	if err := output.Write(outputPath, res.Text); err != nil {
		err = fmt.Errorf("failed to write output file: %w", err)
		run.Error = err.Error()
		h.record(ctx, run)
		return toolResult(fail(err, meta))
	}

	meta["media_type"] = mediaType
	meta["file_size_bytes"] = len(data)
	meta["include_image_base64"] = include
	meta["pages"] = res.PageCount()
	run.Pages, run.Success = res.PageCount(), true
	h.record(ctx, run)

	h.log.Info("ocr output written",
		zap.String("input", filePath),
		zap.String("output", outputPath),
		zap.Int("pages", res.PageCount()),
	)
	return toolResult(Envelope{Success: true, Text: res.Text, OutputFile: outputPath, Metadata: meta})
}

func (h *Handle) process(ctx context.Context, in ocr.Request) (ocr.Result, error) {
	engine, err := h.engs.GetEngine(h.engine)
	if err != nil {
		return ocr.Result{}, err
	}
	return engine.Process(ctx, in)
}

func (h *Handle) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := h.httpc.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("download %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	contentType := resp.Header.Get("Content-Type")
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	return body, contentType, nil
}
