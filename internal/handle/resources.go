package handle

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
)

const supportedFormatsDoc = `# Mistral OCR Supported Formats

## Document Formats
- PDF (.pdf)
- PowerPoint (.pptx)
- Word Documents (.docx)

## Image Formats
- PNG (.png)
- JPEG (.jpg, .jpeg)
- AVIF (.avif)

## Input Methods
- Document URL (direct link to file)
- Base64 encoded content
- Download from URL and process
- Local file path

## Output
- Extracted text in markdown format
- Preserved document structure (headers, paragraphs, lists, tables)
- Optional base64 encoded images with bounding boxes
`

const usageExamplesDoc = `# Mistral OCR Usage Examples

## Process Document by URL
` + "```" + `
ocr_document_url("https://example.com/document.pdf")
` + "```" + `

## Process Base64 Document
` + "```" + `
ocr_document_base64(base64_content, "application/pdf")
` + "```" + `

## Process Image by URL
` + "```" + `
ocr_image_url("https://example.com/image.png")
` + "```" + `

## Download and Process
` + "```" + `
download_and_ocr("https://example.com/file.pdf")
` + "```" + `

## Process a Local File
` + "```" + `
ocr_local_file("/path/to/paper.pdf")
ocr_local_file("/path/to/paper.pdf", output_path="/tmp/paper.md")
` + "```" + `

## With Image Base64 Output
` + "```" + `
ocr_document_url("https://example.com/doc.pdf", include_image_base64=True)
` + "```" + `
`

const recentRunsLimit = 50

// RecentRuns exposes the run history store as a JSON resource,
// newest call first.
func (h *Handle) RecentRuns(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.runs == nil {
		return nil, errors.New("run history is not configured; set DATABASE_URL")
	}
	runs, err := h.runs.Recent(ctx, recentRunsLimit)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(b),
		},
	}, nil
}

func staticResource(text string) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     text,
			},
		}, nil
	}
}
