package handle

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "Mistral OCR"
	serverVersion = "1.0.0"
)

// NewServer builds the MCP server with every tool and resource registered.
func NewServer(h *Handle) *server.MCPServer {
	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool("ocr_document_url",
		mcp.WithDescription("Extract text from a document using Mistral OCR via URL. Supports pdf, pptx, docx, png, jpeg, jpg, avif."),
		mcp.WithString("document_url",
			mcp.Required(),
			mcp.Description("URL to the document"),
		),
		mcp.WithBoolean("include_image_base64",
			mcp.Description("Whether to include base64 encoded images in the response"),
			mcp.DefaultBool(false),
		),
	), h.OcrDocumentURL)

	s.AddTool(mcp.NewTool("ocr_document_base64",
		mcp.WithDescription("Extract text from a base64 encoded document using Mistral OCR."),
		mcp.WithString("document_base64",
			mcp.Required(),
			mcp.Description("Base64 encoded document content (plain or data:URI)"),
		),
		mcp.WithString("media_type",
			mcp.Required(),
			mcp.Description("MIME type of the document (e.g., 'application/pdf', 'image/png')"),
		),
		mcp.WithBoolean("include_image_base64",
			mcp.Description("Whether to include base64 encoded images in the response"),
			mcp.DefaultBool(false),
		),
	), h.OcrDocumentBase64)

	s.AddTool(mcp.NewTool("ocr_image_url",
		mcp.WithDescription("Extract text from an image using Mistral OCR via URL. Supports png, jpeg, jpg, avif."),
		mcp.WithString("image_url",
			mcp.Required(),
			mcp.Description("URL to the image"),
		),
		mcp.WithBoolean("include_image_base64",
			mcp.Description("Whether to include base64 encoded images in the response"),
			mcp.DefaultBool(false),
		),
	), h.OcrImageURL)

	s.AddTool(mcp.NewTool("download_and_ocr",
		mcp.WithDescription("Download a document or image from a URL and process it with OCR."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to download and process"),
		),
		mcp.WithBoolean("include_image_base64",
			mcp.Description("Whether to include base64 encoded images in the response"),
			mcp.DefaultBool(false),
		),
	), h.DownloadAndOcr)

	s.AddTool(mcp.NewTool("ocr_local_file",
		mcp.WithDescription("Run OCR on a local file and write the extracted markdown to disk."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the local file"),
		),
		mcp.WithString("output_path",
			mcp.Description("Where to write the markdown; defaults to the input path with a .md extension"),
		),
		mcp.WithBoolean("include_image_base64",
			mcp.Description("Whether to include base64 encoded images in the response"),
			mcp.DefaultBool(false),
		),
	), h.OcrLocalFile)

	s.AddResource(mcp.NewResource(
		"mistral-ocr://supported-formats",
		"Supported Formats",
		mcp.WithResourceDescription("Document and image formats the OCR tools accept"),
		mcp.WithMIMEType("text/markdown"),
	), staticResource(supportedFormatsDoc))

	s.AddResource(mcp.NewResource(
		"mistral-ocr://usage-examples",
		"Usage Examples",
		mcp.WithResourceDescription("Usage examples for the OCR tools"),
		mcp.WithMIMEType("text/markdown"),
	), staticResource(usageExamplesDoc))

	if h.runs != nil {
		s.AddResource(mcp.NewResource(
			"mistral-ocr://recent-runs",
			"Recent Runs",
			mcp.WithResourceDescription("History of the latest OCR tool calls"),
			mcp.WithMIMEType("application/json"),
		), h.RecentRuns)
	}

	return s
}
