package ocr

// DocumentKind selects how the document payload reaches the provider.
type DocumentKind string

const (
	KindDocumentURL DocumentKind = "document_url"
	KindImageURL    DocumentKind = "image_url"
	KindBase64      DocumentKind = "base64"
)

// Document is the input to an OCR run. Exactly one of URL or Base64 is set,
// per Kind. MediaType is required for base64 payloads.
type Document struct {
	Kind      DocumentKind
	URL       string
	Base64    string
	MediaType string
}

type Request struct {
	Document           Document
	IncludeImageBase64 bool
}

// Page is one page of provider output. Markdown preserves document structure
// (headers, lists, tables).
type Page struct {
	Index    int     `json:"index"`
	Markdown string  `json:"markdown"`
	Images   []Image `json:"images,omitempty"`
}

// Image is an extracted figure with its bounding box. Base64 is only present
// when the request asked for it.
type Image struct {
	ID           string `json:"id"`
	TopLeftX     int    `json:"top_left_x"`
	TopLeftY     int    `json:"top_left_y"`
	BottomRightX int    `json:"bottom_right_x"`
	BottomRightY int    `json:"bottom_right_y"`
	Base64       string `json:"image_base64,omitempty"`
}

type Result struct {
	// Text is the page markdowns joined with blank lines.
	Text  string
	Pages []Page
	Model string
}

func (r Result) PageCount() int { return len(r.Pages) }
