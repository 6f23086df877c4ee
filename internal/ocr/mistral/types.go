package mistral

import (
	"strings"

	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr"
)

// Response is the /v1/ocr envelope, reduced to the fields we consume.
type Response struct {
	Model     string     `json:"model"`
	Pages     []Page     `json:"pages"`
	UsageInfo *UsageInfo `json:"usage_info,omitempty"`
}

type Page struct {
	Index      int         `json:"index"`
	Markdown   string      `json:"markdown"`
	Images     []Image     `json:"images,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

type Image struct {
	ID           string `json:"id"`
	TopLeftX     int    `json:"top_left_x"`
	TopLeftY     int    `json:"top_left_y"`
	BottomRightX int    `json:"bottom_right_x"`
	BottomRightY int    `json:"bottom_right_y"`
	ImageBase64  string `json:"image_base64,omitempty"`
}

type Dimensions struct {
	DPI    int `json:"dpi"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type UsageInfo struct {
	PagesProcessed int `json:"pages_processed"`
	DocSizeBytes   int `json:"doc_size_bytes"`
}

func (r Response) toResult() ocr.Result {
	res := ocr.Result{Model: r.Model}
	var parts []string
	for _, p := range r.Pages {
		page := ocr.Page{Index: p.Index, Markdown: p.Markdown}
		for _, img := range p.Images {
			page.Images = append(page.Images, ocr.Image{
				ID:           img.ID,
				TopLeftX:     img.TopLeftX,
				TopLeftY:     img.TopLeftY,
				BottomRightX: img.BottomRightX,
				BottomRightY: img.BottomRightY,
				Base64:       img.ImageBase64,
			})
		}
		res.Pages = append(res.Pages, page)
		if s := strings.TrimSpace(p.Markdown); s != "" {
			parts = append(parts, s)
		}
	}
	res.Text = strings.Join(parts, "\n\n")
	return res
}
