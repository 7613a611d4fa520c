package handler

import (
	"bytes"
	_ "embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	DefaultPersona string
	CTAURL         string
}

// Page serves the single-page UI at GET /
type Page struct {
	data pageData
}

func NewPage(defaultPersona, ctaURL string) *Page {
	return &Page{
		data: pageData{
			DefaultPersona: defaultPersona,
			CTAURL:         ctaURL,
		},
	}
}

func (h *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, h.data); err != nil {
		log.Printf("❌ Failed to render page: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
