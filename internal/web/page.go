package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/thenoetrevino/winedash/internal/models"
)

const (
	pageTitle   = "Wine Quality Analysis"
	selectLabel = "Select Wine Type for 3D Scatter Plot:"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Title       string
	SelectLabel string
	Options     []models.SelectionOption
	Default     models.Selection
}

func newPageData() pageData {
	return pageData{
		Title:       pageTitle,
		SelectLabel: selectLabel,
		Options:     models.SelectionOptions(),
		Default:     models.DefaultSelection,
	}
}

func renderIndex(w io.Writer, data pageData) error {
	return indexTemplate.Execute(w, data)
}
