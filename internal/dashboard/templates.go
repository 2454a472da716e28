package dashboard

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/ziadkadry99/traindelay/internal/registry"
	"github.com/ziadkadry99/traindelay/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("dashboard").Funcs(template.FuncMap{
		"bullet": func() string { return render.FindingBullet },
	}).ParseFS(templateFS, "templates/*.html")
}

// indexData is the data passed to the index template.
type indexData struct {
	Title   string
	Pages   []string
	Current string
	Content template.HTML
}

// ServeIndex renders the full dashboard for the page in ?page= (Overview
// when absent).
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if page == "" {
		page = registry.OverviewPage
	}

	content, err := d.renderContent(r, page)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, registry.ErrUnknownPage) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	var buf bytes.Buffer
	err = d.tmpl.ExecuteTemplate(&buf, "index.html", indexData{
		Title:   d.title,
		Pages:   d.renderer.Pages(),
		Current: page,
		Content: content,
	})
	if err != nil {
		log.Printf("dashboard: executing index template: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// renderContent renders the main panel of a page as an HTML fragment.
func (d *Dashboard) renderContent(r *http.Request, id string) (template.HTML, error) {
	page, err := d.renderer.Page(r.Context(), id)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := d.tmpl.ExecuteTemplate(&buf, "content.html", page); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
