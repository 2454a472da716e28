package dashboard

import (
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/traindelay/internal/render"
)

// Dashboard serves the delay analysis pages.
type Dashboard struct {
	renderer *render.Renderer
	title    string
	figsDir  string
	tmpl     *template.Template
}

// New creates a Dashboard. Plot files are served from figsDir.
func New(renderer *render.Renderer, title, figsDir string) (*Dashboard, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing dashboard templates: %w", err)
	}
	return &Dashboard{
		renderer: renderer,
		title:    title,
		figsDir:  figsDir,
		tmpl:     tmpl,
	}, nil
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/pages", d.handleListPages)
	r.Get("/api/pages/{id}", d.handleGetPage)
	r.Handle("/figs/*", http.StripPrefix("/figs/", http.FileServer(plotDir{http.Dir(d.figsDir)})))
	r.Get("/ws", d.handleWebSocket)
}

// plotDir serves plot files by name and refuses to open directories, so
// /figs/ never lists what is in the figures directory.
type plotDir struct {
	fs http.FileSystem
}

func (p plotDir) Open(name string) (http.File, error) {
	f, err := p.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
