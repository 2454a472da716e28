package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/traindelay/internal/dataset"
	"github.com/ziadkadry99/traindelay/internal/registry"
)

// DatasetSource provides the loaded dataset. *dataset.Cache implements it.
type DatasetSource interface {
	Get(ctx context.Context) (*dataset.Dataset, error)
}

// Options configures a Renderer.
type Options struct {
	FigsDir     string
	FigsURL     string // URL prefix plots are served under
	PreviewRows int
	Placeholder string
	Verbose     bool
}

// Renderer builds page views from the registry and the dataset.
type Renderer struct {
	reg  *registry.Registry
	data DatasetSource
	opts Options
	md   goldmark.Markdown
}

// New creates a Renderer.
func New(reg *registry.Registry, data DatasetSource, opts Options) *Renderer {
	if opts.FigsURL == "" {
		opts.FigsURL = "/figs/"
	}
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = 5
	}
	return &Renderer{
		reg:  reg,
		data: data,
		opts: opts,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
		),
	}
}

// Registry returns the registry pages are looked up in.
func (r *Renderer) Registry() *registry.Registry { return r.reg }

// Pages returns the navigation options.
func (r *Renderer) Pages() []string { return r.reg.Pages() }

// Page renders the page with the given id.
func (r *Renderer) Page(ctx context.Context, id string) (*Page, error) {
	start := time.Now()
	defer func() {
		if r.opts.Verbose {
			log.Printf("render: page %s in %s", id, time.Since(start))
		}
	}()

	if id == registry.OverviewPage {
		ov, err := r.Overview(ctx)
		if err != nil {
			return nil, err
		}
		return &Page{ID: id, Overview: ov}, nil
	}

	q, err := r.Question(id)
	if err != nil {
		return nil, err
	}
	return &Page{ID: id, Question: q}, nil
}

// Overview renders the dataset overview.
func (r *Renderer) Overview(ctx context.Context) (*Overview, error) {
	ds, err := r.data.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	preview, err := ds.Head(ctx, r.opts.PreviewRows)
	if err != nil {
		return nil, fmt.Errorf("reading preview: %w", err)
	}
	return &Overview{
		Subheader:    OverviewSubheader,
		Description:  OverviewDescription,
		TotalRecords: ds.Len(),
		Columns:      preview.Columns,
		Rows:         preview.Fill(r.opts.Placeholder),
	}, nil
}

// Question renders a question page.
func (r *Renderer) Question(id string) (*Question, error) {
	entry, err := r.reg.Lookup(id)
	if err != nil {
		return nil, err
	}

	html, err := r.markdown(fmt.Sprintf("**Question:** %s", entry.Question))
	if err != nil {
		return nil, fmt.Errorf("rendering question %s: %w", id, err)
	}

	return &Question{
		Subheader:    id,
		Question:     entry.Question,
		QuestionHTML: html,
		Plot:         r.ResolvePlot(id),
		Findings:     entry.Findings,
	}, nil
}

// ResolvePlot determines how the plot of page id is presented.
func (r *Renderer) ResolvePlot(id string) Plot {
	file, ok := r.reg.PlotFile(id)
	if !ok {
		return Plot{Status: PlotUnmapped, Message: MsgNoPlotMapped}
	}

	path := filepath.Join(r.opts.FigsDir, file)
	if _, err := os.Stat(path); err != nil {
		return Plot{Status: PlotMissing, File: file, Path: path, Message: MsgPlotNotFound}
	}
	return Plot{
		Status: PlotShown,
		File:   file,
		Path:   path,
		URL:    r.opts.FigsURL + url.PathEscape(file),
	}
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
