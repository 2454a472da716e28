package registry

import (
	"errors"
	"fmt"
)

// OverviewPage is the page identifier of the dataset overview.
const OverviewPage = "Overview"

// ErrUnknownPage is returned when a page identifier has no registry entry.
var ErrUnknownPage = errors.New("unknown page")

// Entry is one precomputed question page.
type Entry struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Findings []string `json:"findings"`
	PlotFile string   `json:"plot_file,omitempty"` // empty when no plot is mapped
}

// Registry holds the question, result and plot mappings keyed by page id.
// It is immutable after construction.
type Registry struct {
	order     []string
	questions map[string]string
	results   map[string][]string
	plots     map[string]string
}

// New builds a registry from entries, keeping their order for navigation.
func New(entries ...Entry) (*Registry, error) {
	r := &Registry{
		questions: make(map[string]string, len(entries)),
		results:   make(map[string][]string, len(entries)),
		plots:     make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" || e.ID == OverviewPage {
			return nil, fmt.Errorf("invalid page id %q", e.ID)
		}
		if _, dup := r.questions[e.ID]; dup {
			return nil, fmt.Errorf("duplicate page id %q", e.ID)
		}
		r.order = append(r.order, e.ID)
		r.questions[e.ID] = e.Question
		r.results[e.ID] = append([]string(nil), e.Findings...)
		if e.PlotFile != "" {
			r.plots[e.ID] = e.PlotFile
		}
	}
	return r, nil
}

// Default returns the registry of the fifteen delay analysis questions.
func Default() *Registry {
	r, err := New(defaultEntries()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Pages returns the navigation options: Overview followed by every question id.
func (r *Registry) Pages() []string {
	pages := make([]string, 0, len(r.order)+1)
	pages = append(pages, OverviewPage)
	return append(pages, r.order...)
}

// IDs returns the question page ids in navigation order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Lookup returns the entry for a question page.
func (r *Registry) Lookup(id string) (Entry, error) {
	q, ok := r.questions[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownPage, id)
	}
	return Entry{
		ID:       id,
		Question: q,
		Findings: append([]string(nil), r.results[id]...),
		PlotFile: r.plots[id],
	}, nil
}

// PlotFile returns the plot filename mapped to id, if any.
func (r *Registry) PlotFile(id string) (string, bool) {
	f, ok := r.plots[id]
	return f, ok
}

// Validate checks that every page id has a question and a non-empty result
// list, and that no registry carries ids the others lack.
func (r *Registry) Validate() error {
	if len(r.results) != len(r.questions) {
		return fmt.Errorf("registry size mismatch: %d questions, %d results", len(r.questions), len(r.results))
	}
	for _, id := range r.order {
		if r.questions[id] == "" {
			return fmt.Errorf("page %s: empty question", id)
		}
		if len(r.results[id]) == 0 {
			return fmt.Errorf("page %s: no findings", id)
		}
	}
	for id := range r.plots {
		if _, ok := r.questions[id]; !ok {
			return fmt.Errorf("plot mapped for unknown page %s", id)
		}
	}
	return nil
}
