package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/traindelay/internal/registry"
)

// pageSummary is one entry of the page list endpoint.
type pageSummary struct {
	ID       string `json:"id"`
	Question string `json:"question,omitempty"`
}

// pagesResponse is the JSON response for the page list endpoint.
type pagesResponse struct {
	Pages []pageSummary `json:"pages"`
}

func (d *Dashboard) handleListPages(w http.ResponseWriter, r *http.Request) {
	reg := d.renderer.Registry()
	resp := pagesResponse{Pages: make([]pageSummary, 0, len(d.renderer.Pages()))}
	for _, id := range d.renderer.Pages() {
		s := pageSummary{ID: id}
		if e, err := reg.Lookup(id); err == nil {
			s.Question = e.Question
		}
		resp.Pages = append(resp.Pages, s)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (d *Dashboard) handleGetPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	page, err := d.renderer.Page(r.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownPage) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
