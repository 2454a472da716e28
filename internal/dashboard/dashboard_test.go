package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/traindelay/internal/dataset"
	"github.com/ziadkadry99/traindelay/internal/registry"
	"github.com/ziadkadry99/traindelay/internal/render"
)

const ridesCSV = `ID,station,arrival_delay_m
1,Berlin Hbf,0
2,Köln Hbf,
3,Hamburg Hbf,7
`

func setupTest(t *testing.T) (*Dashboard, string) {
	t.Helper()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "rides.csv")
	if err := os.WriteFile(csvPath, []byte(ridesCSV), 0o644); err != nil {
		t.Fatalf("writing csv: %v", err)
	}
	figs := filepath.Join(dir, "Figs")
	if err := os.MkdirAll(figs, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cache := dataset.NewCache(csvPath)
	t.Cleanup(func() {
		if ds, err := cache.Get(context.Background()); err == nil {
			ds.Close()
		}
	})

	r := render.New(registry.Default(), cache, render.Options{FigsDir: figs, Placeholder: "—"})
	d, err := New(r, "Deutsche Bahn Train Delay Analysis", figs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d, figs
}

func setupRouter(d *Dashboard) chi.Router {
	r := chi.NewRouter()
	d.RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexOverview(t *testing.T) {
	d, _ := setupTest(t)
	w := get(t, setupRouter(d), "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{
		"Dataset Overview",
		"Total records: 3",
		"<td>Köln Hbf</td><td>—</td>",
		`value="Overview" checked`,
		`value="Q15"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if n := strings.Count(body, `type="radio"`); n != 16 {
		t.Errorf("expected 16 radio options, got %d", n)
	}
}

func TestIndexQuestionMissingPlot(t *testing.T) {
	d, _ := setupTest(t)
	w := get(t, setupRouter(d), "/?page=Q01")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()

	if !strings.Contains(body, "<strong>Question:</strong> What percentage of train stops experience an arrival delay?") {
		t.Error("question text not rendered")
	}
	if !strings.Contains(body, render.MsgPlotNotFound) {
		t.Error("expected missing plot warning")
	}
	if strings.Contains(body, `<img class="plot"`) {
		t.Error("expected no image for missing plot")
	}

	first := strings.Index(body, "• Around 30% of train stops experienced an arrival delay.")
	second := strings.Index(body, "• That is nearly 1 in 3 trains arriving late.")
	if first < 0 || second < 0 || second < first {
		t.Errorf("findings missing or out of order (%d, %d)", first, second)
	}
	if n := strings.Count(body, "<li>"); n != 2 {
		t.Errorf("expected exactly 2 findings, got %d", n)
	}
}

func TestIndexQuestionWithPlot(t *testing.T) {
	d, figs := setupTest(t)
	if err := os.WriteFile(filepath.Join(figs, "Q03_hourly_arrival_delays.png"), []byte("\x89PNG"), 0o644); err != nil {
		t.Fatalf("writing plot: %v", err)
	}
	r := setupRouter(d)

	w := get(t, r, "/?page=Q03")
	if !strings.Contains(w.Body.String(), `<img class="plot" src="/figs/Q03_hourly_arrival_delays.png"`) {
		t.Error("expected plot image")
	}

	img := get(t, r, "/figs/Q03_hourly_arrival_delays.png")
	if img.Code != http.StatusOK {
		t.Fatalf("plot file: expected 200, got %d", img.Code)
	}
	if img.Body.String() != "\x89PNG" {
		t.Error("unexpected plot bytes")
	}
}

func TestFigsDirectoryNotListed(t *testing.T) {
	d, figs := setupTest(t)
	if err := os.WriteFile(filepath.Join(figs, "Q03_hourly_arrival_delays.png"), []byte("\x89PNG"), 0o644); err != nil {
		t.Fatalf("writing plot: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(figs, "old"), 0o755); err != nil {
		t.Fatalf("creating subdir: %v", err)
	}
	r := setupRouter(d)

	for _, path := range []string{"/figs/", "/figs/old", "/figs/old/"} {
		w := get(t, r, path)
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, w.Code)
		}
		if strings.Contains(w.Body.String(), "Q03_hourly_arrival_delays.png") {
			t.Errorf("GET %s listed the figures directory", path)
		}
	}
}

func TestIndexUnknownPage(t *testing.T) {
	d, _ := setupTest(t)
	w := get(t, setupRouter(d), "/?page=Q42")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestListPages(t *testing.T) {
	d, _ := setupTest(t)
	w := get(t, setupRouter(d), "/api/pages")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp pagesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding pages: %v", err)
	}
	if len(resp.Pages) != 16 {
		t.Fatalf("expected 16 pages, got %d", len(resp.Pages))
	}
	if resp.Pages[0].ID != registry.OverviewPage || resp.Pages[0].Question != "" {
		t.Errorf("first page = %+v", resp.Pages[0])
	}
	if resp.Pages[2].ID != "Q02" || resp.Pages[2].Question != "Which stations have the highest average arrival delay?" {
		t.Errorf("Q02 = %+v", resp.Pages[2])
	}
}

func TestGetPageJSON(t *testing.T) {
	d, _ := setupTest(t)
	r := setupRouter(d)

	w := get(t, r, "/api/pages/Q14")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var page render.Page
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("decoding page: %v", err)
	}
	if page.Question == nil || page.Question.Plot.Status != render.PlotMissing {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Question.Findings[0] != "About 70% of trains arrive on time or early; around 30% are delayed." {
		t.Errorf("finding = %q", page.Question.Findings[0])
	}

	w = get(t, r, "/api/pages/Overview")
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("decoding overview: %v", err)
	}
	if page.Overview == nil || page.Overview.TotalRecords != 3 {
		t.Errorf("unexpected overview: %+v", page.Overview)
	}
}

func TestGetPageUnknown(t *testing.T) {
	d, _ := setupTest(t)
	w := get(t, setupRouter(d), "/api/pages/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func dialWS(t *testing.T, r http.Handler) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}
	return conn
}

func TestWebSocketSelect(t *testing.T) {
	d, _ := setupTest(t)
	conn := dialWS(t, setupRouter(d))

	if err := conn.WriteJSON(selectRequest{Type: "select", Page: "Q11"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var first pageMessage
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read: %v", err)
	}
	if first.Type != "page" || first.Page != "Q11" {
		t.Fatalf("unexpected response: %+v", first)
	}
	if !strings.Contains(first.HTML, "The data covers only one month (July)") {
		t.Error("expected Q11 findings in fragment")
	}
	if first.SessionID == "" {
		t.Error("expected a session id")
	}

	if err := conn.WriteJSON(selectRequest{Type: "select", Page: registry.OverviewPage}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var second pageMessage
	if err := conn.ReadJSON(&second); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(second.HTML, "Total records: 3") {
		t.Error("expected overview fragment")
	}
	if second.SessionID != first.SessionID {
		t.Error("session id should be stable for a connection")
	}
}

func TestWebSocketErrors(t *testing.T) {
	d, _ := setupTest(t)
	conn := dialWS(t, setupRouter(d))

	tests := []struct {
		name string
		msg  string
	}{
		{"unknown page", `{"type":"select","page":"Q99"}`},
		{"unknown type", `{"type":"rerun"}`},
		{"invalid json", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(tt.msg)); err != nil {
				t.Fatalf("write: %v", err)
			}
			var resp pageMessage
			if err := conn.ReadJSON(&resp); err != nil {
				t.Fatalf("read: %v", err)
			}
			if resp.Type != "error" || resp.Message == "" {
				t.Errorf("expected error response, got %+v", resp)
			}
		})
	}
}
