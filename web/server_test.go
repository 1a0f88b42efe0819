package web

import (
	"bytes"
	"encoding/json"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xilec/ruvox"
	"github.com/xilec/ruvox/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	p, err := ruvox.New(config.Default())
	if err != nil {
		t.Fatalf("ruvox.New() error = %v", err)
	}
	return NewServer(0, p, color.NRGBA{R: 0xff, A: 0xff})
}

func TestProcessHandler_RunsPipelineAndReturnsCharMap(t *testing.T) {
	s := testServer(t)
	body, _ := json.Marshal(map[string]string{"text": "Test 123"})
	req := httptest.NewRequest(http.MethodPost, "/api/process", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.processHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp struct {
		Text    string           `json:"text"`
		CharMap []map[string]int `json:"charMap"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.Text == "" {
		t.Error("response Text is empty")
	}
	if len(resp.CharMap) != len([]rune(resp.Text)) {
		t.Errorf("len(CharMap) = %d, want %d", len(resp.CharMap), len([]rune(resp.Text)))
	}
}

func TestProcessHandler_RejectsMissingText(t *testing.T) {
	s := testServer(t)
	body, _ := json.Marshal(map[string]string{"text": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/process", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.processHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestProcessHandler_RejectsInvalidJSON(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/process", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	s.processHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestPreviewHandler_WritesPNGWithQueryFractions(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/preview.png?start=0.1&end=0.9", nil)
	rec := httptest.NewRecorder()

	s.previewHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want %q", ct, "image/png")
	}
	if rec.Body.Len() == 0 {
		t.Error("response body is empty")
	}
}

func TestParseFraction_FallsBackOnMissingOrInvalidInput(t *testing.T) {
	if got := parseFraction("", 0.5); got != 0.5 {
		t.Errorf("parseFraction(%q) = %v, want %v", "", got, 0.5)
	}
	if got := parseFraction("not-a-number", 0.5); got != 0.5 {
		t.Errorf("parseFraction(%q) = %v, want %v", "not-a-number", got, 0.5)
	}
	if got := parseFraction("0.25", 0.5); got != 0.25 {
		t.Errorf("parseFraction(%q) = %v, want %v", "0.25", got, 0.25)
	}
}

func TestCharMapEntries_MatchesCharMapContents(t *testing.T) {
	s := testServer(t)
	_, charMap := s.pipeline.ProcessWithMap("abc")

	entries := charMapEntries(charMap)
	if len(entries) != charMap.Len() {
		t.Fatalf("len(entries) = %d, want %d", len(entries), charMap.Len())
	}
	for i, entry := range entries {
		wantStart, wantEnd := charMap.At(i)
		if entry["start"] != wantStart || entry["end"] != wantEnd {
			t.Errorf("entries[%d] = %v, want {start:%d end:%d}", i, entry, wantStart, wantEnd)
		}
	}
}

func TestNoIndexMiddleware_SetsRobotsHeader(t *testing.T) {
	handler := noIndexMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Robots-Tag"); !strings.Contains(got, "noindex") {
		t.Errorf("X-Robots-Tag = %q, want it to contain %q", got, "noindex")
	}
}

func TestDashboardHandler_ServesHTML(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	s.dashboardHandler(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "<html") {
		t.Error("dashboard response does not look like HTML")
	}
}
