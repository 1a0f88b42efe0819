// Package web provides a small HTTP/WebSocket demonstration boundary:
// REST endpoints that run the pipeline over a posted string, a highlight
// preview image endpoint, and a paste-and-preview dashboard page.
package web

import (
	"context"
	"encoding/json"
	"image/color"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/xilec/ruvox/core"
	"github.com/xilec/ruvox/outputs"
	"github.com/xilec/ruvox/utils"
)

// Server is the HTTP server exposing the pipeline over a small JSON API
// plus a paste-and-preview dashboard.
type Server struct {
	port       int
	pipeline   *core.Pipeline
	brandColor color.NRGBA
	updatesHub *utils.WebSocketHub
	server     *http.Server
}

// NewServer creates a Server that runs every request through pipeline.
func NewServer(port int, pipeline *core.Pipeline, brandColor color.NRGBA) *Server {
	return &Server{
		port:       port,
		pipeline:   pipeline,
		brandColor: brandColor,
		updatesHub: utils.NewWebSocketHub("updates"),
	}
}

// Start runs the HTTP server until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	router := mux.NewRouter()
	router.Use(noIndexMiddleware)

	router.HandleFunc("/", s.dashboardHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/process", s.processHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/preview.png", s.previewHandler).Methods(http.MethodGet)
	router.HandleFunc("/ws/updates", s.updatesHub.HandleConnection).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:              ":" + strconv.Itoa(s.port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	slog.Info("starting web server", "port", s.port)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("web server encountered an error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// noIndexMiddleware keeps the demo server out of search indexes.
func noIndexMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("X-Robots-Tag", "noindex, nofollow, noarchive, nosnippet, noimageindex")
		next.ServeHTTP(w, req)
	})
}

type processRequest struct {
	Text string `json:"text"`
}

// processHandler runs the posted text through the pipeline and returns
// the rewritten text and character map, also broadcasting the result to
// any connected /ws/updates clients.
func (s *Server) processHandler(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing required field: text", http.StatusBadRequest)
		return
	}

	text, charMap := s.pipeline.ProcessWithMap(req.Text)
	result := outputs.NewWebSocketSink(s.updatesHub)
	if err := result.Deliver(text, charMap); err != nil {
		slog.Warn("failed to broadcast pipeline result", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"text":    text,
		"charMap": charMapEntries(charMap),
	}); err != nil {
		slog.Warn("failed to write process response", "error", err)
	}
}

func charMapEntries(charMap *core.CharMap) []map[string]int {
	entries := make([]map[string]int, charMap.Len())
	for i := range entries {
		start, end := charMap.At(i)
		entries[i] = map[string]int{"start": start, "end": end}
	}
	return entries
}

// previewHandler renders a highlight-bar PNG for a fraction range given
// by the "start" and "end" query parameters (each in [0,1]).
func (s *Server) previewHandler(w http.ResponseWriter, r *http.Request) {
	start := parseFraction(r.URL.Query().Get("start"), 0)
	end := parseFraction(r.URL.Query().Get("end"), 1)

	png, err := RenderHighlight(600, 24, start, end, s.brandColor)
	if err != nil {
		http.Error(w, "failed to render preview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(png); err != nil {
		slog.Warn("failed to write preview response", "error", err)
	}
}

func parseFraction(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// dashboardHandler serves a small paste-and-preview page that sends the
// pasted text to /api/process and shows the rewritten result.
func (s *Server) dashboardHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(dashboardHTML)); err != nil {
		slog.Warn("failed to write dashboard response", "error", err)
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>RuVox</title></head>
<body>
<h1>RuVox</h1>
<textarea id="input" rows="8" cols="60" placeholder="Вставьте текст..."></textarea><br>
<button onclick="process()">Преобразовать</button>
<pre id="output"></pre>
<script>
async function process() {
  const text = document.getElementById('input').value;
  const resp = await fetch('/api/process', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({text})
  });
  const data = await resp.json();
  document.getElementById('output').textContent = data.text;
}
</script>
</body>
</html>`
