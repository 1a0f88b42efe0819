package inputs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/xilec/ruvox/utils"
)

// PushSource exposes an HTTP endpoint that accepts a POSTed body and
// emits it immediately: a plain-text body is emitted as is, while a
// "application/json" body is decoded as {"text": "..."} so a webhook
// caller that already speaks JSON doesn't need a second content type.
type PushSource struct {
	addr   string
	path   string
	emit   TextFunc
	server *http.Server
}

// pushEnvelope is the JSON shape accepted when a push request declares
// Content-Type: application/json.
type pushEnvelope struct {
	Text string `json:"text"`
}

// NewPushSource creates a PushSource listening on addr for POST requests
// to path.
func NewPushSource(addr, path string, emit TextFunc) *PushSource {
	return &PushSource{addr: addr, path: path, emit: emit}
}

// Start runs the push endpoint until ctx is canceled.
func (p *PushSource) Start(ctx context.Context) error {
	router := mux.NewRouter()
	router.HandleFunc(p.path, p.handlePush).Methods(http.MethodPost)

	p.server = &http.Server{
		Addr:              p.addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("push source listening", "addr", p.addr, "path", p.path)
		if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("push source server error", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(shutdownCtx)
}

func (p *PushSource) handlePush(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) == 0 {
		http.Error(w, "empty request body", http.StatusBadRequest)
		return
	}

	text := string(body)
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && mediaType == "application/json" {
		payload, err := utils.ParseJSONSettings[pushEnvelope](json.RawMessage(body))
		if err != nil {
			http.Error(w, "invalid JSON request body", http.StatusBadRequest)
			return
		}
		if payload.Text == "" {
			http.Error(w, "missing required field: text", http.StatusBadRequest)
			return
		}
		text = payload.Text
	}

	p.emit(text)
	w.WriteHeader(http.StatusAccepted)
}
