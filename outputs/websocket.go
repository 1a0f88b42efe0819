package outputs

import (
	"github.com/xilec/ruvox/core"
	"github.com/xilec/ruvox/utils"
)

// WebSocketSink broadcasts each pipeline result to every client connected
// to hub, reusing the shared connection-management utility
// (utils.WebSocketHub) rather than running a per-output socket server.
type WebSocketSink struct {
	hub *utils.WebSocketHub
}

// NewWebSocketSink creates a WebSocketSink broadcasting over hub.
func NewWebSocketSink(hub *utils.WebSocketHub) *WebSocketSink {
	return &WebSocketSink{hub: hub}
}

// Deliver broadcasts the result to every connected client. A Websocket
// broadcast has no failure the caller can act on, so Deliver always
// returns nil.
func (w *WebSocketSink) Deliver(text string, charMap *core.CharMap) error {
	w.hub.Broadcast("pipeline_result", toResult(text, charMap))
	return nil
}
