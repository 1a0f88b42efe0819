package outputs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/xilec/ruvox/core"
	"github.com/xilec/ruvox/utils"
)

// HTTPSink POSTs each pipeline result as JSON to a configured URL,
// skipping the request when the text is unchanged since the previous
// call.
type HTTPSink struct {
	url         string
	bearerToken string
	last        string
}

// NewHTTPSink creates an HTTPSink posting to url. bearerToken may be
// empty.
func NewHTTPSink(url, bearerToken string) *HTTPSink {
	return &HTTPSink{url: url, bearerToken: bearerToken}
}

// Deliver POSTs the result, or does nothing if text matches the last
// delivered value.
func (h *HTTPSink) Deliver(text string, charMap *core.CharMap) error {
	if text == h.last {
		return nil
	}

	payload, err := json.Marshal(toResult(text, charMap))
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.bearerToken)
	}

	resp, err := utils.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	h.last = text
	return nil
}
