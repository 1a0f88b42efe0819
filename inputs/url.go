package inputs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/xilec/ruvox/postprocess"
	"github.com/xilec/ruvox/utils"
)

// URLSource polls a URL on an interval and emits the response body as raw
// text, or, when jsonKey is set, the string value at that dot-separated
// JSON path. Any stray HTML markup in the fetched body is stripped
// before the text is emitted, since a polled URL (unlike a CLI or push
// caller) cannot be trusted to already hold plain prose.
type URLSource struct {
	url      string
	interval time.Duration
	jsonKey  string
	emit     TextFunc
}

// NewURLSource validates rawURL and returns a URLSource ready to Start.
func NewURLSource(rawURL string, interval time.Duration, jsonKey string, emit TextFunc) (*URLSource, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("url must use http or https scheme, got %q", parsed.Scheme)
	}
	return &URLSource{url: rawURL, interval: interval, jsonKey: jsonKey, emit: emit}, nil
}

// Start polls immediately, then again every interval, until ctx is
// canceled.
func (u *URLSource) Start(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	u.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			u.poll(ctx)
		}
	}
}

func (u *URLSource) poll(ctx context.Context) {
	resp, err := utils.Get(ctx, u.url)
	if err != nil {
		slog.Error("failed to fetch URL source", "url", u.url, "error", err)
		return
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("failed to read URL source response", "url", u.url, "error", err)
		return
	}

	content := string(body)
	if u.jsonKey != "" {
		var data any
		if err := json.Unmarshal(body, &data); err != nil {
			slog.Error("failed to parse JSON from URL source", "url", u.url, "error", err)
			return
		}
		value, ok := extractJSONValue(data, u.jsonKey)
		if !ok {
			slog.Error("JSON path not found in URL source response", "url", u.url, "path", u.jsonKey)
			return
		}
		content = fmt.Sprintf("%v", value)
	}

	u.emit(postprocess.StripHTMLTags(content))
}

// extractJSONValue navigates a JSON structure using a dot-separated key
// path.
func extractJSONValue(data any, keyPath string) (any, bool) {
	current := data
	for _, key := range strings.Split(keyPath, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
