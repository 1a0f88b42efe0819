package utils

import (
	"context"
	"io"
	"net/http"
	"time"
)

// httpClient is the shared HTTP client for all requests.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// maxResponseBytes caps how much of a response body Get/Do ever hand
// back. inputs.URLSource reads its whole response into memory on every
// poll tick; without a ceiling, a misconfigured or malicious source URL
// could grow that read without bound.
const maxResponseBytes = 10 << 20 // 10 MiB

// Get performs an HTTP GET request with standard headers, capping the
// response body at maxResponseBytes.
func Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	return Do(req)
}

// Do executes an HTTP request with standard configuration, capping the
// response body at maxResponseBytes.
func Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", UserAgent())
	resp, err := httpClient.Do(req) //nolint:gosec // URL is from validated user configuration
	if err != nil {
		return nil, err
	}
	resp.Body = capBody(resp.Body)
	return resp, nil
}

// cappedBody wraps a response body so Read never yields more than
// maxResponseBytes while Close still closes the underlying body.
type cappedBody struct {
	io.Reader
	closer io.Closer
}

func (c cappedBody) Close() error { return c.closer.Close() }

func capBody(body io.ReadCloser) io.ReadCloser {
	return cappedBody{Reader: io.LimitReader(body, maxResponseBytes), closer: body}
}
