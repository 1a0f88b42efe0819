package inputs

import "testing"

func TestNewURLSource_RejectsInvalidScheme(t *testing.T) {
	if _, err := NewURLSource("ftp://example.com/feed", 0, "", func(string) {}); err == nil {
		t.Error("NewURLSource() error = nil, want non-nil for a non-http(s) scheme")
	}
}

func TestNewURLSource_RejectsUnparseableURL(t *testing.T) {
	if _, err := NewURLSource("http://%zz", 0, "", func(string) {}); err == nil {
		t.Error("NewURLSource() error = nil, want non-nil for an unparseable URL")
	}
}

func TestNewURLSource_AcceptsHTTPAndHTTPS(t *testing.T) {
	if _, err := NewURLSource("http://example.com/feed", 0, "", func(string) {}); err != nil {
		t.Errorf("NewURLSource() error = %v, want nil for http scheme", err)
	}
	if _, err := NewURLSource("https://example.com/feed", 0, "", func(string) {}); err != nil {
		t.Errorf("NewURLSource() error = %v, want nil for https scheme", err)
	}
}

func TestExtractJSONValue_NavigatesDottedPath(t *testing.T) {
	data := map[string]any{
		"data": map[string]any{
			"text": "hello",
		},
	}
	got, ok := extractJSONValue(data, "data.text")
	if !ok || got != "hello" {
		t.Errorf("extractJSONValue() = (%v, %v), want (\"hello\", true)", got, ok)
	}
}

func TestExtractJSONValue_MissingKeyReturnsFalse(t *testing.T) {
	data := map[string]any{"data": map[string]any{"text": "hello"}}
	if _, ok := extractJSONValue(data, "data.missing"); ok {
		t.Error("extractJSONValue() ok = true, want false for a missing key")
	}
}

func TestExtractJSONValue_NonObjectIntermediateReturnsFalse(t *testing.T) {
	data := map[string]any{"data": "not an object"}
	if _, ok := extractJSONValue(data, "data.text"); ok {
		t.Error("extractJSONValue() ok = true, want false when an intermediate path segment isn't an object")
	}
}
