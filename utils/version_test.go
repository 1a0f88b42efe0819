package utils

import (
	"strings"
	"testing"
)

func TestUserAgent_IncludesVersion(t *testing.T) {
	if got := UserAgent(); !strings.HasPrefix(got, "ruvox/") {
		t.Errorf("UserAgent() = %q, want prefix %q", got, "ruvox/")
	}
	if got := UserAgent(); !strings.HasSuffix(got, Version) {
		t.Errorf("UserAgent() = %q, want suffix %q", got, Version)
	}
}
