package normalize

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xilec/ruvox/core"
)

func TestSplitCamel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple camelCase", "getUserData", []string{"get", "User", "Data"}},
		{"PascalCase", "UserAccount", []string{"User", "Account"}},
		{"acronym run keeps together until next word", "HTTPServer", []string{"HTTP", "Server"}},
		{"digit run is its own boundary", "Div2Round", []string{"Div", "2", "Round"}},
		{"single word", "user", []string{"user"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCamel(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCamel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitSnake(t *testing.T) {
	got := SplitSnake("max_retry_count")
	want := []string{"max", "retry", "count"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSnake() = %v, want %v", got, want)
	}
}

func TestSplitKebab(t *testing.T) {
	got := SplitKebab("user-account-id")
	want := []string{"user", "account", "id"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitKebab() = %v, want %v", got, want)
	}
}

func TestIdentifier_MixesWordsAndNumbers(t *testing.T) {
	got := Identifier("user123", core.CamelIdent, nil, nil, nil)
	want := "пользователь сто двадцать три"
	if got != want {
		t.Errorf("Identifier(\"user123\") = %q, want %q", got, want)
	}
}

func TestIdentifier_SnakeCase(t *testing.T) {
	got := Identifier("max_retry_count", core.SnakeIdent, nil, nil, nil)
	want := EnglishWord("max", nil, nil) + " " + EnglishWord("retry", nil, nil) + " " + EnglishWord("count", nil, nil)
	if got != want {
		t.Errorf("Identifier(\"max_retry_count\") = %q, want %q", got, want)
	}
}

func TestIdentifier_UppercaseAcronymRoutesToAbbreviation(t *testing.T) {
	got := Identifier("HTTPServer", core.CamelIdent, nil, nil, nil)
	want := Abbreviation("HTTP", nil) + " " + EnglishWord("Server", nil, nil)
	if got != want {
		t.Errorf("Identifier(\"HTTPServer\") = %q, want %q", got, want)
	}
	if strings.Contains(got, "хттп") {
		t.Errorf("Identifier(\"HTTPServer\") = %q, acronym was phonetically transliterated instead of spelled", got)
	}
}

func TestIsAllUpperRun(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"HTTP", true},
		{"A", false},
		{"Http", false},
		{"", false},
		{"HTTP2", false},
	}
	for _, tt := range tests {
		if got := isAllUpperRun(tt.in); got != tt.want {
			t.Errorf("isAllUpperRun(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
