package normalize

import "testing"

func TestURL_DetailLevels(t *testing.T) {
	const u = "https://example.com/path"

	if got := URL(u, "minimal", nil, nil); got != "ссылка" {
		t.Errorf("URL(minimal) = %q, want %q", got, "ссылка")
	}

	got := URL(u, "domain_only", nil, nil)
	if got == "" || got == "ссылка" {
		t.Errorf("URL(domain_only) = %q, want domain words prefixed by ссылка", got)
	}

	full := URL(u, "full", nil, nil)
	if full == got {
		t.Errorf("URL(full) = %q, should differ from domain_only result %q", full, got)
	}
}

func TestURL_KnownTLD(t *testing.T) {
	got := URL("https://example.com", "domain_only", nil, nil)
	want := "ссылка " + EnglishWord("example", nil, nil) + " точка ком"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestURL_UnparseableReturnsUnchanged(t *testing.T) {
	const bad = "://not a url"
	if got := URL(bad, "full", nil, nil); got != bad {
		t.Errorf("URL(%q) = %q, want unchanged", bad, got)
	}
}

func TestEmail(t *testing.T) {
	got := Email("a@example.com", nil, nil)
	want := EnglishWord("a", nil, nil) + " собака " + EnglishWord("example", nil, nil) + " точка ком"
	if got != want {
		t.Errorf("Email() = %q, want %q", got, want)
	}
}

func TestIPv4_NumbersMode(t *testing.T) {
	got := IPv4("192.168.1.1", false, nil)
	want := "сто девяносто два точка сто шестьдесят восемь точка один точка один"
	if got != want {
		t.Errorf("IPv4(numbers) = %q, want %q", got, want)
	}
}

func TestIPv4_DigitsMode(t *testing.T) {
	got := IPv4("8.8.8.8", true, nil)
	want := "восемь точка восемь точка восемь точка восемь"
	if got != want {
		t.Errorf("IPv4(digits) = %q, want %q", got, want)
	}
}

func TestIPv4_OutOfRangeOctetFallsThroughToFloat(t *testing.T) {
	got := IPv4("999.999.999.999", false, nil)
	want := Float("999.999.999.999", nil)
	if got != want {
		t.Errorf("IPv4(%q) = %q, want %q (fall through to Float)", "999.999.999.999", got, want)
	}
	if got == "сто точка сто точка сто точка сто" {
		t.Error("IPv4() read an out-of-range octet as a valid address")
	}
}

func TestFilePath(t *testing.T) {
	got := FilePath("/usr/local/bin.sh", nil, nil)
	if got == "" {
		t.Fatal("FilePath() returned empty string")
	}
	want := EnglishWord("usr", nil, nil) + " слэш " + EnglishWord("local", nil, nil) +
		" слэш " + EnglishWord("bin", nil, nil) + " точка " + "шелл"
	if got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestFilePath_UnknownExtensionSpelledOut(t *testing.T) {
	got := FilePath("a/b.xyz", nil, nil)
	want := EnglishWord("a", nil, nil) + " слэш " + EnglishWord("b", nil, nil) + " точка " + spellOut("xyz")
	if got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}
