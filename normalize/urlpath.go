package normalize

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/xilec/ruvox/core"
)

// tldWords gives the conventional Russian reading of a top-level domain,
// looked up case-insensitively.
var tldWords = map[string]string{
	"com": "ком", "ru": "ру", "org": "орг", "net": "нет", "io": "ай-о",
	"dev": "дев", "ai": "эй-ай", "co": "ко", "info": "инфо", "app": "апп",
	"me": "ми", "gg": "джи-джи",
}

// URL spells a URL token at one of three detail levels
// (config.URLDetailLevel):
//   - full: scheme, every domain label, and the full path
//   - domain_only: just the domain labels
//   - minimal: the single word "ссылка"
//
// A URL that fails to parse is returned unchanged.
func URL(text string, detailLevel string, customTerms map[string]string, diag *core.Diagnostics) string {
	raw := text
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return text
	}

	if detailLevel == "minimal" {
		return "ссылка"
	}

	domainWords := spellDomain(u.Hostname(), customTerms, diag)

	if detailLevel == "domain_only" {
		return "ссылка " + domainWords
	}

	var parts []string
	parts = append(parts, "ссылка", spellOut(strings.ToUpper(u.Scheme)), domainWords)
	if path := spellPath(u.Path, customTerms, diag); path != "" {
		parts = append(parts, path)
	}
	return strings.Join(parts, " ")
}

func spellDomain(host string, customTerms map[string]string, diag *core.Diagnostics) string {
	labels := strings.Split(host, ".")
	words := make([]string, len(labels))
	for i, label := range labels {
		if i == len(labels)-1 {
			if w, ok := tldWords[strings.ToLower(label)]; ok {
				words[i] = w
				continue
			}
		}
		words[i] = readURLLabel(label, customTerms, diag)
	}
	return strings.Join(words, " точка ")
}

func spellPath(path string, customTerms map[string]string, diag *core.Diagnostics) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	var words []string
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		words = append(words, readURLLabel(seg, customTerms, diag))
	}
	return strings.Join(words, " слэш ")
}

func readURLLabel(label string, customTerms map[string]string, diag *core.Diagnostics) string {
	if isAllDigits(label) {
		return Integer(label, diag)
	}
	return EnglishWord(label, customTerms, diag)
}

// Email spells an Email token as "<local> собака <domain>".
func Email(text string, customTerms map[string]string, diag *core.Diagnostics) string {
	at := strings.Index(text, "@")
	if at < 0 {
		return text
	}
	local, domain := text[:at], text[at+1:]
	return readURLLabel(local, customTerms, diag) + " собака " + spellDomain(domain, customTerms, diag)
}

// validOctets reports whether every octet parses as a decimal integer in
// [0, 255], rejecting a candidate like "999.999.999.999" so it falls
// through to a numeric reading instead of being read out as an address.
func validOctets(octets []string) bool {
	for _, o := range octets {
		n, err := strconv.Atoi(o)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// IPv4 spells an IPv4 token either as four cardinal octets joined by
// "точка" (config.IPReadMode == numbers) or as individual digits per
// octet (ip_read_mode == digits). An input with an out-of-range octet
// falls through to Float (and, through it, Integer).
func IPv4(text string, digitsMode bool, diag *core.Diagnostics) string {
	octets := strings.Split(text, ".")
	if len(octets) != 4 || !validOctets(octets) {
		if diag != nil {
			diag.MalformedNumber++
		}
		return Float(text, diag)
	}
	words := make([]string, 4)
	for i, o := range octets {
		if !digitsMode {
			words[i] = Integer(o, diag)
			continue
		}
		n, err := strconv.Atoi(o)
		if err != nil {
			words[i] = o
			continue
		}
		digitWords := make([]string, 0, 3)
		for _, d := range strconv.Itoa(n) {
			digitWords = append(digitWords, digitNames[d-'0'])
		}
		words[i] = strings.Join(digitWords, " ")
	}
	return strings.Join(words, " точка ")
}

// fileExtensionWords gives the spoken form of a file extension's letters,
// preferring a known reading over letter-by-letter spelling.
var fileExtensionWords = map[string]string{
	"go": "го", "py": "пай", "js": "джиэс", "ts": "тиэс", "json": "джейсон",
	"md": "эм ди", "txt": "текст", "yaml": "ямл", "yml": "ямл",
	"html": "эйч ти эм эл", "css": "си эс эс", "sql": "сиквел",
	"sh": "шелл", "png": "пи эн джи", "jpg": "джипег", "pdf": "пи ди эф",
	"xml": "икс эм эл", "csv": "си эс ви", "log": "лог",
}

// FilePath spells a FilePath token as its directory segments joined by
// "слэш", then the file name and a spoken extension.
func FilePath(text string, customTerms map[string]string, diag *core.Diagnostics) string {
	sep := "/"
	if strings.Contains(text, "\\") && !strings.Contains(text, "/") {
		sep = "\\"
	}
	segments := strings.Split(text, sep)

	var words []string
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if i == len(segments)-1 {
			words = append(words, spellFileName(seg, customTerms, diag))
			continue
		}
		words = append(words, readURLLabel(seg, customTerms, diag))
	}
	return strings.Join(words, " слэш ")
}

func spellFileName(name string, customTerms map[string]string, diag *core.Diagnostics) string {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		return readURLLabel(name, customTerms, diag)
	}
	base, ext := name[:dot], strings.ToLower(name[dot+1:])
	baseWords := readURLLabel(base, customTerms, diag)
	if extWord, ok := fileExtensionWords[ext]; ok {
		return baseWords + " точка " + extWord
	}
	return baseWords + " точка " + spellOut(name[dot+1:])
}
