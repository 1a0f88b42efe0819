package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xilec/ruvox/core"
)

// Integer spells an Integer token, logging MalformedNumber and returning
// the original text unchanged if it does not parse.
func Integer(text string, diag *core.Diagnostics) string {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		if diag != nil {
			diag.MalformedNumber++
		}
		return text
	}
	return CardinalWords(n, false)
}

// fracDenominators maps a fractional part's digit count to its declined
// denominator noun (десятая/сотая/тысячная). A fraction of four or more
// digits is read as one cardinal number followed by the thousandths
// denominator; no larger denominator words are produced.
var fracDenominators = map[int][3]string{
	1: {"десятая", "десятых", "десятых"},
	2: {"сотая", "сотых", "сотых"},
	3: {"тысячная", "тысячных", "тысячных"},
}

// Float spells a Float token of the form "<int>.<frac>" or "<int>,<frac>",
// logging MalformedNumber and returning the original text unchanged on
// failure.
func Float(text string, diag *core.Diagnostics) string {
	t := strings.TrimSpace(text)
	sepIdx := strings.IndexAny(t, ".,")
	if sepIdx < 0 {
		return Integer(t, diag)
	}

	intPart := t[:sepIdx]
	fracPart := t[sepIdx+1:]
	if intPart == "" || fracPart == "" {
		if diag != nil {
			diag.MalformedNumber++
		}
		return text
	}
	if strings.HasPrefix(intPart, "-") {
		intPart = intPart[1:]
	}

	intVal, err1 := strconv.ParseInt(intPart, 10, 64)
	fracVal, err2 := strconv.ParseInt(fracPart, 10, 64)
	if err1 != nil || err2 != nil {
		if diag != nil {
			diag.MalformedNumber++
		}
		return text
	}

	negative := strings.HasPrefix(t, "-")

	intWords := CardinalWords(intVal, true)
	intScale := pluralForm(int(intVal), "целая", "целых", "целых")

	digits := len(fracPart)
	denom, ok := fracDenominators[digits]
	if !ok {
		denom = fracDenominators[3]
	}
	fracWords := CardinalWords(fracVal, true)
	fracScale := pluralForm(int(fracVal), denom[0], denom[1], denom[2])

	result := fmt.Sprintf("%s %s %s %s", intWords, intScale, fracWords, fracScale)
	if negative {
		result = "минус " + result
	}
	return result
}

// Percentage spells a Percentage token, e.g. "21%" -> "двадцать один
// процент".
func Percentage(text string, diag *core.Diagnostics) string {
	numeric := strings.TrimSuffix(strings.TrimSpace(text), "%")
	numeric = strings.TrimSpace(numeric)

	var words, scaleBase string
	if strings.ContainsAny(numeric, ".,") {
		words = Float(numeric, diag)
		scaleBase = "процента"
	} else {
		n, err := strconv.ParseInt(numeric, 10, 64)
		if err != nil {
			if diag != nil {
				diag.MalformedNumber++
			}
			return text
		}
		words = CardinalWords(n, false)
		scaleBase = pluralForm(int(n), "процент", "процента", "процентов")
	}
	return words + " " + scaleBase
}

// rangePattern matches "X-Y" / "X–Y" / "X—Y", the two-sided range shape.
var rangePattern = regexp.MustCompile(`^\s*(-?\d+(?:[.,]\d+)?)\s*[-–—]\s*(-?\d+(?:[.,]\d+)?)\s*$`)

// Range spells a Range token as "от <X> до <Y>", reading both bounds as
// cardinals.
func Range(text string, diag *core.Diagnostics) string {
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	return "от " + readBound(m[1], diag) + " до " + readBound(m[2], diag)
}

func readBound(s string, diag *core.Diagnostics) string {
	if strings.ContainsAny(s, ".,") {
		return Float(s, diag)
	}
	return Integer(s, diag)
}

// unitForm is one SizeUnit dictionary entry: the declined noun (one, few,
// many) and whether that noun is feminine (affects the gender of a
// trailing "one"/"two" in the preceding cardinal).
type unitForm struct {
	one, few, many string
	feminine       bool
}

// sizeUnits maps a lower-cased unit suffix to its declined Russian noun.
var sizeUnits = map[string]unitForm{
	"b":   {"байт", "байта", "байт", false},
	"kb":  {"килобайт", "килобайта", "килобайт", false},
	"mb":  {"мегабайт", "мегабайта", "мегабайт", false},
	"gb":  {"гигабайт", "гигабайта", "гигабайт", false},
	"tb":  {"терабайт", "терабайта", "терабайт", false},
	"ms":  {"миллисекунда", "миллисекунды", "миллисекунд", true},
	"s":   {"секунда", "секунды", "секунд", true},
	"sec": {"секунда", "секунды", "секунд", true},
	"min": {"минута", "минуты", "минут", true},
	"h":   {"час", "часа", "часов", false},
	"px":  {"пиксель", "пикселя", "пикселей", false},
	"em":  {"эм", "эма", "эмов", false},
	"rem": {"рем", "рема", "ремов", false},
}

var sizeUnitPattern = regexp.MustCompile(`^\s*(-?\d+(?:[.,]\d+)?)\s*([A-Za-zА-Яа-я%]+)\s*$`)

// SizeUnit spells a SizeUnit token such as "100MB" or "250ms", logging
// UnknownUnit and falling back to spelling the unit letters if the suffix
// is not in sizeUnits.
func SizeUnit(text string, diag *core.Diagnostics) string {
	m := sizeUnitPattern.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	numeric, suffix := m[1], strings.ToLower(m[2])

	form, ok := sizeUnits[suffix]
	if !ok {
		if diag != nil {
			diag.UnknownUnit++
		}
		return readBound(numeric, diag) + " " + spellOut(m[2])
	}

	var numWords, scale string
	if strings.ContainsAny(numeric, ".,") {
		numWords = Float(numeric, diag)
		scale = form.few
	} else {
		n, err := strconv.ParseInt(numeric, 10, 64)
		if err != nil {
			if diag != nil {
				diag.MalformedNumber++
			}
			return text
		}
		numWords = CardinalWords(n, form.feminine)
		scale = pluralForm(int(n), form.one, form.few, form.many)
	}
	return numWords + " " + scale
}

// versionPattern matches a version token such as "v2.3.1" or "12.0".
var versionPattern = regexp.MustCompile(`^([vV])?(\d+(?:\.\d+)*)$`)

// Version spells a Version token as each dot-separated part read as a
// cardinal and joined by "точка", prefixed with "версия" when the text
// carried a leading v/V.
func Version(text string, diag *core.Diagnostics) string {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		if diag != nil {
			diag.MalformedNumber++
		}
		return text
	}
	hasPrefix := m[1] != ""
	parts := strings.Split(m[2], ".")
	words := make([]string, len(parts))
	for i, p := range parts {
		words[i] = Integer(p, diag)
	}
	joined := strings.Join(words, " точка ")
	if hasPrefix {
		return "версия " + joined
	}
	return joined
}

// isoDatePattern matches "YYYY-MM-DD".
var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// datePattern matches "DD.MM.YYYY" / "DD/MM/YYYY" / "DD-MM-YYYY".
var datePattern = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)

// Date spells a Date token as "<день ordinal feminine> <месяц genitive>
// <год cardinal> года", accepting either the ISO "YYYY-MM-DD" shape or
// the European day-first shape. Unparseable input is returned unchanged.
func Date(text string, diag *core.Diagnostics) string {
	trimmed := strings.TrimSpace(text)

	var day, month, year int
	if m := isoDatePattern.FindStringSubmatch(trimmed); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := datePattern.FindStringSubmatch(trimmed); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	} else {
		if diag != nil {
			diag.MalformedNumber++
		}
		return text
	}

	monthWord := MonthGenitive(month)
	if monthWord == "" {
		if diag != nil {
			diag.MalformedNumber++
		}
		return text
	}

	return fmt.Sprintf("%s %s %s года", OrdinalFeminine(day), monthWord, CardinalWords(int64(year), false))
}

// timePattern matches "HH:MM".
var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Time spells a Time token as cardinal hours and minutes, each followed by
// its declined noun (час/часа/часов, минута/минуты/минут).
func Time(text string, diag *core.Diagnostics) string {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		if diag != nil {
			diag.MalformedNumber++
		}
		return text
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])

	hourWord := pluralForm(hours, "час", "часа", "часов")
	minuteWord := pluralForm(minutes, "минута", "минуты", "минут")

	return fmt.Sprintf("%s %s %s %s",
		CardinalWords(int64(hours), false), hourWord,
		CardinalWords(int64(minutes), true), minuteWord)
}
