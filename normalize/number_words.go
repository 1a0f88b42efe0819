package normalize

import "strings"

// onesMasculine and onesFeminine hold the Russian word for 1..9 in the
// gender of the noun that immediately follows a number. Only "one" and
// "two" change with gender; the rest of the table is shared.
var onesMasculine = [...]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
var onesFeminine = [...]string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}

var teens = [...]string{
	"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
	"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать",
}

var tens = [...]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"}

var hundreds = [...]string{
	"", "сто", "двести", "триста", "четыреста", "пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот",
}

// scale holds the three declined forms (one/few/many) of a numeral scale
// word, e.g. {"тысяча", "тысячи", "тысяч"}.
type scale struct {
	one, few, many string
	feminine       bool
}

var scales = [...]scale{
	{}, // scale 0: the units group has no scale word
	{"тысяча", "тысячи", "тысяч", true},
	{"миллион", "миллиона", "миллионов", false},
	{"миллиард", "миллиарда", "миллиардов", false},
}

// pluralForm applies the standard Russian rule for picking among a
// noun's three declined forms given a preceding numeral n: n mod 100 in
// 11..14 always takes many; otherwise n mod 10 == 1 takes one, 2..4 takes
// few, and everything else takes many. Used both for numeral scale words
// (тысяча/тысячи/тысяч) and for unit/percent nouns.
func pluralForm(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	mod100 := n % 100
	if mod100 >= 11 && mod100 <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}

// threeDigitGroup spells a value in [0, 999] using the gender given by
// feminine for its trailing ones digit (hundreds and tens are gender
// invariant in Russian).
func threeDigitGroup(n int, feminine bool) string {
	if n == 0 {
		return ""
	}

	var words []string
	h := n / 100
	rem := n % 100
	if h > 0 {
		words = append(words, hundreds[h])
	}

	switch {
	case rem >= 10 && rem <= 19:
		words = append(words, teens[rem-10])
	default:
		t := rem / 10
		o := rem % 10
		if t >= 2 {
			words = append(words, tens[t])
		}
		if o > 0 {
			if feminine {
				words = append(words, onesFeminine[o])
			} else {
				words = append(words, onesMasculine[o])
			}
		}
	}

	return strings.Join(words, " ")
}

// CardinalWords spells n as a Russian cardinal number, in the gender of
// the noun it quantifies (feminineUnits applies only to the final,
// units-scale group; тысяча's own internal "one"/"two" is always feminine
// regardless, since тысяча itself is a feminine noun).
func CardinalWords(n int64, feminineUnits bool) string {
	if n == 0 {
		return "ноль"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	groups := [4]int{
		int(n % 1000),
		int((n / 1000) % 1000),
		int((n / 1_000_000) % 1000),
		int((n / 1_000_000_000) % 1000),
	}

	var parts []string
	for scaleIdx := 3; scaleIdx >= 1; scaleIdx-- {
		g := groups[scaleIdx]
		if g == 0 {
			continue
		}
		sc := scales[scaleIdx]
		parts = append(parts, threeDigitGroup(g, sc.feminine))
		parts = append(parts, pluralForm(g, sc.one, sc.few, sc.many))
	}
	if groups[0] > 0 || len(parts) == 0 {
		parts = append(parts, threeDigitGroup(groups[0], feminineUnits))
	}

	result := strings.Join(parts, " ")
	if negative {
		result = "минус " + result
	}
	return result
}

// ordinalFeminineUnits and ordinalFeminineTeens hold the feminine ordinal
// forms ("-ая") used for the day of month in a spoken date.
var ordinalFeminineUnits = [...]string{
	"", "первая", "вторая", "третья", "четвёртая", "пятая",
	"шестая", "седьмая", "восьмая", "девятая",
}

var ordinalFeminineTeens = [...]string{
	"десятая", "одиннадцатая", "двенадцатая", "тринадцатая", "четырнадцатая",
	"пятнадцатая", "шестнадцатая", "семнадцатая", "восемнадцатая", "девятнадцатая",
}

var ordinalFeminineTens = [...]string{"", "", "двадцатая", "тридцатая"}

// OrdinalFeminine spells n (1..31) as a feminine ordinal, e.g. for the day
// of month in a spoken date.
func OrdinalFeminine(n int) string {
	switch {
	case n >= 1 && n <= 9:
		return ordinalFeminineUnits[n]
	case n >= 10 && n <= 19:
		return ordinalFeminineTeens[n-10]
	case n == 20 || n == 30:
		return ordinalFeminineTens[n/10]
	case n > 20 && n < 30:
		return tens[2] + " " + ordinalFeminineUnits[n-20]
	case n > 30 && n <= 31:
		return tens[3] + " " + ordinalFeminineUnits[n-30]
	default:
		return CardinalWords(int64(n), false)
	}
}

// monthsGenitive is the 12 genitive forms of the Russian month names, used
// in a spoken date between the day and the year.
var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// MonthGenitive returns the genitive form of month (1..12), or "" if out
// of range.
func MonthGenitive(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthsGenitive[month-1]
}
