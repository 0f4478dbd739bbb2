package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/conneroisu/devutils/internal/errors"
)

type numeralSymbol struct {
	glyph string
	value int
}

// numerals is ordered by strictly decreasing value.
var numerals = []numeralSymbol{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// MaxRoman is the largest value with a standard numeral.
const MaxRoman = 3999

// ArabicToRoman repeatedly takes the largest symbol that still fits.
func ArabicToRoman(s string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return "", errors.NotANumber(s, nil)
	}
	if n <= 0 {
		return "", errors.NewParseError(errors.ErrCodeNotANumber,
			fmt.Sprintf("cannot convert %s to a roman numeral: only positive numbers have one", s), nil)
	}
	if n > MaxRoman {
		return "", errors.NewParseError(errors.ErrCodeNotANumber,
			fmt.Sprintf("cannot convert %s to a roman numeral: the largest is %d", s, MaxRoman), nil)
	}

	var b strings.Builder
	for _, sym := range numerals {
		for n >= sym.value {
			n -= sym.value
			b.WriteString(sym.glyph)
		}
	}
	return b.String(), nil
}

// RomanToArabic strips matching glyphs in table order. Input that is not
// consumed completely, or is empty, is rejected.
func RomanToArabic(s string) (string, error) {
	rest := strings.ToUpper(strings.TrimSpace(s))
	if rest == "" {
		return "", errors.NotANumber(s, nil)
	}

	total := 0
	for _, sym := range numerals {
		for strings.HasPrefix(rest, sym.glyph) {
			total += sym.value
			rest = rest[len(sym.glyph):]
		}
	}
	if rest != "" {
		return "", errors.NotANumber(s, nil)
	}
	return strconv.Itoa(total), nil
}

// Ordinal appends the English ordinal suffix to an integer. Anything that is
// not an integer comes back unchanged.
func Ordinal(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	if n < 0 {
		n = -n
	}

	switch n % 100 {
	case 11, 12, 13:
		return s + "th"
	}
	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	default:
		return s + "th"
	}
}
