package convert

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/conneroisu/devutils/internal/errors"
)

// StringToHex renders each UTF-8 byte as two lowercase hex digits.
func StringToHex(s string) string {
	return hex.EncodeToString([]byte(s))
}

// HexToString decodes pairs of hex digits into UTF-8 text.
func HexToString(s string) (string, error) {
	if len(s)%2 != 0 {
		return "", errors.NewDecodeError(errors.ErrCodeInvalidHex, "hex string must have an even number of characters", nil)
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.NewDecodeError(errors.ErrCodeInvalidHex, "invalid hex string", err)
	}
	if !utf8.Valid(data) {
		return "", errors.NewDecodeError(errors.ErrCodeInvalidUTF8, "decoded hex is not valid UTF-8", nil)
	}
	return string(data), nil
}

var natoAlphabet = map[rune]string{
	'a': "Alpha", 'b': "Bravo", 'c': "Charlie", 'd': "Delta", 'e': "Echo",
	'f': "Foxtrot", 'g': "Golf", 'h': "Hotel", 'i': "India", 'j': "Juliet",
	'k': "Kilo", 'l': "Lima", 'm': "Mike", 'n': "November", 'o': "Oscar",
	'p': "Papa", 'q': "Quebec", 'r': "Romeo", 's': "Sierra", 't': "Tango",
	'u': "Uniform", 'v': "Victor", 'w': "Whiskey", 'x': "X-ray", 'y': "Yankee",
	'z': "Zulu",
}

// TextToNato spells ASCII letters with the NATO alphabet. Other characters
// pass through as their own word.
func TextToNato(s string) string {
	words := make([]string, 0, len(s))
	for _, r := range s {
		if word, ok := natoAlphabet[unicode.ToLower(r)]; ok && r < utf8.RuneSelf {
			words = append(words, word)
			continue
		}
		words = append(words, string(r))
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

var slugFolder = cases.Lower(language.Und)

// Slug lower-cases s, strips accents and joins the remaining runs of ASCII
// letters and digits with single hyphens.
func Slug(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	stripped = slugFolder.String(stripped)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range stripped {
		if 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// TextToASCIIBinary writes each character as an 8-bit group. Characters
// outside Latin-1 do not fit in a byte and are rejected.
func TextToASCIIBinary(s string) (string, error) {
	groups := make([]string, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return "", errors.NewUnsupportedError(errors.ErrCodeUnsupported,
				fmt.Sprintf("character %q does not fit in 8 bits", r))
		}
		groups = append(groups, fmt.Sprintf("%08b", r))
	}
	return strings.Join(groups, " "), nil
}

// ASCIIBinaryToText reads whitespace-separated binary groups, one Latin-1
// character each.
func ASCIIBinaryToText(s string) (string, error) {
	var b strings.Builder
	for _, group := range strings.Fields(s) {
		v, err := strconv.ParseUint(group, 2, 8)
		if err != nil {
			return "", errors.NewDecodeError(errors.ErrCodeInvalidBinary,
				fmt.Sprintf("invalid binary character %s", group), nil)
		}
		b.WriteRune(rune(v))
	}
	return b.String(), nil
}
