// Package urlcodec percent-encodes, decodes and dissects URLs.
package urlcodec

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	Encode Action = iota
	Decode
	Parse
)

var Actions = action.NewRegistry("url", map[string]Action{
	"encode": Encode,
	"decode": Decode,
	"parse":  Parse,
})

func Apply(_ context.Context, act Action, content string) (string, error) {
	switch act {
	case Encode:
		return EncodeComponent(content), nil
	case Decode:
		return DecodeComponent(content)
	case Parse:
		return Describe(content)
	}
	return "", action.Unhandled(Actions, act)
}

func unreserved(c byte) bool {
	return 'A' <= c && c <= 'Z' ||
		'a' <= c && c <= 'z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// EncodeComponent percent-encodes every byte outside A-Z a-z 0-9 - . _ ~.
// Space becomes %20, never +.
func EncodeComponent(s string) string {
	const hexDigits = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0F])
	}
	return b.String()
}

// DecodeComponent reverses EncodeComponent. A + stays a +.
func DecodeComponent(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", errors.NewDecodeError(errors.ErrCodeInvalidURL, "error while decoding url", err)
	}
	if !utf8.ValidString(decoded) {
		return "", errors.NewDecodeError(errors.ErrCodeInvalidUTF8, "error while decoding url: result is not valid UTF-8", nil)
	}
	return decoded, nil
}

// Describe prints the URL followed by one "name: value" line per component
// that is present. Query parameters keep their order.
func Describe(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.NewParseError(errors.ErrCodeInvalidURL, "error while parsing url", err)
	}
	if u.Scheme == "" {
		return "", errors.NewParseError(errors.ErrCodeInvalidURL, fmt.Sprintf("error while parsing url: %q has no scheme", raw), nil)
	}

	lines := []string{raw, "scheme: " + u.Scheme}

	if u.User != nil {
		if name := u.User.Username(); name != "" {
			lines = append(lines, "username: "+name)
		}
		if password, ok := u.User.Password(); ok {
			lines = append(lines, "password: "+password)
		}
	}

	if host := u.Hostname(); host != "" {
		lines = append(lines, "host: "+host)
		lines = append(lines, hostForms(host)...)
	}
	if port := u.Port(); port != "" {
		lines = append(lines, "port: "+port)
	}
	if u.Path != "" {
		lines = append(lines, "path: "+u.Path)
	} else if u.Opaque != "" {
		lines = append(lines, "path: "+u.Opaque)
	}

	params, err := orderedQuery(u.RawQuery)
	if err != nil {
		return "", errors.NewParseError(errors.ErrCodeInvalidURL, "error while parsing url query", err)
	}
	if len(params) > 0 {
		lines = append(lines, "params")
		for _, p := range params {
			lines = append(lines, fmt.Sprintf("\t%s: %s", p[0], p[1]))
		}
	}

	if u.Fragment != "" {
		lines = append(lines, "fragment: "+u.Fragment)
	}

	return strings.Join(lines, "\n"), nil
}

// hostForms returns the other spelling of an internationalised host name.
func hostForms(host string) []string {
	ascii := true
	for i := 0; i < len(host); i++ {
		if host[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}

	if !ascii {
		if puny, err := idna.ToASCII(host); err == nil && puny != host {
			return []string{"punycode: " + puny}
		}
		return nil
	}

	if strings.Contains(host, "xn--") {
		if uni, err := idna.ToUnicode(host); err == nil && uni != host {
			return []string{"unicode: " + uni}
		}
	}
	return nil
}

func orderedQuery(rawQuery string) ([][2]string, error) {
	if rawQuery == "" {
		return nil, nil
	}

	var params [][2]string
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		params = append(params, [2]string{k, v})
	}
	return params, nil
}
