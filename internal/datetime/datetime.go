// Package datetime converts instants between textual and numeric
// timestamp formats. Every rendering is in UTC.
package datetime

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	Convert Action = iota
)

var Actions = action.NewRegistry("datetime", map[string]Action{
	"convert": Convert,
})

// Format names a timestamp representation accepted by --from and --to.
type Format int

const (
	ISO8601 Format = iota
	RFC3339
	RFC2822
	ISO9075
	Epoch
	Unix
)

var Formats = action.NewNamedRegistry("datetime", "format", map[string]Format{
	"iso8601": ISO8601,
	"rfc3339": RFC3339,
	"rfc2822": RFC2822,
	"iso9075": ISO9075,
	"epoch":   Epoch,
	"unix":    Unix,
})

const (
	rfc3339Layout = "2006-01-02T15:04:05.999999999-07:00"
	rfc2822Layout = "Mon, 02 Jan 2006 15:04:05 -0700"
	iso9075Layout = "2006-01-02 15:04:05"
)

type (
	parser   func(string) (time.Time, error)
	renderer func(time.Time) (string, error)
)

var parsers = map[Format]parser{
	ISO8601: parseLayouts(time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05.999999999Z07:00"),
	RFC3339: parseLayouts(time.RFC3339Nano, "2006-01-02 15:04:05.999999999Z07:00"),
	RFC2822: parseLayouts(time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700", "02 Jan 2006 15:04:05 -0700", "2 Jan 2006 15:04:05 -0700"),
	ISO9075: parseLayouts(iso9075Layout),
	Epoch:   parseSeconds,
	Unix:    parseSeconds,
}

var renderers = map[Format]renderer{
	ISO8601: renderLayout(rfc3339Layout),
	RFC3339: renderLayout(rfc3339Layout),
	RFC2822: renderLayout(rfc2822Layout),
	ISO9075: renderLayout(iso9075Layout),
	Epoch:   renderSeconds,
	Unix:    renderSeconds,
}

// Options selects the input and output formats of a conversion.
type Options struct {
	From Format
	To   Format
}

func Apply(_ context.Context, act Action, content string, opts Options) (string, error) {
	switch act {
	case Convert:
		return ConvertBetween(content, opts.From, opts.To)
	}
	return "", action.Unhandled(Actions, act)
}

// ConvertBetween parses content as from and renders the instant as to.
func ConvertBetween(content string, from, to Format) (string, error) {
	parse, ok := parsers[from]
	if !ok {
		return "", errors.NewUnsupportedError(errors.ErrCodeUnsupported,
			fmt.Sprintf("cannot read datetime format %s", Formats.Name(from)))
	}
	render, ok := renderers[to]
	if !ok {
		return "", errors.NewUnsupportedError(errors.ErrCodeUnsupported,
			fmt.Sprintf("cannot write datetime format %s", Formats.Name(to)))
	}

	t, err := parse(strings.TrimSpace(content))
	if err != nil {
		return "", errors.NewParseError(errors.ErrCodeInvalidDate,
			fmt.Sprintf("cannot parse %s as %s", content, Formats.Name(from)), err)
	}

	out, err := render(t.UTC())
	if err != nil {
		return "", errors.NewUnsupportedError(errors.ErrCodeUnsupported,
			fmt.Sprintf("cannot write %s as %s: %v", content, Formats.Name(to), err))
	}
	return out, nil
}

func parseLayouts(layouts ...string) parser {
	return func(s string) (time.Time, error) {
		var firstErr error
		for _, layout := range layouts {
			t, err := time.Parse(layout, s)
			if err == nil {
				return t, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		return time.Time{}, firstErr
	}
}

func parseSeconds(s string) (time.Time, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0), nil
}

// renderLayout refuses years a four digit field cannot hold.
func renderLayout(layout string) renderer {
	return func(t time.Time) (string, error) {
		if y := t.Year(); y < 0 || y > 9999 {
			return "", fmt.Errorf("year %d is out of range", y)
		}
		return t.Format(layout), nil
	}
}

func renderSeconds(t time.Time) (string, error) {
	return strconv.FormatInt(t.Unix(), 10), nil
}
