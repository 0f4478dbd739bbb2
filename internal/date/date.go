// Package date shifts calendar dates by a signed day, month or year delta.
package date

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	Delta Action = iota
)

var Actions = action.NewRegistry("date", map[string]Action{
	"delta": Delta,
})

const layout = "2006-01-02"

var deltaPattern = regexp.MustCompile(`^(?i)(-?)([0-9]+)([a-z]+)$`)

// Now is the reference instant for Apply.
var Now = func() time.Time { return time.Now().UTC() }

func Apply(_ context.Context, act Action, content string) (string, error) {
	switch act {
	case Delta:
		return Shift(content, Now())
	}
	return "", action.Unhandled(Actions, act)
}

// Shift applies a delta such as "3d", "-1m" or "2y" to from and returns the
// resulting date. Month and year steps clamp to the last day of the target
// month.
func Shift(content string, from time.Time) (string, error) {
	m := deltaPattern.FindStringSubmatch(content)
	if m == nil {
		return "", errors.NewParseError(errors.ErrCodeInvalidDate,
			fmt.Sprintf("invalid delta %q, expected something like 3d, -1m or 2y", content), nil)
	}

	amount, err := strconv.Atoi(m[2])
	if err != nil {
		return "", errors.NewParseError(errors.ErrCodeInvalidDate, fmt.Sprintf("delta %s is too large", m[2]), err)
	}
	if m[1] == "-" {
		amount = -amount
	}

	var shifted time.Time
	switch m[3] {
	case "d":
		shifted = from.AddDate(0, 0, amount)
	case "m":
		shifted = addMonths(from, amount)
	case "y":
		shifted = addMonths(from, 12*amount)
	default:
		return "", errors.NewParseError(errors.ErrCodeInvalidDate,
			fmt.Sprintf("invalid delta unit %q", m[3]), nil).
			WithContext("valid_units", "d, m, y")
	}

	return shifted.Format(layout), nil
}

// addMonths differs from time.AddDate, which normalises Jan 31 + 1 month to
// early March.
func addMonths(t time.Time, months int) time.Time {
	y, mon, d := t.Date()
	first := time.Date(y, mon+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
