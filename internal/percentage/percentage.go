// Package percentage does percentage arithmetic on flag operands.
package percentage

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	To Action = iota
	Of
	Change
)

var Actions = action.NewRegistry("percentage", map[string]Action{
	"to":     To,
	"of":     Of,
	"change": Change,
})

// Options carries the operands. A nil operand was not supplied.
type Options struct {
	From       *float64
	To         *float64
	Percentage *float64
	Of         *float64
	Precision  int
}

func Apply(_ context.Context, act Action, _ string, opts Options) (string, error) {
	switch act {
	case To:
		from, to, err := pair(opts.From, "--from", opts.To, "--to")
		if err != nil {
			return "", err
		}
		v, err := ToPercentage(from, to)
		if err != nil {
			return "", err
		}
		return format(v, opts.Precision) + "%", nil
	case Of:
		pct, of, err := pair(opts.Percentage, "--percentage", opts.Of, "--of")
		if err != nil {
			return "", err
		}
		return format(OfValue(pct, of), opts.Precision), nil
	case Change:
		from, to, err := pair(opts.From, "--from", opts.To, "--to")
		if err != nil {
			return "", err
		}
		v, err := ChangePercentage(from, to)
		if err != nil {
			return "", err
		}
		return format(v, opts.Precision) + "%", nil
	}
	return "", action.Unhandled(Actions, act)
}

// ToPercentage returns to as a percentage of from.
func ToPercentage(from, to float64) (float64, error) {
	if from == 0 {
		return 0, errors.NewParseError(errors.ErrCodeNotANumber, "--from cannot be 0", nil)
	}
	return to / from * 100, nil
}

// OfValue returns pct percent of base.
func OfValue(pct, base float64) float64 {
	return pct / 100 * base
}

// ChangePercentage returns the relative change from from to to.
func ChangePercentage(from, to float64) (float64, error) {
	if from == 0 {
		return 0, errors.NewParseError(errors.ErrCodeNotANumber, "--from cannot be 0", nil)
	}
	return (to - from) / math.Abs(from) * 100, nil
}

func pair(a *float64, aFlag string, b *float64, bFlag string) (float64, float64, error) {
	switch {
	case a == nil:
		return 0, 0, errors.NewNoContentError("missing " + aFlag)
	case b == nil:
		return 0, 0, errors.NewNoContentError("missing " + bFlag)
	}
	return *a, *b, nil
}

func format(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		return s[1:]
	}
	return s
}
