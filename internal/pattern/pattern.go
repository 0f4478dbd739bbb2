// Package pattern emits validating regular expressions: fixed patterns for
// common values, and patterns compiled from human date and time formats such
// as "dd/MM/YYYY" or "hh:mm am/pm".
package pattern

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	Email Action = iota
	URL
	IPv4
	IPv6
	IPvX
	Date
	Time
)

var Actions = action.NewRegistry("regex", map[string]Action{
	"email": Email,
	"url":   URL,
	"ipv4":  IPv4,
	"ipv6":  IPv6,
	"ipvx":  IPvX,
	"date":  Date,
	"time":  Time,
})

// Apply returns the pattern for act. format is only read by date and time.
func Apply(_ context.Context, act Action, format string) (string, error) {
	switch act {
	case Email:
		return emailPattern, nil
	case URL:
		return urlPattern, nil
	case IPv4:
		return ipv4Pattern, nil
	case IPv6:
		return ipv6Pattern, nil
	case IPvX:
		return ipvxPattern, nil
	case Date:
		return CompileDate(format)
	case Time:
		return CompileTime(format)
	}
	return "", action.Unhandled(Actions, act)
}

const (
	yearPart  = `[12]\d{3}`
	monthPart = `(0[1-9]|1[0-2])`
	dayPart   = `(0[1-9]|[12]\d|3[01])`
)

var dateFormat = regexp.MustCompile(`^(YYYY|yyyy|MM|mmm|dd)([-/.]?)(YYYY|yyyy|MM|mmm|dd)([-/.]?)(YYYY|yyyy|MM|mmm|dd)$`)

// CompileDate supports year-month-day, day-month-year and month-day-year
// orders with a -, / or . separator or none. dd-mmm-yyyy accepts month
// names and checks day counts per month, including leap years.
func CompileDate(format string) (string, error) {
	m := dateFormat.FindStringSubmatch(format)
	if m == nil || m[2] != m[4] {
		return "", unrecognized("date", format)
	}

	sep := regexp.QuoteMeta(m[2])
	order := normaliseYear(m[1]) + " " + normaliseYear(m[3]) + " " + normaliseYear(m[5])

	switch order {
	case "YYYY MM dd":
		return "^(" + yearPart + sep + monthPart + sep + dayPart + ")$", nil
	case "dd MM YYYY":
		return "^(" + dayPart + ")" + sep + monthPart + sep + yearPart + "$", nil
	case "MM dd YYYY":
		return "^" + monthPart + sep + "(" + dayPart + ")" + sep + yearPart + "$", nil
	case "dd mmm YYYY":
		if sep == "" {
			return "", unrecognized("date", format)
		}
		return monthNameDate(sep), nil
	}
	return "", unrecognized("date", format)
}

func normaliseYear(token string) string {
	if token == "yyyy" {
		return "YYYY"
	}
	return token
}

// monthNameDate accepts a day, a month number or abbreviation and a two or
// four digit year.
func monthNameDate(sep string) string {
	const (
		year        = `(?:(?:1[6-9]|[2-9]\d)?\d{2})`
		leapYear    = `(?:(?:1[6-9]|[2-9]\d)?(?:0[48]|[2468][048]|[13579][26])|(?:16|[2468][048]|[3579][26])00)`
		longMonths  = `(?:0?[13578]|1[02]|Jan|Mar|May|Jul|Aug|Oct|Dec)`
		notFebruary = `(?:0?[13-9]|1[0-2]|Jan|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`
		anyMonth    = `(?:0?[1-9]|1[0-2]|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`
		february    = `(?:0?2|Feb)`
		commonDays  = `(?:0?[1-9]|1\d|2[0-8])`
	)

	return "^(?:" +
		"(?:31" + sep + longMonths + "|(?:29|30)" + sep + notFebruary + "|" + commonDays + sep + anyMonth + ")" + sep + year +
		"|29" + sep + february + sep + leapYear +
		")$"
}

var timeFormat = regexp.MustCompile(`^hh:mm(:ss)?(?: (12|24|am/pm|am-pm))?$`)

// CompileTime supports hh:mm and hh:mm:ss with a 12, 24 or am/pm qualifier.
// Without a qualifier the clock is 24-hour.
func CompileTime(format string) (string, error) {
	m := timeFormat.FindStringSubmatch(strings.TrimSpace(format))
	if m == nil {
		return "", unrecognized("time", format)
	}

	seconds := m[1] != ""
	switch m[2] {
	case "12":
		if seconds {
			return `^(0?[1-9]|1[0-2]):[0-5][0-9]:[0-5][0-9]$`, nil
		}
		return `^(0?[1-9]|1[0-2]):[0-5][0-9]$`, nil
	case "am/pm", "am-pm":
		if seconds {
			return `^((1[0-2]|0?[1-9]):([0-5][0-9]):([0-5][0-9]) ?([AaPp][Mm]))$`, nil
		}
		return `^((1[0-2]|0?[1-9]):([0-5][0-9]) ?([AaPp][Mm]))$`, nil
	default:
		if seconds {
			return `^(?:[01]\d|2[0123]):(?:[012345]\d):(?:[012345]\d)$`, nil
		}
		return `^(0[0-9]|1[0-9]|2[0-3]):[0-5][0-9]$`, nil
	}
}

func unrecognized(kind, format string) error {
	if format == "" {
		return errors.NewNoContentError(fmt.Sprintf("no %s format given", kind))
	}
	return errors.NewParseError(errors.ErrCodeUnrecognized,
		fmt.Sprintf("unrecognised %s format %q", kind, format), nil)
}
