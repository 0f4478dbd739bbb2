package date

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/devutils/internal/errors"
)

func TestShift(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()

	tests := []struct {
		name     string
		input    string
		from     time.Time
		expected string
	}{
		{name: "one day", input: "1d", from: epoch, expected: "1970-01-02"},
		{name: "one month", input: "1m", from: epoch, expected: "1970-02-01"},
		{name: "one year", input: "1y", from: epoch, expected: "1971-01-01"},
		{name: "negative day", input: "-1d", from: time.Unix(88000, 0).UTC(), expected: "1970-01-01"},
		{name: "negative month", input: "-1m", from: epoch, expected: "1969-12-01"},
		{name: "month clamps to end", input: "1m", from: time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC), expected: "2024-02-29"},
		{name: "year clamps leap day", input: "1y", from: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), expected: "2025-02-28"},
		{name: "zero", input: "0d", from: epoch, expected: "1970-01-01"},
		{name: "many days", input: "365d", from: epoch, expected: "1971-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shift(tt.input, tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestShiftErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "no unit", input: "12"},
		{name: "no amount", input: "d"},
		{name: "unknown unit", input: "3w"},
		{name: "upper case unit", input: "3D"},
		{name: "plus sign", input: "+3d"},
		{name: "spaces", input: "3 d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Shift(tt.input, time.Unix(0, 0).UTC())
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindParse), "got %v", err)
		})
	}
}

func TestApplyUsesNow(t *testing.T) {
	orig := Now
	t.Cleanup(func() { Now = orig })
	Now = func() time.Time { return time.Date(2020, time.May, 5, 0, 0, 0, 0, time.UTC) }

	got, err := Apply(context.Background(), Delta, "10d")
	require.NoError(t, err)
	assert.Equal(t, "2020-05-15", got)
}
