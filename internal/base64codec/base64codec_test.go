package base64codec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/devutils/internal/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "https://theworkoutcalculator.com/", expected: "aHR0cHM6Ly90aGV3b3Jrb3V0Y2FsY3VsYXRvci5jb20v"},
		{input: "a", expected: "YQ"},
		{input: "ab", expected: "YWI"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Apply(context.Background(), Encode, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		kind     errors.ErrorKind
	}{
		{name: "unpadded", input: "aHR0cHM6Ly90aGV3b3Jrb3V0Y2FsY3VsYXRvci5jb20v", expected: "https://theworkoutcalculator.com/"},
		{name: "padded", input: "YQ==", expected: "a"},
		{name: "raw", input: "YQ", expected: "a"},
		{name: "not base64", input: "!!!", kind: errors.KindDecode},
		{name: "impossible length", input: "Y", kind: errors.KindDecode},
		{name: "binary result", input: "/w", kind: errors.KindDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(context.Background(), Decode, tt.input)
			if tt.kind != "" {
				require.Error(t, err)
				assert.True(t, errors.IsKind(err, tt.kind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
