// Package base64codec converts text to and from standard base64.
package base64codec

import (
	"context"
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	Encode Action = iota
	Decode
)

var Actions = action.NewRegistry("base64", map[string]Action{
	"encode": Encode,
	"decode": Decode,
})

func Apply(_ context.Context, act Action, content string) (string, error) {
	switch act {
	case Encode:
		return EncodeString(content), nil
	case Decode:
		return DecodeString(content)
	}
	return "", action.Unhandled(Actions, act)
}

// EncodeString uses the standard alphabet without padding.
func EncodeString(s string) string {
	return base64.RawStdEncoding.EncodeToString([]byte(s))
}

// DecodeString accepts padded and unpadded input. The decoded bytes must be
// UTF-8 text.
func DecodeString(s string) (string, error) {
	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return "", errors.NewDecodeError(errors.ErrCodeInvalidBase64, "invalid base64 input", err)
	}
	if !utf8.Valid(data) {
		return "", errors.NewDecodeError(errors.ErrCodeInvalidUTF8, "decoded base64 is not valid UTF-8", nil)
	}
	return string(data), nil
}
