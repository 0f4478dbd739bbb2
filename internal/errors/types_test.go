package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolErrorMessages(t *testing.T) {
	err := NewInvalidActionError("hash", "bogus", []string{"md5", "sha256", "sha512"})

	assert.Equal(t, `[ERR_INVALID_ACTION] hash: invalid hash action "bogus"`, err.Error())
	assert.Equal(t, `invalid hash action "bogus". Valid values are: md5, sha256, sha512`, err.UserMessage())

	named := NewInvalidNameError("datetime", "format", "iso", []string{"epoch", "iso8601"})
	assert.Equal(t, `invalid datetime format "iso". Valid values are: epoch, iso8601`, named.UserMessage())

	cause := fmt.Errorf("illegal base64 data at input byte 0")
	decode := NewDecodeError(ErrCodeInvalidBase64, "invalid base64", cause)
	assert.Equal(t, "invalid base64: illegal base64 data at input byte 0", decode.UserMessage())
	assert.Equal(t, cause, errors.Unwrap(decode))
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  *ToolError
		kind ErrorKind
		code int
	}{
		{name: "no content", err: NewNoContentError("nothing"), kind: KindNoContent, code: ExitUsage},
		{name: "invalid action", err: NewInvalidActionError("url", "x", nil), kind: KindInvalidAction, code: ExitUsage},
		{name: "decode", err: NewDecodeError(ErrCodeInvalidHex, "bad hex", nil), kind: KindDecode, code: ExitDataErr},
		{name: "parse", err: NotANumber("abc", nil), kind: KindParse, code: ExitDataErr},
		{name: "unsupported", err: NewUnsupportedError(ErrCodeUnsupported, "no"), kind: KindUnsupported, code: ExitDataErr},
		{name: "interactive", err: NewInteractiveError("editor", nil), kind: KindInteractive, code: ExitSoftware},
		{name: "config", err: NewConfigError("bad", nil), kind: KindConfig, code: ExitSoftware},
		{name: "internal", err: NewInternalError("boom", nil), kind: KindInternal, code: ExitSoftware},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.True(t, IsKind(tt.err, tt.kind))
			assert.True(t, IsKind(fmt.Errorf("wrapped: %w", tt.err), tt.kind))
			assert.Equal(t, tt.code, ExitCode(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(fmt.Errorf("unknown flag: --nope")))
	assert.Equal(t, 65, ExitCode(&ExitError{Code: 65, Err: NewNoContentError("x")}))

	exit := &ExitError{Code: ExitSoftware}
	assert.Equal(t, "exit status 70", exit.Error())
}

func TestIsMatchesKindAndCode(t *testing.T) {
	err := fmt.Errorf("context: %w", NotANumber("x", nil))

	assert.True(t, errors.Is(err, &ToolError{Kind: KindParse, Code: ErrCodeNotANumber}))
	assert.False(t, errors.Is(err, &ToolError{Kind: KindParse, Code: ErrCodeInvalidDate}))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, KindInternal, ErrCodeInternal, "x"))

	original := NewParseError(ErrCodeInvalidDate, "bad date", nil)
	assert.Same(t, original, Wrap(fmt.Errorf("outer: %w", original), KindInternal, ErrCodeInternal, "x"))

	wrapped := Wrap(fmt.Errorf("disk"), KindInternal, ErrCodeInternal, "cannot write")
	require.NotNil(t, wrapped)
	assert.Equal(t, KindInternal, wrapped.Kind)
	assert.Equal(t, "cannot write: disk", wrapped.UserMessage())
}

func TestWithContext(t *testing.T) {
	err := NewParseError(ErrCodeInvalidDate, "bad unit", nil).
		WithContext("valid_units", "d, m, y").
		WithDomain("date")

	assert.Equal(t, "d, m, y", err.Context["valid_units"])
	assert.Equal(t, "date", err.Domain)
}
