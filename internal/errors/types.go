package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind represents the category a failure belongs to. Every kind maps to
// exactly one exit status.
type ErrorKind string

const (
	KindNoContent     ErrorKind = "no_content"
	KindInteractive   ErrorKind = "interactive"
	KindInvalidAction ErrorKind = "invalid_action"
	KindDecode        ErrorKind = "decode"
	KindParse         ErrorKind = "parse"
	KindUnsupported   ErrorKind = "unsupported"
	KindConfig        ErrorKind = "config"
	KindInternal      ErrorKind = "internal"
)

// Common error codes.
const (
	ErrCodeNoContent         = "ERR_NO_CONTENT"
	ErrCodeEditorFailed      = "ERR_EDITOR_FAILED"
	ErrCodeInvalidAction     = "ERR_INVALID_ACTION"
	ErrCodeInvalidBase64     = "ERR_INVALID_BASE64"
	ErrCodeInvalidHex        = "ERR_INVALID_HEX"
	ErrCodeInvalidBinary     = "ERR_INVALID_BINARY"
	ErrCodeInvalidURL        = "ERR_INVALID_URL"
	ErrCodeInvalidUTF8       = "ERR_INVALID_UTF8"
	ErrCodeInvalidColour     = "ERR_INVALID_COLOUR"
	ErrCodeNotANumber        = "ERR_NOT_A_NUMBER"
	ErrCodeInvalidDate       = "ERR_INVALID_DATE"
	ErrCodeInvalidDocument   = "ERR_INVALID_DOCUMENT"
	ErrCodeUnrecognized      = "ERR_UNRECOGNIZED_FORMAT"
	ErrCodeUnsupported       = "ERR_UNSUPPORTED"
	ErrCodeNothingToGenerate = "ERR_NOTHING_TO_GENERATE"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
	ErrCodeInternal          = "ERR_INTERNAL"
)

// ToolError is a structured error type with context.
type ToolError struct {
	Kind    ErrorKind
	Code    string
	Domain  string
	Message string
	Cause   error
	Valid   []string
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Domain != "" {
		parts = append(parts, e.Domain+":")
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// UserMessage renders the error the way it is shown on standard error.
func (e *ToolError) UserMessage() string {
	msg := e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	if len(e.Valid) > 0 {
		msg += ". Valid values are: " + strings.Join(e.Valid, ", ")
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ToolError) Is(target error) bool {
	var t *ToolError
	if errors.As(target, &t) {
		return e.Kind == t.Kind && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ToolError) WithContext(key string, value interface{}) *ToolError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithDomain records which command domain produced the error.
func (e *ToolError) WithDomain(domain string) *ToolError {
	e.Domain = domain

	return e
}

// Error creation functions

// NewNoContentError reports that no operand was supplied.
func NewNoContentError(message string) *ToolError {
	return &ToolError{
		Kind:    KindNoContent,
		Code:    ErrCodeNoContent,
		Message: message,
	}
}

// NewInteractiveError reports a failed editor session.
func NewInteractiveError(message string, cause error) *ToolError {
	return &ToolError{
		Kind:    KindInteractive,
		Code:    ErrCodeEditorFailed,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidActionError reports an action name missing from a domain's
// registry. valid must already be sorted and lower-cased.
func NewInvalidActionError(domain, raw string, valid []string) *ToolError {
	return NewInvalidNameError(domain, "action", raw, valid)
}

// NewInvalidNameError is NewInvalidActionError for closed sets that are not
// actions, such as datetime formats.
func NewInvalidNameError(domain, noun, raw string, valid []string) *ToolError {
	return &ToolError{
		Kind:    KindInvalidAction,
		Code:    ErrCodeInvalidAction,
		Domain:  domain,
		Message: fmt.Sprintf("invalid %s %s %q", domain, noun, raw),
		Valid:   valid,
	}
}

// NewDecodeError creates a malformed-encoding error.
func NewDecodeError(code, message string, cause error) *ToolError {
	return &ToolError{
		Kind:    KindDecode,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewParseError creates an unparseable-input error.
func NewParseError(code, message string, cause error) *ToolError {
	return &ToolError{
		Kind:    KindParse,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewUnsupportedError creates an error for a valid request that cannot be served.
func NewUnsupportedError(code, message string) *ToolError {
	return &ToolError{
		Kind:    KindUnsupported,
		Code:    code,
		Message: message,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *ToolError {
	return &ToolError{
		Kind:    KindConfig,
		Code:    ErrCodeConfigInvalid,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(message string, cause error) *ToolError {
	return &ToolError{
		Kind:    KindInternal,
		Code:    ErrCodeInternal,
		Message: message,
		Cause:   cause,
	}
}

// NotANumber is the shared failure for numeric operands.
func NotANumber(input string, cause error) *ToolError {
	return NewParseError(ErrCodeNotANumber, fmt.Sprintf("cannot convert %s to a number", input), cause)
}

// IsKind reports whether err carries a ToolError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Kind == kind
	}

	return false
}

// Wrap converts an arbitrary error into a ToolError, keeping an existing one.
func Wrap(err error, kind ErrorKind, code, message string) *ToolError {
	if err == nil {
		return nil
	}

	var te *ToolError
	if errors.As(err, &te) {
		return te
	}

	return &ToolError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}
