package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	toolerrors "github.com/conneroisu/devutils/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{name: "debug", input: "debug", expected: LevelDebug},
		{name: "upper case info", input: "INFO", expected: LevelInfo},
		{name: "warning alias", input: "warning", expected: LevelWarn},
		{name: "padded error", input: " error ", expected: LevelError},
		{name: "unknown", input: "verbose", expected: LevelWarn, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "hidden debug")
	logger.Info(ctx, "hidden info")
	logger.Warn(ctx, nil, "shown warning")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warning")
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})

	logger.WithComponent("dispatch").With("domain", "hash").Info(context.Background(), "resolved", "action", "md5")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "resolved", entry["msg"])
	assert.Equal(t, "dispatch", entry["component"])
	assert.Equal(t, "hash", entry["domain"])
	assert.Equal(t, "md5", entry["action"])
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		logger.Error(context.Background(), errors.New("boom"), "dropped")
	})
}

func TestLogToolError(t *testing.T) {
	var capturedMessage string
	var capturedFields []interface{}

	mock := &mockLogger{
		debugFunc: func(ctx context.Context, msg string, fields ...interface{}) {
			capturedMessage = msg
			capturedFields = fields
		},
	}

	err := toolerrors.NewInvalidActionError("hash", "bogus", []string{"md5"})
	LogToolError(context.Background(), mock, err)

	assert.Equal(t, `invalid hash action "bogus"`, capturedMessage)
	fields := fieldsToMap(capturedFields)
	assert.Equal(t, "invalid_action", fields["kind"])
	assert.Equal(t, toolerrors.ErrCodeInvalidAction, fields["code"])
	assert.Equal(t, "hash", fields["domain"])

	t.Run("plain error", func(t *testing.T) {
		LogToolError(context.Background(), mock, errors.New("plain"))
		assert.Equal(t, "command failed", capturedMessage)
		assert.Equal(t, 2, mock.debugCallCount)
	})
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf})

	perf := StartOperation(logger, "hash.md5")
	perf.End(context.Background())

	assert.Contains(t, buf.String(), "operation completed")
	assert.Contains(t, buf.String(), "operation=hash.md5")
}

// Mock logger for testing
type mockLogger struct {
	debugCallCount int
	debugFunc      func(ctx context.Context, msg string, fields ...interface{})
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	m.debugCallCount++
	if m.debugFunc != nil {
		m.debugFunc(ctx, msg, fields...)
	}
}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...interface{})             {}
func (m *mockLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {}

func (m *mockLogger) With(fields ...interface{}) Logger {
	return m
}

func (m *mockLogger) WithComponent(component string) Logger {
	return m
}

func fieldsToMap(fields []interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			result[key] = fields[i+1]
		}
	}
	return result
}
