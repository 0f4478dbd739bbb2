package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/devutils/internal/errors"
)

type temperature int

const (
	celsius2fahrenheit temperature = iota
	c2f
	fahrenheit2celsius
)

func newTemperatureRegistry() *Registry[temperature] {
	return NewRegistry("convert", map[string]temperature{
		"celsius2fahrenheit": celsius2fahrenheit,
		"c2f":                c2f,
		"Fahrenheit2Celsius": fahrenheit2celsius,
	})
}

func TestResolve(t *testing.T) {
	registry := newTemperatureRegistry()

	tests := []struct {
		name     string
		raw      string
		expected temperature
		wantErr  bool
	}{
		{name: "exact", raw: "celsius2fahrenheit", expected: celsius2fahrenheit},
		{name: "mixed case", raw: "CeLsIuS2FaHrEnHeIt", expected: celsius2fahrenheit},
		{name: "alias is its own variant", raw: "C2F", expected: c2f},
		{name: "registered with capitals", raw: "fahrenheit2celsius", expected: fahrenheit2celsius},
		{name: "prefix is not a match", raw: "celsius", wantErr: true},
		{name: "surrounding spaces are not trimmed", raw: " c2f", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Resolve(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsKind(err, errors.KindInvalidAction))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveErrorListsValidNames(t *testing.T) {
	registry := newTemperatureRegistry()

	_, err := registry.Resolve("bogus")
	require.Error(t, err)

	var te *errors.ToolError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, []string{"c2f", "celsius2fahrenheit", "fahrenheit2celsius"}, te.Valid)
	assert.Equal(t, "convert", te.Domain)
	assert.Contains(t, te.UserMessage(), "Valid values are: c2f, celsius2fahrenheit, fahrenheit2celsius")
	assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
}

func TestNamesIsACopy(t *testing.T) {
	registry := newTemperatureRegistry()

	names := registry.Names()
	names[0] = "mutated"

	assert.Equal(t, "c2f", registry.Names()[0])
	assert.Equal(t, "c2f, celsius2fahrenheit, fahrenheit2celsius", registry.Usage())
	assert.Equal(t, "fahrenheit2celsius", registry.Name(fahrenheit2celsius))
	assert.Equal(t, "convert", registry.Domain())
}

func TestNewRegistryPanicsOnCollision(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry("convert", map[string]temperature{
			"c2f": c2f,
			"C2F": celsius2fahrenheit,
		})
	})
	assert.Panics(t, func() {
		NewRegistry("convert", map[string]temperature{
			"c2f":                c2f,
			"celsius2fahrenheit": c2f,
		})
	})
}
