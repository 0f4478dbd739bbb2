package colour

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/devutils/internal/errors"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		input    string
		expected string
	}{
		{name: "hex2rgb", action: "hex2rgb", input: "#1EA54C", expected: "rgb(30,165,76)"},
		{name: "hex2rgb without hash", action: "hex2rgb", input: "1ea54c", expected: "rgb(30,165,76)"},
		{name: "hex2rgb short form", action: "hex2rgb", input: "#abc", expected: "rgb(170,187,204)"},
		{name: "hex2hsl", action: "hex2hsl", input: "#1EA54C", expected: "hsl(140,69%,38%)"},
		{name: "hex2hsl white", action: "hex2hsl", input: "#ffffff", expected: "hsl(0,0%,100%)"},
		{name: "hex2hsl red", action: "hex2hsl", input: "#ff0000", expected: "hsl(0,100%,50%)"},
		{name: "hex2hsl green", action: "hex2hsl", input: "#00ff00", expected: "hsl(120,100%,50%)"},
		{name: "hex2hsl blue", action: "hex2hsl", input: "#0000ff", expected: "hsl(240,100%,50%)"},
		{name: "hex2hsl magenta", action: "hex2hsl", input: "#ff00ff", expected: "hsl(300,100%,50%)"},
		{name: "hex2hsl purple", action: "hex2hsl", input: "#800080", expected: "hsl(300,100%,25%)"},
		{name: "hex2hsl black", action: "hex2hsl", input: "#000", expected: "hsl(0,0%,0%)"},
		{name: "rgb2hex", action: "rgb2hex", input: "rgb(30,165,76)", expected: "#1ea54c"},
		{name: "rgb2hex with spaces", action: "rgb2hex", input: "rgb(0, 8, 255)", expected: "#0008ff"},
		{name: "hsl2hex", action: "hsl2hex", input: "hsl(140,69%,38%)", expected: "#1ea44b"},
		{name: "hsl2hex red", action: "hsl2hex", input: "hsl(0,100%,50%)", expected: "#ff0000"},
		{name: "hsl2hex grey", action: "hsl2hex", input: "hsl(0,0%,50%)", expected: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, err := Actions.Resolve(tt.action)
			require.NoError(t, err)

			got, err := Apply(context.Background(), act, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		input   string
		message string
	}{
		{name: "hex too short", action: Hex2RGB, input: "#ab", message: "#rrggbb"},
		{name: "hex not hex", action: Hex2HSL, input: "#gggggg", message: "#rrggbb"},
		{name: "rgb shape", action: RGB2Hex, input: "30,165,76", message: "rgb(r,g,b)"},
		{name: "rgb channel range", action: RGB2Hex, input: "rgb(256,0,0)", message: "0-255"},
		{name: "hsl shape", action: HSL2Hex, input: "140,69,38", message: "hsl(h,s%,l%)"},
		{name: "hsl range", action: HSL2Hex, input: "hsl(400,50%,50%)", message: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(context.Background(), tt.action, tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindDecode))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
