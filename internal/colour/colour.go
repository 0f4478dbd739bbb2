// Package colour converts CSS colours between hex, rgb() and hsl() notation.
package colour

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	Hex2RGB Action = iota
	Hex2HSL
	RGB2Hex
	HSL2Hex
)

var Actions = action.NewRegistry("colour", map[string]Action{
	"hex2rgb": Hex2RGB,
	"hex2hsl": Hex2HSL,
	"rgb2hex": RGB2Hex,
	"hsl2hex": HSL2Hex,
})

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern = regexp.MustCompile(`^(?i)rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslPattern = regexp.MustCompile(`^(?i)hsl\(\s*(\d{1,3}(?:\.\d+)?)\s*,\s*(\d{1,3}(?:\.\d+)?)%?\s*,\s*(\d{1,3}(?:\.\d+)?)%?\s*\)$`)
)

// RGB is a colour with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// HSL holds hue in degrees and saturation and lightness in percent.
type HSL struct {
	H, S, L float64
}

func Apply(_ context.Context, act Action, content string) (string, error) {
	content = strings.TrimSpace(content)

	switch act {
	case Hex2RGB:
		rgb, err := ParseHex(content)
		if err != nil {
			return "", err
		}
		return rgb.CSS(), nil
	case Hex2HSL:
		rgb, err := ParseHex(content)
		if err != nil {
			return "", err
		}
		return rgb.HSL().CSS(), nil
	case RGB2Hex:
		rgb, err := ParseRGB(content)
		if err != nil {
			return "", err
		}
		return rgb.Hex(), nil
	case HSL2Hex:
		hsl, err := ParseHSL(content)
		if err != nil {
			return "", err
		}
		return hsl.RGB().Hex(), nil
	}
	return "", action.Unhandled(Actions, act)
}

// ParseHex accepts #rgb, rgb, #rrggbb and rrggbb.
func ParseHex(s string) (RGB, error) {
	if !hexPattern.MatchString(s) {
		return RGB{}, errors.NewDecodeError(errors.ErrCodeInvalidColour,
			fmt.Sprintf("invalid hex colour %q, expected #rrggbb or #rgb", s), nil)
	}
	v := color.HexToRgb(s)
	if len(v) != 3 {
		return RGB{}, errors.NewDecodeError(errors.ErrCodeInvalidColour,
			fmt.Sprintf("invalid hex colour %q, expected #rrggbb or #rgb", s), nil)
	}
	return RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil
}

func ParseRGB(s string) (RGB, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, errors.NewDecodeError(errors.ErrCodeInvalidColour,
			fmt.Sprintf("invalid rgb colour %q, expected rgb(r,g,b)", s), nil)
	}

	var ch [3]uint8
	for i, raw := range m[1:] {
		n, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return RGB{}, errors.NewDecodeError(errors.ErrCodeInvalidColour,
				fmt.Sprintf("rgb channel %s is outside 0-255", raw), nil)
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func ParseHSL(s string) (HSL, error) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, errors.NewDecodeError(errors.ErrCodeInvalidColour,
			fmt.Sprintf("invalid hsl colour %q, expected hsl(h,s%%,l%%)", s), nil)
	}

	h, _ := strconv.ParseFloat(m[1], 64)
	sat, _ := strconv.ParseFloat(m[2], 64)
	l, _ := strconv.ParseFloat(m[3], 64)
	if h > 360 || sat > 100 || l > 100 {
		return HSL{}, errors.NewDecodeError(errors.ErrCodeInvalidColour,
			fmt.Sprintf("hsl colour %q is out of range, hue is 0-360 and saturation and lightness 0-100%%", s), nil)
	}
	return HSL{H: h, S: sat, L: l}, nil
}

func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL keeps full precision; CSS does the rounding.
func (c RGB) HSL() HSL {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	chroma := hi - lo
	l := (hi + lo) / 2

	var h, s float64
	if chroma != 0 {
		s = chroma / (1 - math.Abs(2*l-1))
		switch hi {
		case r:
			h = math.Mod((g-b)/chroma+6, 6)
		case g:
			h = (b-r)/chroma + 2
		default:
			h = (r-g)/chroma + 4
		}
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

// CSS rounds every component to a whole number.
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)",
		int(math.Round(c.H))%360, int(math.Round(c.S)), int(math.Round(c.L)))
}

// RGB rounds each channel to the nearest integer.
func (c HSL) RGB() RGB {
	h := math.Mod(c.H, 360) / 60
	s := c.S / 100
	l := c.L / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{R: channel(r + m), G: channel(g + m), B: channel(b + m)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
