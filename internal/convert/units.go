package convert

import (
	"strconv"
	"strings"

	"github.com/conneroisu/devutils/internal/errors"
)

const (
	milesPerKilometer = 0.621371
	kilosPerPound     = 0.453592
	kelvinOffset      = 273.15
)

func CelsiusToFahrenheit(c float64) float64 { return c*9.0/5.0 + 32.0 }
func FahrenheitToCelsius(f float64) float64 { return (f - 32.0) * 5.0 / 9.0 }
func CelsiusToKelvin(c float64) float64     { return c + kelvinOffset }
func KelvinToCelsius(k float64) float64     { return k - kelvinOffset }
func FahrenheitToKelvin(f float64) float64  { return (f-32.0)*5.0/9.0 + kelvinOffset }
func KelvinToFahrenheit(k float64) float64  { return (k-kelvinOffset)*9.0/5.0 + 32.0 }
func KilometersToMiles(km float64) float64  { return km * milesPerKilometer }
func MilesToKilometers(mi float64) float64  { return mi / milesPerKilometer }
func PoundsToKilos(lbs float64) float64     { return lbs * kilosPerPound }
func KilosToPounds(kgs float64) float64     { return kgs / kilosPerPound }

// ParseNumber parses a decimal operand.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.NotANumber(s, nil)
	}
	return v, nil
}

// FormatNumber renders the shortest decimal that round-trips, never with an
// exponent: 32, 273.15, 0.621371.
func FormatNumber(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func convertNumber(s string, fn func(float64) float64) (string, error) {
	v, err := ParseNumber(s)
	if err != nil {
		return "", err
	}
	return FormatNumber(fn(v)), nil
}
