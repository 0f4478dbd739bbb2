// Package convert holds the document, text, unit and numeral conversions.
package convert

import (
	"context"

	"github.com/conneroisu/devutils/internal/action"
)

type Action int

const (
	JSON2CSV Action = iota
	JSON2YAML
	YAML2JSON
	CSV2TSV
	String2Hex
	Hex2String
	Text2Nato
	Slugify
	Celsius2Fahrenheit
	C2F
	Fahrenheit2Celsius
	F2C
	Celsius2Kelvin
	C2K
	Kelvin2Celsius
	K2C
	Fahrenheit2Kelvin
	F2K
	Kelvin2Fahrenheit
	K2F
	Text2ASCIIBinary
	ASCIIBinary2Text
	Kilometers2Miles
	Km2Mi
	Miles2Kilometers
	Mi2Km
	Pounds2Kilos
	Lbs2Kgs
	Kilos2Pounds
	Kgs2Lbs
	Arabic2Roman
	Roman2Arabic
	ToOrdinal
	ToOrdinalSnake
)

var Actions = action.NewRegistry("convert", map[string]Action{
	"json2csv":           JSON2CSV,
	"json2yaml":          JSON2YAML,
	"yaml2json":          YAML2JSON,
	"csv2tsv":            CSV2TSV,
	"string2hex":         String2Hex,
	"hex2string":         Hex2String,
	"text2nato":          Text2Nato,
	"slugify":            Slugify,
	"celsius2fahrenheit": Celsius2Fahrenheit,
	"c2f":                C2F,
	"fahrenheit2celsius": Fahrenheit2Celsius,
	"f2c":                F2C,
	"celsius2kelvin":     Celsius2Kelvin,
	"c2k":                C2K,
	"kelvin2celsius":     Kelvin2Celsius,
	"k2c":                K2C,
	"fahrenheit2kelvin":  Fahrenheit2Kelvin,
	"f2k":                F2K,
	"kelvin2fahrenheit":  Kelvin2Fahrenheit,
	"k2f":                K2F,
	"text2asciibinary":   Text2ASCIIBinary,
	"asciibinary2text":   ASCIIBinary2Text,
	"kilometers2miles":   Kilometers2Miles,
	"km2mi":              Km2Mi,
	"miles2kilometers":   Miles2Kilometers,
	"mi2km":              Mi2Km,
	"pounds2kilos":       Pounds2Kilos,
	"lbs2kgs":            Lbs2Kgs,
	"kilos2pounds":       Kilos2Pounds,
	"kgs2lbs":            Kgs2Lbs,
	"arabic2roman":       Arabic2Roman,
	"roman2arabic":       Roman2Arabic,
	"toordinal":          ToOrdinal,
	"to_ordinal":         ToOrdinalSnake,
})

// Apply runs one conversion. Every alias is listed next to its long name.
func Apply(_ context.Context, act Action, content string) (string, error) {
	switch act {
	case JSON2CSV:
		return JSONToCSV(content)
	case JSON2YAML:
		return JSONToYAML(content)
	case YAML2JSON:
		return YAMLToJSON(content)
	case CSV2TSV:
		return CSVToTSV(content)
	case String2Hex:
		return StringToHex(content), nil
	case Hex2String:
		return HexToString(content)
	case Text2Nato:
		return TextToNato(content), nil
	case Slugify:
		return Slug(content), nil
	case Celsius2Fahrenheit, C2F:
		return convertNumber(content, CelsiusToFahrenheit)
	case Fahrenheit2Celsius, F2C:
		return convertNumber(content, FahrenheitToCelsius)
	case Celsius2Kelvin, C2K:
		return convertNumber(content, CelsiusToKelvin)
	case Kelvin2Celsius, K2C:
		return convertNumber(content, KelvinToCelsius)
	case Fahrenheit2Kelvin, F2K:
		return convertNumber(content, FahrenheitToKelvin)
	case Kelvin2Fahrenheit, K2F:
		return convertNumber(content, KelvinToFahrenheit)
	case Text2ASCIIBinary:
		return TextToASCIIBinary(content)
	case ASCIIBinary2Text:
		return ASCIIBinaryToText(content)
	case Kilometers2Miles, Km2Mi:
		return convertNumber(content, KilometersToMiles)
	case Miles2Kilometers, Mi2Km:
		return convertNumber(content, MilesToKilometers)
	case Pounds2Kilos, Lbs2Kgs:
		return convertNumber(content, PoundsToKilos)
	case Kilos2Pounds, Kgs2Lbs:
		return convertNumber(content, KilosToPounds)
	case Arabic2Roman:
		return ArabicToRoman(content)
	case Roman2Arabic:
		return RomanToArabic(content)
	case ToOrdinal, ToOrdinalSnake:
		return Ordinal(content), nil
	}
	return "", action.Unhandled(Actions, act)
}
