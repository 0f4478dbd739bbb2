package convert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/devutils/internal/errors"
)

func apply(t *testing.T, name, input string) (string, error) {
	t.Helper()
	act, err := Actions.Resolve(name)
	require.NoError(t, err)
	return Apply(context.Background(), act, input)
}

func TestDocuments(t *testing.T) {
	nested := `
	{
		"checked": false,
		"dimensions": {
			"width": 5,
			"height": 10
		},
		"id": 1,
		"name": "A green door",
		"price": 12.5,
		"tags": [
			"home",
			"green"
		]
	}`

	tests := []struct {
		name     string
		action   string
		input    string
		expected string
	}{
		{name: "json2csv object", action: "json2csv", input: `{"a": 1, "b": 2, "c": 3}`, expected: "a,b,c\n1,2,3\n"},
		{
			name:     "json2csv array with missing keys",
			action:   "json2csv",
			input:    `[{"b": "x", "a": 1}, {"a": 2, "c": null}]`,
			expected: "a,b,c\n1,x,\n2,,\n",
		},
		{
			name:     "json2csv flattens",
			action:   "json2csv",
			input:    `{"user": {"name": "Ann, Jr."}, "tags": ["a", "b"], "empty": []}`,
			expected: "tags[0],tags[1],user.name\na,b,\"Ann, Jr.\"\n",
		},
		{name: "json2yaml flat", action: "json2yaml", input: `{"a": 1, "b": 2, "c": 3}`, expected: "a: 1\nb: 2\nc: 3\n"},
		{
			name:     "json2yaml nested",
			action:   "json2yaml",
			input:    nested,
			expected: "checked: false\ndimensions:\n  height: 10\n  width: 5\nid: 1\nname: A green door\nprice: 12.5\ntags:\n- home\n- green\n",
		},
		{
			name:     "yaml2json",
			action:   "yaml2json",
			input:    "b: [1, two]\na:\n  c: true\n  d: <tag>\n",
			expected: "{\n  \"a\": {\n    \"c\": true,\n    \"d\": \"<tag>\"\n  },\n  \"b\": [\n    1,\n    \"two\"\n  ]\n}",
		},
		{name: "yaml2json integer keys", action: "yaml2json", input: "1: one\n", expected: "{\n  \"1\": \"one\"\n}"},
		{name: "csv2tsv", action: "csv2tsv", input: "a,b,c\n1,2,3", expected: "a\tb\tc\n1\t2\t3"},
		{name: "csv2tsv quoted", action: "csv2tsv", input: "\"x, y\",z\n", expected: "x, y\tz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := apply(t, tt.action, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDocumentErrors(t *testing.T) {
	tests := []struct {
		name   string
		action string
		input  string
		kind   errors.ErrorKind
	}{
		{name: "json2csv invalid", action: "json2csv", input: "{", kind: errors.KindParse},
		{name: "json2csv scalar", action: "json2csv", input: "42", kind: errors.KindUnsupported},
		{name: "json2csv array of scalars", action: "json2csv", input: "[1, 2]", kind: errors.KindUnsupported},
		{name: "json2yaml trailing data", action: "json2yaml", input: "{} {}", kind: errors.KindParse},
		{name: "yaml2json invalid", action: "yaml2json", input: "a: [", kind: errors.KindParse},
		{name: "yaml2json nan", action: "yaml2json", input: "a: .nan", kind: errors.KindUnsupported},
		{name: "csv2tsv bare quote", action: "csv2tsv", input: "a\"b,c", kind: errors.KindParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := apply(t, tt.action, tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, tt.kind), "got %v", err)
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		input    string
		expected string
	}{
		{name: "string2hex", action: "string2hex", input: "abc", expected: "616263"},
		{name: "hex2string", action: "hex2string", input: "616263", expected: "abc"},
		{name: "hex2string upper", action: "hex2string", input: "C3A9", expected: "é"},
		{name: "text2nato", action: "text2nato", input: "abc", expected: "Alpha Bravo Charlie"},
		{name: "text2nato mixed", action: "text2nato", input: "Hi!", expected: "Hotel India !"},
		{name: "slugify", action: "slugify", input: "Hello World", expected: "hello-world"},
		{name: "slugify accents", action: "slugify", input: "  Crème Brûlée -- 2024! ", expected: "creme-brulee-2024"},
		{name: "text2asciibinary", action: "text2asciibinary", input: "abc", expected: "01100001 01100010 01100011"},
		{
			name:     "text2asciibinary latin1",
			action:   "text2asciibinary",
			input:    "á ê ç õ",
			expected: "11100001 00100000 11101010 00100000 11100111 00100000 11110101",
		},
		{name: "asciibinary2text", action: "asciibinary2text", input: "01100001 01100010 01100011", expected: "abc"},
		{
			name:     "asciibinary2text latin1",
			action:   "asciibinary2text",
			input:    "11100001 00100000 11101010 00100000 11100111 00100000 11110101",
			expected: "á ê ç õ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := apply(t, tt.action, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTextErrors(t *testing.T) {
	tests := []struct {
		name   string
		action string
		input  string
		kind   errors.ErrorKind
	}{
		{name: "odd hex", action: "hex2string", input: "616", kind: errors.KindDecode},
		{name: "bad hex", action: "hex2string", input: "zz", kind: errors.KindDecode},
		{name: "hex not utf8", action: "hex2string", input: "ff", kind: errors.KindDecode},
		{name: "binary too wide", action: "text2asciibinary", input: "€", kind: errors.KindUnsupported},
		{name: "binary group", action: "asciibinary2text", input: "0110000a", kind: errors.KindDecode},
		{name: "binary overflow", action: "asciibinary2text", input: "111111111", kind: errors.KindDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := apply(t, tt.action, tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, tt.kind), "got %v", err)
			assert.Equal(t, errors.ExitDataErr, errors.ExitCode(err))
		})
	}
}

func TestUnits(t *testing.T) {
	tests := []struct {
		action   string
		input    string
		expected string
	}{
		{action: "celsius2fahrenheit", input: "0", expected: "32"},
		{action: "c2f", input: "100", expected: "212"},
		{action: "fahrenheit2celsius", input: "32", expected: "0"},
		{action: "f2c", input: "212", expected: "100"},
		{action: "celsius2kelvin", input: "0", expected: "273.15"},
		{action: "c2k", input: "0", expected: "273.15"},
		{action: "kelvin2celsius", input: "273.15", expected: "0"},
		{action: "k2c", input: "273.15", expected: "0"},
		{action: "fahrenheit2kelvin", input: "32", expected: "273.15"},
		{action: "f2k", input: "32", expected: "273.15"},
		{action: "kelvin2fahrenheit", input: "273.15", expected: "32"},
		{action: "k2f", input: "273.15", expected: "32"},
		{action: "kilometers2miles", input: "0", expected: "0"},
		{action: "km2mi", input: "1", expected: "0.621371"},
		{action: "miles2kilometers", input: "0", expected: "0"},
		{action: "mi2km", input: "1", expected: "1.6093444978925633"},
		{action: "pounds2kilos", input: "0", expected: "0"},
		{action: "lbs2kgs", input: "1", expected: "0.453592"},
		{action: "kilos2pounds", input: "0", expected: "0"},
		{action: "kgs2lbs", input: "1", expected: "2.2046244201837775"},
	}

	for _, tt := range tests {
		t.Run(tt.action+"/"+tt.input, func(t *testing.T) {
			got, err := apply(t, tt.action, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUnitsRejectNonNumbers(t *testing.T) {
	for _, act := range []string{"c2f", "km2mi", "kgs2lbs"} {
		t.Run(act, func(t *testing.T) {
			_, err := apply(t, act, "foo")
			require.Error(t, err)

			var te *errors.ToolError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, errors.KindParse, te.Kind)
			assert.Equal(t, "cannot convert foo to a number", te.Message)
		})
	}
}

func TestArabicToRoman(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "I"}, {"2", "II"}, {"3", "III"}, {"4", "IV"}, {"5", "V"}, {"6", "VI"},
		{"10", "X"}, {"11", "XI"}, {"20", "XX"}, {"50", "L"}, {"100", "C"}, {"500", "D"},
		{"1000", "M"}, {"3030", "MMMXXX"}, {"3038", "MMMXXXVIII"}, {"3999", "MMMCMXCIX"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := apply(t, "arabic2roman", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, bad := range []string{"0", "-1", "foo", "1.5", "4000", "2000000000", "9223372036854775807", "99999999999999999999"} {
		t.Run("reject "+bad, func(t *testing.T) {
			_, err := apply(t, "arabic2roman", bad)
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindParse))
		})
	}
}

func TestRomanToArabic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"I", "1"}, {"II", "2"}, {"III", "3"}, {"IV", "4"}, {"V", "5"}, {"VI", "6"},
		{"X", "10"}, {"XI", "11"}, {"XX", "20"}, {"L", "50"}, {"C", "100"}, {"D", "500"},
		{"M", "1000"}, {"MMMXXX", "3030"}, {"MMMXXXVIII", "3038"}, {"MMMCMXCIX", "3999"},
		{"mcmxc", "1990"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := apply(t, "roman2arabic", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, bad := range []string{"", "foo", "VX", "IIZ"} {
		t.Run("reject "+bad, func(t *testing.T) {
			_, err := apply(t, "roman2arabic", bad)
			require.Error(t, err)

			var te *errors.ToolError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, "cannot convert "+bad+" to a number", te.Message)
		})
	}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1st"}, {"2", "2nd"}, {"3", "3rd"}, {"4", "4th"}, {"0", "0th"},
		{"11", "11th"}, {"12", "12th"}, {"13", "13th"}, {"21", "21st"}, {"112", "112th"},
		{"-1", "-1st"}, {"10001", "10001st"}, {"0.1", "0.1"}, {"a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			for _, act := range []string{"toordinal", "to_ordinal"} {
				got, err := apply(t, act, tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestEveryActionIsHandled(t *testing.T) {
	for _, name := range Actions.Names() {
		t.Run(name, func(t *testing.T) {
			_, err := apply(t, name, "1")
			assert.False(t, errors.IsKind(err, errors.KindInternal), "%s fell through: %v", name, err)
		})
	}
}
