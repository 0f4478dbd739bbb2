package convert

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	yamlv2 "gopkg.in/yaml.v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/conneroisu/devutils/internal/errors"
)

func decodeJSON(data string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, errors.NewParseError(errors.ErrCodeInvalidDocument, "invalid JSON", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewParseError(errors.ErrCodeInvalidDocument, "invalid JSON: trailing data after the document", nil)
	}
	return v, nil
}

// JSONToCSV accepts one object or an array of objects. Nested objects are
// flattened with "." and array elements become key[i]. The header is the
// sorted union of keys; a missing key leaves an empty cell.
func JSONToCSV(data string) (string, error) {
	doc, err := decodeJSON(data)
	if err != nil {
		return "", err
	}

	var records []interface{}
	switch v := doc.(type) {
	case map[string]interface{}:
		records = []interface{}{v}
	case []interface{}:
		records = v
	default:
		return "", errors.NewUnsupportedError(errors.ErrCodeInvalidDocument, "json2csv needs an object or an array of objects")
	}

	rows := make([]map[string]string, 0, len(records))
	keys := map[string]struct{}{}
	for i, record := range records {
		obj, ok := record.(map[string]interface{})
		if !ok {
			return "", errors.NewUnsupportedError(errors.ErrCodeInvalidDocument,
				fmt.Sprintf("json2csv needs an array of objects; element %d is not an object", i))
		}
		row := map[string]string{}
		flatten("", obj, row)
		for k := range row {
			keys[k] = struct{}{}
		}
		rows = append(rows, row)
	}

	header := make([]string, 0, len(keys))
	for k := range keys {
		header = append(header, k)
	}
	sort.Strings(header)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", errors.NewInternalError("cannot write csv", err)
	}
	for _, row := range rows {
		line := make([]string, len(header))
		for i, k := range header {
			line[i] = row[k]
		}
		if err := w.Write(line); err != nil {
			return "", errors.NewInternalError("cannot write csv", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.NewInternalError("cannot write csv", err)
	}

	return buf.String(), nil
}

// flatten drops empty objects and arrays.
func flatten(prefix string, v interface{}, out map[string]string) {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case []interface{}:
		for i, child := range val {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), child, out)
		}
	case nil:
		out[prefix] = ""
	case string:
		out[prefix] = val
	case json.Number:
		out[prefix] = val.String()
	case bool:
		out[prefix] = strconv.FormatBool(val)
	default:
		out[prefix] = fmt.Sprint(val)
	}
}

// plain replaces json.Number with int64 or float64 so YAML encoders see
// real numbers.
func plain(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			val[k] = plain(child)
		}
		return val
	case []interface{}:
		for i, child := range val {
			val[i] = plain(child)
		}
		return val
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return val
	}
}

// JSONToYAML renders block YAML with sorted keys and sequences flush with
// their parent key.
func JSONToYAML(data string) (string, error) {
	doc, err := decodeJSON(data)
	if err != nil {
		return "", err
	}

	out, err := yamlv2.Marshal(plain(doc))
	if err != nil {
		return "", errors.NewInternalError("cannot encode yaml", err)
	}
	return string(out), nil
}

// jsonable turns the map[interface{}]interface{} nodes YAML allows into
// string-keyed maps.
func jsonable(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			val[k] = jsonable(child)
		}
		return val
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = jsonable(child)
		}
		return out
	case []interface{}:
		for i, child := range val {
			val[i] = jsonable(child)
		}
		return val
	default:
		return val
	}
}

// YAMLToJSON converts the first YAML document to JSON indented by two
// spaces.
func YAMLToJSON(data string) (string, error) {
	var doc interface{}
	if err := yamlv3.Unmarshal([]byte(data), &doc); err != nil {
		return "", errors.NewParseError(errors.ErrCodeInvalidDocument, "invalid YAML", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonable(doc)); err != nil {
		return "", errors.NewUnsupportedError(errors.ErrCodeInvalidDocument,
			fmt.Sprintf("YAML value has no JSON form: %v", err))
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// CSVToTSV re-delimits CSV records with tabs. Quoted fields lose their
// quotes.
func CSVToTSV(data string) (string, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return "", errors.NewParseError(errors.ErrCodeInvalidDocument, "invalid CSV", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	if err := w.WriteAll(records); err != nil {
		return "", errors.NewInternalError("cannot write tsv", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
