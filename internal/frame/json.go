package frame

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/buger/jsonparser"
)

// Separator joins nested object keys into a column name.
const Separator = "."

// ReadFile loads and flattens the JSON document at path.
func ReadFile(path string) (*Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

// FromJSON flattens a JSON document into a frame. A list yields one row per
// element, which must be an object; a single object yields one row.
func FromJSON(data []byte) (*Frame, error) {
	// jsonparser is lenient about trailing garbage, so validate the document first
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	value, dataType, _, err := jsonparser.Get(raw)
	if err != nil {
		return nil, err
	}

	f := New()
	switch dataType {
	case jsonparser.Array:
		var rowErr error
		idx := 0
		_, err = jsonparser.ArrayEach(value, func(elem []byte, dt jsonparser.ValueType, _ int, _ error) {
			if rowErr != nil {
				return
			}
			if dt != jsonparser.Object {
				rowErr = fmt.Errorf("record %d is a %s, expected an object", idx, dt)
				return
			}
			rowErr = f.appendObject(elem)
			idx++
		})
		if err != nil {
			return nil, err
		}
		if rowErr != nil {
			return nil, rowErr
		}
	case jsonparser.Object:
		if err := f.appendObject(value); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("top-level JSON value is a %s, expected a list or an object", dataType)
	}
	return f, nil
}

func (f *Frame) appendObject(obj []byte) error {
	var columns []string
	var values []any
	if err := flatten(obj, "", &columns, &values); err != nil {
		return err
	}
	f.AppendRow(columns, values)
	return nil
}

// flatten walks obj in document order, collecting leaf paths and their cells.
func flatten(obj []byte, prefix string, columns *[]string, values *[]any) error {
	return jsonparser.ObjectEach(obj, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		name := string(key)
		if prefix != "" {
			name = prefix + Separator + name
		}
		if dt == jsonparser.Object {
			return flatten(value, name, columns, values)
		}
		cell, err := decodeLeaf(value, dt)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		*columns = append(*columns, name)
		*values = append(*values, cell)
		return nil
	})
}

func decodeLeaf(value []byte, dt jsonparser.ValueType) (any, error) {
	switch dt {
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Number:
		return json.Number(string(value)), nil
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Array:
		return List(string(value)), nil
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported JSON value type %s", dt)
	}
}
