// Package payload decodes the opaque drag-transfer strings produced by the
// interaction layer. Decoding never fails loudly: anything that is not a
// well-formed payload with non-negative integer indices is rejected.
package payload

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thenoetrevino/pasomd/internal/models"
)

// maxIndex bounds decoded indices; nothing on a hand-written board gets close.
const maxIndex = math.MaxInt32

const cardSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["columnIndex", "itemIndex"],
  "properties": {
    "columnIndex": {"type": "integer", "minimum": 0},
    "itemIndex": {"type": "integer", "minimum": 0}
  }
}`

const columnSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["columnIndex"],
  "properties": {
    "columnIndex": {"type": "integer", "minimum": 0}
  }
}`

var (
	cardSchema   = jsonschema.MustCompileString("card-payload.json", cardSchemaJSON)
	columnSchema = jsonschema.MustCompileString("column-payload.json", columnSchemaJSON)
)

// DecodeCard decodes a card payload such as {"columnIndex":1,"itemIndex":3}.
func DecodeCard(raw string) (models.CardPayload, bool) {
	obj, ok := decode(raw, cardSchema)
	if !ok {
		return models.CardPayload{}, false
	}
	col, ok := index(obj["columnIndex"])
	if !ok {
		return models.CardPayload{}, false
	}
	item, ok := index(obj["itemIndex"])
	if !ok {
		return models.CardPayload{}, false
	}
	return models.CardPayload{ColumnIndex: col, ItemIndex: item}, true
}

// DecodeColumn decodes a column payload such as {"columnIndex":2}.
func DecodeColumn(raw string) (models.ColumnPayload, bool) {
	obj, ok := decode(raw, columnSchema)
	if !ok {
		return models.ColumnPayload{}, false
	}
	col, ok := index(obj["columnIndex"])
	if !ok {
		return models.ColumnPayload{}, false
	}
	return models.ColumnPayload{ColumnIndex: col}, true
}

// EncodeCard renders a card payload in the transfer format.
func EncodeCard(p models.CardPayload) string {
	data, _ := json.Marshal(p)
	return string(data)
}

// EncodeColumn renders a column payload in the transfer format.
func EncodeColumn(p models.ColumnPayload) string {
	data, _ := json.Marshal(p)
	return string(data)
}

// decode parses raw as a single JSON value and validates it against schema.
func decode(raw string, schema *jsonschema.Schema) (map[string]interface{}, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	// Reject trailing data after the object.
	if err := dec.Decode(new(interface{})); !errors.Is(err, io.EOF) {
		return nil, false
	}
	if err := schema.Validate(v); err != nil {
		return nil, false
	}

	obj, ok := v.(map[string]interface{})
	return obj, ok
}

// index converts a schema-validated JSON number into an int. Integral floats such
// as 2.0 are accepted; values beyond maxIndex are not.
func index(v interface{}) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		if i < 0 || i > maxIndex {
			return 0, false
		}
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || f < 0 || f > maxIndex {
		return 0, false
	}
	return int(f), true
}
