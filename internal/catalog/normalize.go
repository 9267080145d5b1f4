package catalog

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"attribute-browser/internal/models"
)

// Source field names of an attribute record.
const (
	fieldName              = "name"
	fieldAttributeClass    = "attribute_class"
	fieldDescriptionString = "description_string"
	fieldDescriptionFormat = "description_format"
	fieldEffectType        = "effect_type"
	fieldHidden            = "hidden"
	fieldStoredAsInteger   = "stored_as_integer"
)

var emptyRecord = json.RawMessage(`{}`)

// Decode parses an attribute document: a JSON object mapping record ids to
// loosely-typed field objects. A literal null document decodes to an empty mapping.
func Decode(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse attribute document: %w", err)
	}
	return raw, nil
}

// Normalize converts a decoded attribute document into records sorted by id.
// It never fails: missing or malformed fields fall back to their defaults.
func Normalize(raw map[string]json.RawMessage) []models.AttributeRecord {
	records := make([]models.AttributeRecord, 0, len(raw))
	for id, data := range raw {
		records = append(records, normalizeRecord(id, data))
	}
	slices.SortFunc(records, func(a, b models.AttributeRecord) int {
		return CompareIDs(a.ID, b.ID)
	})
	return records
}

func normalizeRecord(id string, data json.RawMessage) models.AttributeRecord {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = emptyRecord
	}

	// Non-object values keep their raw form but contribute no fields.
	var fields map[string]json.RawMessage
	_ = json.Unmarshal(trimmed, &fields)

	name := "attribute " + id
	if v := textField(fields, fieldName); v != nil {
		name = *v
	}

	return models.AttributeRecord{
		ID:                id,
		Name:              name,
		AttributeClass:    textField(fields, fieldAttributeClass),
		DescriptionString: textField(fields, fieldDescriptionString),
		DescriptionFormat: textField(fields, fieldDescriptionFormat),
		EffectType:        textField(fields, fieldEffectType),
		Hidden:            truthyField(fields, fieldHidden),
		StoredAsInteger:   truthyField(fields, fieldStoredAsInteger),
		Raw:               slices.Clone(trimmed),
	}
}

// textField returns the field as text, or nil when it is absent or null.
// Strings are unquoted; numbers and booleans keep their literal form;
// objects and arrays keep their compact JSON text.
func textField(fields map[string]json.RawMessage, key string) *string {
	value, ok := fields[key]
	if !ok {
		return nil
	}
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return nil
	}

	var text string
	switch value[0] {
	case '"':
		if err := json.Unmarshal(value, &text); err != nil {
			return nil
		}
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, value); err != nil {
			return nil
		}
		text = buf.String()
	default:
		text = string(value)
	}
	return &text
}

// truthyField reports whether the field is one of "1", 1 or true.
func truthyField(fields map[string]json.RawMessage, key string) bool {
	value, ok := fields[key]
	if !ok {
		return false
	}
	var v interface{}
	if err := json.Unmarshal(value, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case string:
		return v == "1"
	default:
		return false
	}
}

// CompareIDs orders ids by numeric value. Ids that do not parse as numbers
// sort after all numeric ids; equal numbers and non-numeric ids fall back to
// lexicographic order, so the ordering is total.
func CompareIDs(a, b string) int {
	an, aok := numericID(a)
	bn, bok := numericID(b)
	switch {
	case aok && bok:
		if c := cmp.Compare(an, bn); c != 0 {
			return c
		}
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

func numericID(id string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(id), 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
