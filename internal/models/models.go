package models

import "encoding/json"

// EffectAll is the category filter value that disables effect filtering.
const EffectAll = "all"

// EffectNone stands in for a record without an effect type when building
// filter options and when matching a category filter.
const EffectNone = "none"

// AttributeRecord is one normalized entry of the attribute document.
// @Description AttributeRecord is a normalized attribute with its original source record.
type AttributeRecord struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	AttributeClass    *string         `json:"attribute_class"`
	DescriptionString *string         `json:"description_string"`
	DescriptionFormat *string         `json:"description_format"`
	EffectType        *string         `json:"effect_type"`
	Hidden            bool            `json:"hidden"`
	StoredAsInteger   bool            `json:"stored_as_integer"`
	Raw               json.RawMessage `json:"raw" swaggertype:"object"`
}

// EffectOrNone returns the effect type, or EffectNone when the record has none.
func (r AttributeRecord) EffectOrNone() string {
	if r.EffectType == nil {
		return EffectNone
	}
	return *r.EffectType
}

// AttributeListResponse is the payload of the attribute list endpoint.
// @Description AttributeListResponse holds the filtered attributes and their count.
type AttributeListResponse struct {
	Count int               `json:"count"`
	Items []AttributeRecord `json:"items"`
}

// ViewResponse is the payload of the view endpoint used by the browser page.
// @Description ViewResponse is the evaluated view for a navigation fragment.
type ViewResponse struct {
	State       string `json:"state"`                  // "list" or "detail"
	ID          string `json:"id,omitempty"`           // Requested id in detail state
	ResultCount string `json:"result_count,omitempty"` // Human readable count in list state
	HTML        string `json:"html"`                   // Escaped markup for the active container
}

// HealthResponse reports whether the attribute document loaded.
type HealthResponse struct {
	Status  string `json:"status"` // "ok" or "degraded"
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}
