package views

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"attribute-browser/internal/models"
)

// Placeholder shown for absent optional fields.
const missingValue = "—"

// NotFoundTitle heads the detail view when no record has the requested id.
const NotFoundTitle = "Attribute not found"

// DetailRow is one labeled field of the detail view.
type DetailRow struct {
	Label string
	Value string
}

// DetailView is the rendered view of a single record.
type DetailView struct {
	Found   bool
	ID      string
	Title   string
	Rows    []DetailRow
	RawJSON string // Source record indented by two spaces
}

// RenderDetail builds the detail view for record, or the not-found view when record is nil.
func RenderDetail(record *models.AttributeRecord) DetailView {
	if record == nil {
		return DetailView{Title: NotFoundTitle}
	}

	hidden := "false"
	if record.Hidden {
		hidden = "true"
	}

	return DetailView{
		Found: true,
		ID:    record.ID,
		Title: record.Name,
		Rows: []DetailRow{
			{Label: "ID", Value: record.ID},
			{Label: "attribute_class", Value: orMissing(record.AttributeClass)},
			{Label: "description_string", Value: orMissing(record.DescriptionString)},
			{Label: "description_format", Value: orMissing(record.DescriptionFormat)},
			{Label: "effect_type", Value: orMissing(record.EffectType)},
			{Label: "hidden", Value: hidden},
		},
		RawJSON: PrettyJSON(record.Raw),
	}
}

// PrettyJSON indents a JSON value by two spaces, keeping the source key order.
// Invalid input is returned unchanged.
func PrettyJSON(raw json.RawMessage) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func orMissing(s *string) string {
	if s == nil {
		return missingValue
	}
	return *s
}

// HTML renders the detail container contents.
func (v DetailView) HTML() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<h2>%s</h2>`, Escape(v.Title))
	if !v.Found {
		return b.String()
	}

	b.WriteString(`<div>`)
	for _, row := range v.Rows {
		fmt.Fprintf(&b, `<div class="detail-row"><dt>%s</dt><dd>%s</dd></div>`, Escape(row.Label), Escape(row.Value))
	}
	fmt.Fprintf(&b, `<section class="raw-section"><h3>Raw data</h3><pre class="raw">%s</pre></section>`, Escape(v.RawJSON))
	b.WriteString(`</div>`)
	return b.String()
}
