package views

import (
	"fmt"
	"strings"

	"attribute-browser/internal/models"
)

// EmptyListMessage is shown in place of the list when nothing matches.
const EmptyListMessage = "No attributes match your search/filter."

// Card is the compact list entry for one record.
type Card struct {
	ID         string
	Href       string // Detail location, "#/attr/{id}"
	Label      string
	Meta       string // "ID: {id}" plus " • class" and " • format" when present
	Effect     string // Effect type or "n/a"
	Visibility string // "hidden" or "visible"
}

// ListView is the rendered result of a search.
type ListView struct {
	Count       int
	Header      string
	Cards       []Card
	Placeholder string // Set only when Cards is empty
}

// DetailHref returns the navigation fragment of a record's detail view.
func DetailHref(id string) string {
	return "#/attr/" + id
}

// ResultCount formats a result count as "1 result" or "N results".
func ResultCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

// RenderList builds the list view for the matching records.
func RenderList(records []models.AttributeRecord) ListView {
	view := ListView{
		Count:  len(records),
		Header: ResultCount(len(records)),
	}
	if len(records) == 0 {
		view.Placeholder = EmptyListMessage
		return view
	}

	view.Cards = make([]Card, 0, len(records))
	for _, r := range records {
		view.Cards = append(view.Cards, newCard(r))
	}
	return view
}

func newCard(r models.AttributeRecord) Card {
	meta := "ID: " + r.ID
	if r.AttributeClass != nil && *r.AttributeClass != "" {
		meta += " • " + *r.AttributeClass
	}
	if r.DescriptionFormat != nil && *r.DescriptionFormat != "" {
		meta += " • " + *r.DescriptionFormat
	}

	effect := "n/a"
	if r.EffectType != nil {
		effect = *r.EffectType
	}

	visibility := "visible"
	if r.Hidden {
		visibility = "hidden"
	}

	return Card{
		ID:         r.ID,
		Href:       DetailHref(r.ID),
		Label:      r.Name,
		Meta:       meta,
		Effect:     effect,
		Visibility: visibility,
	}
}

// HTML renders the list container contents: one card per record, or a
// single placeholder card when the list is empty.
func (v ListView) HTML() string {
	var b strings.Builder
	if len(v.Cards) == 0 {
		fmt.Fprintf(&b, `<div class="card"><div>%s</div></div>`, Escape(v.Placeholder))
		return b.String()
	}
	for _, c := range v.Cards {
		fmt.Fprintf(&b, `<div class="card" data-id="%s">`, Escape(c.ID))
		fmt.Fprintf(&b, `<div><div><a href="%s">%s</a></div>`, Escape(c.Href), Escape(c.Label))
		fmt.Fprintf(&b, `<div class="meta">%s</div></div>`, Escape(c.Meta))
		fmt.Fprintf(&b, `<div class="right"><div>%s</div><div class="visibility">%s</div></div>`, Escape(c.Effect), Escape(c.Visibility))
		b.WriteString(`</div>`)
	}
	return b.String()
}
