package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"attribute-browser/internal/models"
)

// Query describes a search over the attribute records.
type Query struct {
	Text          string // Free text; trimmed and case-folded before matching
	Effect        string // models.EffectAll, empty, or an exact effect type
	ExcludeHidden bool   // Drop hidden records; no front end sets this
}

// Result is the ordered subset of records matching a Query.
type Result struct {
	Records []models.AttributeRecord
	Count   int
}

// Filter returns the records matching q, in input order.
func Filter(records []models.AttributeRecord, q Query) Result {
	// A Caser is stateful, so each call gets its own.
	fold := cases.Fold()

	text := strings.TrimSpace(q.Text)
	needle := fold.String(text)
	effect := q.Effect
	if effect == "" {
		effect = models.EffectAll
	}

	matches := make([]models.AttributeRecord, 0, len(records))
	for _, r := range records {
		if q.ExcludeHidden && r.Hidden {
			continue
		}
		if effect != models.EffectAll && r.EffectOrNone() != effect {
			continue
		}
		if needle != "" && !matchesText(fold, r, needle, q.Text, text) {
			continue
		}
		matches = append(matches, r)
	}
	return Result{Records: matches, Count: len(matches)}
}

func matchesText(fold cases.Caser, r models.AttributeRecord, needle, rawQuery, trimmedQuery string) bool {
	if r.ID == rawQuery || r.ID == trimmedQuery {
		return true
	}
	for _, field := range []string{r.Name, deref(r.AttributeClass), deref(r.DescriptionString)} {
		if field != "" && strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

// BuildEffectOptions lists the category filter choices: models.EffectAll
// followed by each distinct effect type in first-seen order, with
// models.EffectNone standing in for records without one.
func BuildEffectOptions(records []models.AttributeRecord) []string {
	seen := map[string]struct{}{models.EffectAll: {}}
	options := []string{models.EffectAll}
	for _, r := range records {
		effect := r.EffectOrNone()
		if _, ok := seen[effect]; ok {
			continue
		}
		seen[effect] = struct{}{}
		options = append(options, effect)
	}
	return options
}

// Find returns the record whose id equals id exactly.
func Find(records []models.AttributeRecord, id string) (models.AttributeRecord, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return models.AttributeRecord{}, false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
