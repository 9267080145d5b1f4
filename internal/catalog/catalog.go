package catalog

import (
	"encoding/json"

	"attribute-browser/internal/models"
)

// Catalog holds the normalized attribute records for the life of the process.
// It is built once and never modified, so it is safe for concurrent readers.
type Catalog struct {
	records []models.AttributeRecord
	byID    map[string]int
	options []string
}

// New builds a Catalog from a decoded attribute document.
func New(raw map[string]json.RawMessage) *Catalog {
	return FromRecords(Normalize(raw))
}

// FromRecords builds a Catalog over records that are already normalized and sorted.
func FromRecords(records []models.AttributeRecord) *Catalog {
	byID := make(map[string]int, len(records))
	for i, r := range records {
		byID[r.ID] = i
	}
	return &Catalog{
		records: records,
		byID:    byID,
		options: BuildEffectOptions(records),
	}
}

// Records returns the full ordered sequence. Callers must not modify it.
func (c *Catalog) Records() []models.AttributeRecord {
	return c.records
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Lookup retrieves a record by its exact id.
func (c *Catalog) Lookup(id string) (models.AttributeRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.AttributeRecord{}, false
	}
	return c.records[i], true
}

// EffectOptions returns the category filter choices for the full sequence.
func (c *Catalog) EffectOptions() []string {
	return c.options
}

// Search filters the full sequence.
func (c *Catalog) Search(q Query) Result {
	return Filter(c.records, q)
}
