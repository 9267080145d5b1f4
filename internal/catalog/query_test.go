package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attribute-browser/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func sampleRecords() []models.AttributeRecord {
	return []models.AttributeRecord{
		{ID: "1", Name: "Fire Resistance", AttributeClass: strPtr("mult_fire_res"), EffectType: strPtr("buff")},
		{ID: "2", Name: "Slow Target", DescriptionString: strPtr("Slows the target by %s1"), EffectType: strPtr("debuff")},
		{ID: "3", Name: "Cosmetic Glow", Hidden: true},
		{ID: "42", Name: "Damage Bonus", AttributeClass: strPtr("mult_dmg"), EffectType: strPtr("buff")},
	}
}

func TestFilter_EmptyQueryMatchesAll(t *testing.T) {
	result := Filter(sampleRecords(), Query{Effect: models.EffectAll})
	assert.Equal(t, 4, result.Count)
	assert.Equal(t, []string{"1", "2", "3", "42"}, ids(result.Records))

	result = Filter(sampleRecords(), Query{Text: "   "})
	assert.Equal(t, 4, result.Count)
}

func TestFilter_EffectFilterAlone(t *testing.T) {
	result := Filter(sampleRecords(), Query{Effect: "debuff"})
	assert.Equal(t, []string{"2"}, ids(result.Records))

	for _, text := range []string{"", "fire", "slow", "zzz"} {
		result = Filter(sampleRecords(), Query{Text: text, Effect: "debuff"})
		for _, r := range result.Records {
			assert.Equal(t, "debuff", r.EffectOrNone(), "query %q", text)
		}
	}
}

func TestFilter_EffectNoneMatchesAbsent(t *testing.T) {
	result := Filter(sampleRecords(), Query{Effect: models.EffectNone})
	assert.Equal(t, []string{"3"}, ids(result.Records))
}

func TestFilter_EffectIsCaseSensitive(t *testing.T) {
	result := Filter(sampleRecords(), Query{Effect: "Buff"})
	assert.Zero(t, result.Count)
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	result := Filter(sampleRecords(), Query{Text: "FIRE", Effect: models.EffectAll})
	assert.Equal(t, []string{"1"}, ids(result.Records))

	result = Filter(sampleRecords(), Query{Text: "  mult_  "})
	assert.Equal(t, []string{"1", "42"}, ids(result.Records))

	result = Filter(sampleRecords(), Query{Text: "SLOWS THE"})
	assert.Equal(t, []string{"2"}, ids(result.Records))
}

func TestFilter_ExactIDMatch(t *testing.T) {
	result := Filter(sampleRecords(), Query{Text: "42"})
	assert.Equal(t, []string{"42"}, ids(result.Records))

	result = Filter(sampleRecords(), Query{Text: "4"})
	assert.Empty(t, result.Records, "ids match exactly, not by substring")
}

func TestFilter_CombinesEffectAndText(t *testing.T) {
	result := Filter(sampleRecords(), Query{Text: "mult", Effect: "buff"})
	assert.Equal(t, []string{"1", "42"}, ids(result.Records))

	result = Filter(sampleRecords(), Query{Text: "fire", Effect: "debuff"})
	assert.Zero(t, result.Count)
	assert.NotNil(t, result.Records)
}

func TestFilter_HiddenRecordsIncludedByDefault(t *testing.T) {
	result := Filter(sampleRecords(), Query{Text: "glow"})
	assert.Equal(t, []string{"3"}, ids(result.Records))

	result = Filter(sampleRecords(), Query{Text: "glow", ExcludeHidden: true})
	assert.Zero(t, result.Count)
}

func TestBuildEffectOptions(t *testing.T) {
	options := BuildEffectOptions(sampleRecords())
	assert.Equal(t, []string{"all", "buff", "debuff", "none"}, options)

	assert.Equal(t, []string{"all"}, BuildEffectOptions(nil))

	options = BuildEffectOptions([]models.AttributeRecord{{ID: "1", EffectType: strPtr("all")}, {ID: "2"}})
	assert.Equal(t, []string{"all", "none"}, options)
}

func TestFind(t *testing.T) {
	r, ok := Find(sampleRecords(), "42")
	require.True(t, ok)
	assert.Equal(t, "Damage Bonus", r.Name)

	_, ok = Find(sampleRecords(), "042")
	assert.False(t, ok)
}
