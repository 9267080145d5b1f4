package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := New(decodeDoc(t, `{
		"10": {"name": "Ten", "effect_type": "buff"},
		"2": {"name": "Two"},
		"1": {"name": "One", "effect_type": "debuff"}
	}`))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"1", "2", "10"}, ids(c.Records()))
	assert.Equal(t, []string{"all", "debuff", "none", "buff"}, c.EffectOptions())

	r, ok := c.Lookup("10")
	require.True(t, ok)
	assert.Equal(t, "Ten", r.Name)

	_, ok = c.Lookup("42")
	assert.False(t, ok)

	result := c.Search(Query{Text: "t"})
	assert.Equal(t, []string{"2", "10"}, ids(result.Records))
}
