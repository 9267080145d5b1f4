package views

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attribute-browser/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Tom &amp; &quot;Jerry&quot; &#39;s&lt;/b&gt;", Escape(`<b>Tom & "Jerry" 's</b>`))
	assert.Equal(t, "plain text", Escape("plain text"))
	assert.Equal(t, "&amp;amp;", Escape("&amp;"), "existing entities are escaped again")
}

func TestResultCount(t *testing.T) {
	assert.Equal(t, "0 results", ResultCount(0))
	assert.Equal(t, "1 result", ResultCount(1))
	assert.Equal(t, "2 results", ResultCount(2))
}

func TestRenderList(t *testing.T) {
	records := []models.AttributeRecord{
		{ID: "1", Name: "Fire Resistance", AttributeClass: strPtr("mult_fire"), DescriptionFormat: strPtr("value_is_percentage"), EffectType: strPtr("buff")},
		{ID: "2", Name: "Secret", Hidden: true},
	}

	view := RenderList(records)

	assert.Equal(t, 2, view.Count)
	assert.Equal(t, "2 results", view.Header)
	assert.Empty(t, view.Placeholder)
	require.Len(t, view.Cards, 2)

	assert.Equal(t, Card{
		ID:         "1",
		Href:       "#/attr/1",
		Label:      "Fire Resistance",
		Meta:       "ID: 1 • mult_fire • value_is_percentage",
		Effect:     "buff",
		Visibility: "visible",
	}, view.Cards[0])
	assert.Equal(t, "ID: 2", view.Cards[1].Meta)
	assert.Equal(t, "n/a", view.Cards[1].Effect)
	assert.Equal(t, "hidden", view.Cards[1].Visibility)

	html := view.HTML()
	assert.Equal(t, 2, strings.Count(html, `<div class="card"`))
	assert.Contains(t, html, `<a href="#/attr/1">Fire Resistance</a>`)
	assert.Contains(t, html, `<div class="meta">ID: 1 • mult_fire • value_is_percentage</div>`)
}

func TestRenderList_EmptyShowsPlaceholder(t *testing.T) {
	view := RenderList(nil)

	assert.Equal(t, 0, view.Count)
	assert.Equal(t, "0 results", view.Header)
	assert.Empty(t, view.Cards)
	assert.Equal(t, EmptyListMessage, view.Placeholder)

	html := view.HTML()
	assert.Equal(t, 1, strings.Count(html, `class="card"`))
	assert.Contains(t, html, EmptyListMessage)
}

func TestRenderList_EscapesMarkup(t *testing.T) {
	view := RenderList([]models.AttributeRecord{
		{ID: `1"><script>`, Name: `<img src=x onerror='alert(1)'>`, AttributeClass: strPtr("a&b"), EffectType: strPtr(`"quoted"`)},
	})

	html := view.HTML()
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;img src=x onerror=&#39;alert(1)&#39;&gt;")
	assert.Contains(t, html, `href="#/attr/1&quot;&gt;&lt;script&gt;"`)
	assert.Contains(t, html, "a&amp;b")
	assert.Contains(t, html, "&quot;quoted&quot;")
}

func TestRenderDetail(t *testing.T) {
	record := &models.AttributeRecord{
		ID:             "7",
		Name:           "Attack Speed",
		AttributeClass: strPtr("mult_atk_speed"),
		EffectType:     strPtr("buff"),
		Hidden:         true,
		Raw:            json.RawMessage(`{"name":"Attack Speed","attribute_class":"mult_atk_speed","hidden":"1","effect_type":"buff"}`),
	}

	view := RenderDetail(record)

	assert.True(t, view.Found)
	assert.Equal(t, "Attack Speed", view.Title)
	assert.Equal(t, []DetailRow{
		{Label: "ID", Value: "7"},
		{Label: "attribute_class", Value: "mult_atk_speed"},
		{Label: "description_string", Value: "—"},
		{Label: "description_format", Value: "—"},
		{Label: "effect_type", Value: "buff"},
		{Label: "hidden", Value: "true"},
	}, view.Rows)
	assert.Equal(t, "{\n  \"name\": \"Attack Speed\",\n  \"attribute_class\": \"mult_atk_speed\",\n  \"hidden\": \"1\",\n  \"effect_type\": \"buff\"\n}", view.RawJSON)

	html := view.HTML()
	assert.Contains(t, html, "<h2>Attack Speed</h2>")
	assert.Contains(t, html, `<dt>hidden</dt><dd>true</dd>`)
	assert.Contains(t, html, "&quot;name&quot;: &quot;Attack Speed&quot;")
}

func TestRenderDetail_RawRoundTrip(t *testing.T) {
	raw := json.RawMessage(`{"b":[1,2,{"c":null}],"a":"x<y"}`)
	view := RenderDetail(&models.AttributeRecord{ID: "1", Name: "n", Raw: raw})

	assert.Contains(t, view.RawJSON, "\n  \"b\": [\n    1,")

	var original, parsed interface{}
	require.NoError(t, json.Unmarshal(raw, &original))
	require.NoError(t, json.Unmarshal([]byte(view.RawJSON), &parsed))
	assert.Equal(t, original, parsed)
}

func TestRenderDetail_NotFound(t *testing.T) {
	view := RenderDetail(nil)

	assert.False(t, view.Found)
	assert.Equal(t, NotFoundTitle, view.Title)
	assert.Empty(t, view.Rows)
	assert.Equal(t, "<h2>Attribute not found</h2>", view.HTML())
}

func TestPrettyJSON(t *testing.T) {
	assert.Equal(t, "{}", PrettyJSON(nil))
	assert.Equal(t, "{}", PrettyJSON(json.RawMessage(`{}`)))
	assert.Equal(t, "not json", PrettyJSON(json.RawMessage(`not json`)))
}

func TestRenderEffectOptions(t *testing.T) {
	html := RenderEffectOptions([]string{"all", "buff", `"x"`}, "buff")
	assert.Equal(t, `<option value="all">all</option><option value="buff" selected>buff</option><option value="&quot;x&quot;">&quot;x&quot;</option>`, html)
}
