package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certstudy-service/internal/domain"
)

func TestRenderTextAndSubheading(t *testing.T) {
	view, ok := RenderBlock(domain.Block{Type: "text", Content: "hello"}, "sky")
	require.True(t, ok)
	assert.Equal(t, "text", view.Kind)
	assert.Equal(t, "hello", view.Text)

	view, ok = RenderBlock(domain.Block{Type: "subheading", Content: "intro"}, "sky")
	require.True(t, ok)
	assert.Equal(t, "subheading", view.Kind)
}

func TestRenderUnknownBlockIsSkipped(t *testing.T) {
	_, ok := RenderBlock(domain.Block{Type: "hologram", Content: "future"}, "sky")
	assert.False(t, ok, "unknown block types render nothing, never an error")

	_, ok = RenderBlock(domain.Block{}, "sky")
	assert.False(t, ok)
}

func TestRenderGridColumnFallback(t *testing.T) {
	items := []domain.GridItem{{Title: "one"}, {Title: "two"}}

	view, ok := RenderBlock(domain.Block{Type: "grid", GridItems: items, Columns: 3}, "sky")
	require.True(t, ok)
	assert.Equal(t, 3, view.Grid.Columns)

	for _, columns := range []int{0, -1, 5} {
		view, ok = RenderBlock(domain.Block{Type: "grid", GridItems: items, Columns: columns}, "sky")
		require.True(t, ok)
		assert.Equal(t, 2, view.Grid.Columns, "columns=%d must fall back to 2", columns)
	}
}

func TestRenderGridColorInheritance(t *testing.T) {
	items := []domain.GridItem{{Title: "one"}}

	view, _ := RenderBlock(domain.Block{Type: "grid", GridItems: items}, "emerald")
	assert.Equal(t, Lookup("emerald"), view.Grid.Style, "grid inherits the section color")

	view, _ = RenderBlock(domain.Block{Type: "grid", GridItems: items, CardColor: "amber"}, "emerald")
	assert.Equal(t, Lookup("amber"), view.Grid.Style, "cardColor wins over the section color")
}

func TestRenderTable(t *testing.T) {
	code := 1
	view, ok := RenderBlock(domain.Block{
		Type:       "table",
		Headers:    []string{"Protocol", "Port"},
		Rows:       [][]string{{"HTTP", "80"}, {"HTTPS", "443"}, {"SSH", "22"}},
		CodeColumn: &code,
	}, "sky")
	require.True(t, ok)
	table := view.Table
	require.Len(t, table.Rows, 3)

	assert.False(t, table.Rows[0].Cells[0].Code)
	assert.True(t, table.Rows[0].Cells[1].Code, "designated column renders as code")

	assert.False(t, table.Rows[0].Shaded)
	assert.True(t, table.Rows[1].Shaded, "rows alternate shading by parity")
	assert.False(t, table.Rows[2].Shaded)
}

func TestRenderCodeblockPreservesWhitespace(t *testing.T) {
	code := "switch(config)# vlan 10\n  switch(config-vlan)# name sales"
	view, ok := RenderBlock(domain.Block{Type: "codeblock", Code: code}, "sky")
	require.True(t, ok)
	assert.Equal(t, code, view.Code)
}

func TestRenderComparison(t *testing.T) {
	view, ok := RenderBlock(domain.Block{
		Type:  "comparison",
		Left:  &domain.ComparisonSide{Label: "TCP", Content: "reliable"},
		Right: &domain.ComparisonSide{Label: "UDP", Content: "fast"},
		Note:  "both ride on IP",
	}, "sky")
	require.True(t, ok)
	assert.Equal(t, "TCP", view.Comparison.Left.Label)
	assert.Equal(t, "both ride on IP", view.Comparison.Note)

	_, ok = RenderBlock(domain.Block{Type: "comparison", Left: &domain.ComparisonSide{Label: "TCP"}}, "sky")
	assert.False(t, ok, "comparison without both sides renders nothing")
}

func TestRenderStepsNumbering(t *testing.T) {
	view, ok := RenderBlock(domain.Block{
		Type: "steps",
		Steps: []domain.Step{
			{Command: "enable", Description: "enter privileged mode"},
			{Description: "save the config"},
		},
	}, "sky")
	require.True(t, ok)
	require.Len(t, view.Steps, 2)
	assert.Equal(t, 1, view.Steps[0].Number, "step badges are 1-based")
	assert.Equal(t, 2, view.Steps[1].Number)
}

func TestRenderCalloutColorFallback(t *testing.T) {
	view, ok := RenderBlock(domain.Block{Type: "callout", Content: "remember this"}, "purple")
	require.True(t, ok)
	assert.Equal(t, Lookup("purple"), view.Callout.Style)

	view, _ = RenderBlock(domain.Block{Type: "callout", Content: "warning", Color: "red", Title: "Watch out"}, "purple")
	assert.Equal(t, Lookup("red"), view.Callout.Style)
	assert.Equal(t, "Watch out", view.Callout.Title)
}

func TestPaletteLookupIsTotal(t *testing.T) {
	for _, name := range []string{"red", "pink", "orange", "emerald", "sky", "blue", "indigo", "purple", "amber"} {
		style := Lookup(name)
		assert.NotEmpty(t, style.Border, "palette entry %s", name)
		assert.NotEmpty(t, style.Badge, "palette entry %s", name)
	}

	assert.Equal(t, Lookup("indigo"), Lookup("chartreuse"), "unknown names resolve to the default")
	assert.Equal(t, Lookup("indigo"), Lookup(""), "empty names resolve to the default")
}
