package chartview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"benefitflow/domain/chart"
)

func TestResolveTooltip(t *testing.T) {
	html, ok := ResolveTooltip("<strong>Sea ice monitoring</strong>")
	assert.True(t, ok)
	assert.Equal(t, "<strong>Sea ice monitoring</strong>", html)

	_, ok = ResolveTooltip("")
	assert.False(t, ok, "absent tooltip content suppresses rendering")

	_, ok = ResolveTooltip("  \n ")
	assert.False(t, ok, "whitespace-only content suppresses rendering")
}

func TestBuildOptionsNormalizesTooltips(t *testing.T) {
	series := chart.SankeySeries{
		Data: []chart.Flow{{From: "a", To: "b", Weight: 1}},
		Nodes: []chart.NodeDescriptor{
			{ID: "a", TooltipHTML: "  <b>A</b> "},
			{ID: "b", TooltipHTML: "   "},
		},
	}

	opts := BuildOptions("t", series, "/click")

	assert.Equal(t, "<b>A</b>", opts.Series.Nodes[0].TooltipHTML)
	assert.Empty(t, opts.Series.Nodes[1].TooltipHTML)

	assert.Equal(t, "  <b>A</b> ", series.Nodes[0].TooltipHTML, "input series must not be mutated")
	assert.Equal(t, "   ", series.Nodes[1].TooltipHTML)
}

func TestPointDescription(t *testing.T) {
	assert.Equal(t, "1. Sea ice to Shipping, 4.", PointDescription(1, "Sea ice", "Shipping", 4))
	assert.Equal(t, "3. A to B, 2.5.", PointDescription(3, "A", "B", 2.5))
}

func TestBuildOptions(t *testing.T) {
	series := chart.SankeySeries{
		Data: []chart.Flow{{From: "node_1", To: "node_2", Weight: 1, LinkID: "L1"}},
	}

	opts := BuildOptions("Arctic benefits", series, "/assessments/7/chart/click")

	assert.Equal(t, "sankey", opts.Type)
	assert.Equal(t, "/assessments/7/chart/click", opts.ClickURL)
	assert.Equal(t, ExportSymbolName, opts.ExportSymbol)
	assert.Equal(t, ExportIconPath, opts.ExportIcon)
	assert.Equal(t, []string{"from", "to", "weight", "id"}, opts.SeriesKeys)
	assert.Equal(t, DiagramDescription, opts.Accessibility.Description)
	assert.Equal(t, "{index}. {from} to {to}, {weight}.", opts.Accessibility.PointDescription)
}
