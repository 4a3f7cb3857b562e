// Package chartview configures the client-side charting library: series
// wiring, tooltip resolution, the export-menu icon and the accessibility
// templates. Everything here is assembled server-side and shipped to the
// page as one options document; the only scripting left on the page is a
// thin shim that forwards point clicks to the click endpoint.
package chartview

import (
	"fmt"
	"strings"

	"benefitflow/domain/chart"
)

// ExportSymbolName is the registered name of the custom export icon; the
// export-button configuration references it.
const ExportSymbolName = "download"

// ExportIconPath is the icon drawn for the export-menu trigger: a downward
// arrow over a tray, replacing the library's default hamburger.
const ExportIconPath = "M8 1 L8 9 M4 6 L8 10 L12 6 M2 12 L2 14 L14 14 L14 12"

// DiagramDescription is the static accessibility description of the chart.
const DiagramDescription = "Flow diagram of the assessment graph. Link width encodes the benefit weight between two objects."

// Options is the chart configuration document rendered into the page.
type Options struct {
	Type          string             `json:"type"`
	Title         string             `json:"title"`
	Series        chart.SankeySeries `json:"series"`
	SeriesKeys    []string           `json:"seriesKeys"`
	ClickURL      string             `json:"clickUrl"`
	ExportSymbol  string             `json:"exportSymbol"`
	ExportIcon    string             `json:"exportIconPath"`
	Accessibility Accessibility      `json:"accessibility"`
}

// Accessibility holds the static diagram description plus the per-point
// description template values.
type Accessibility struct {
	Description      string `json:"description"`
	PointDescription string `json:"pointDescriptionFormat"`
}

// BuildOptions assembles the chart configuration for a series. clickURL is
// the endpoint every point click posts its datum to.
func BuildOptions(title string, series chart.SankeySeries, clickURL string) Options {
	// Normalize into a copy; the nodes slice aliases the caller's series.
	nodes := make([]chart.NodeDescriptor, len(series.Nodes))
	copy(nodes, series.Nodes)
	for i := range nodes {
		if html, ok := ResolveTooltip(nodes[i].TooltipHTML); ok {
			nodes[i].TooltipHTML = html
		} else {
			nodes[i].TooltipHTML = ""
		}
	}
	series.Nodes = nodes

	return Options{
		Type:         "sankey",
		Title:        title,
		Series:       series,
		SeriesKeys:   []string{"from", "to", "weight", "id"},
		ClickURL:     clickURL,
		ExportSymbol: ExportSymbolName,
		ExportIcon:   ExportIconPath,
		Accessibility: Accessibility{
			Description:      DiagramDescription,
			PointDescription: "{index}. {from} to {to}, {weight}.",
		},
	}
}

// ResolveTooltip returns a point's rich hover content. The second return
// is false when the point supplies nothing, which suppresses the tooltip
// entirely rather than falling back to a generic format.
func ResolveTooltip(tooltipHTML string) (string, bool) {
	trimmed := strings.TrimSpace(tooltipHTML)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// PointDescription formats one point for assistive technologies.
func PointDescription(index int, from, to string, weight float64) string {
	return fmt.Sprintf("%d. %s to %s, %g.", index, from, to, weight)
}
