// Package viz renders solution grids in the terminal: asciigraph line plots
// of single rows and an ASCII heatmap of the full space-time grid.
package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// shades orders heatmap cells from lowest to highest magnitude.
var shades = []rune(" .:-=+*#%@")

// PlotRow renders one time level of a solution grid as a line plot.
func PlotRow(row []float64, caption string) string {
	graph := asciigraph.Plot(row,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph)
}

// PlotColumn renders the time evolution at one space index.
func PlotColumn(u [][]float64, j int, caption string) string {
	series := make([]float64, len(u))
	for i := range u {
		series[i] = u[i][j]
	}
	return PlotRow(series, caption)
}

// Heatmap renders the whole grid, one character per cell, downsampled to at
// most width x height cells. Time runs top to bottom, space left to right.
func Heatmap(u [][]float64, width, height int) string {
	if len(u) == 0 || len(u[0]) == 0 {
		return ""
	}
	if width <= 0 {
		width = plotWidth
	}
	if height <= 0 {
		height = 2 * plotHeight
	}
	if len(u) < height {
		height = len(u)
	}
	if len(u[0]) < width {
		width = len(u[0])
	}

	peak := 0.0
	for i := range u {
		for _, v := range u[i] {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	if peak == 0 {
		peak = 1
	}

	var sb strings.Builder
	for r := 0; r < height; r++ {
		i := r * (len(u) - 1) / max(height-1, 1)
		for c := 0; c < width; c++ {
			j := c * (len(u[0]) - 1) / max(width-1, 1)
			level := math.Abs(u[i][j]) / peak * float64(len(shades)-1)
			sb.WriteRune(shades[int(level)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary renders labeled run facts as an aligned block.
func Summary(pairs [][2]string) string {
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(p[0]), valueStyle.Render(p[1]))
	}
	return strings.Join(lines, "\n")
}

// Header renders a section title.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Caption renders secondary text.
func Caption(text string) string {
	return captionStyle.Render(text)
}

// RowCaption is the standard caption for a time level.
func RowCaption(i int, t float64) string {
	return fmt.Sprintf("t[%d] = %.4f", i, t)
}
