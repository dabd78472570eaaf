package viz

import (
	"strings"
	"testing"
)

func TestHeatmapShape(t *testing.T) {
	u := make([][]float64, 40)
	for i := range u {
		u[i] = make([]float64, 100)
		for j := range u[i] {
			u[i][j] = float64(i * j)
		}
	}

	out := Heatmap(u, 20, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 20 {
			t.Errorf("line %d has %d cells, expected 20", i, len([]rune(line)))
		}
	}

	// strongest cell is the bottom-right corner
	last := []rune(lines[9])
	if last[19] != '@' {
		t.Errorf("expected '@' at the peak, got %q", last[19])
	}
}

func TestHeatmapZeroGrid(t *testing.T) {
	u := [][]float64{{0, 0, 0}, {0, 0, 0}}
	out := Heatmap(u, 3, 2)
	if strings.TrimSpace(strings.ReplaceAll(out, "\n", "")) != "" {
		t.Errorf("zero grid should render blank, got %q", out)
	}
}

func TestHeatmapEmpty(t *testing.T) {
	if Heatmap(nil, 10, 10) != "" {
		t.Error("expected empty output for empty grid")
	}
}

func TestHeatmapSmallGridClamps(t *testing.T) {
	u := [][]float64{{1, 0}, {0, 1}}
	out := Heatmap(u, 80, 24)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected clamp to 2 rows, got %d", len(lines))
	}
	if len([]rune(lines[0])) != 2 {
		t.Errorf("expected clamp to 2 cols, got %d", len([]rune(lines[0])))
	}
}

func TestPlotRowContainsCaption(t *testing.T) {
	out := PlotRow([]float64{0, 1, 0, -1, 0}, "wave row")
	if !strings.Contains(out, "wave row") {
		t.Error("caption missing from plot")
	}
}

func TestPlotColumnExtractsSeries(t *testing.T) {
	u := [][]float64{{0, 5}, {0, 7}, {0, 9}}
	out := PlotColumn(u, 1, "probe")
	if !strings.Contains(out, "probe") {
		t.Error("caption missing from plot")
	}
}

func TestRowCaption(t *testing.T) {
	if got := RowCaption(3, 0.25); got != "t[3] = 0.2500" {
		t.Errorf("unexpected caption %q", got)
	}
}
