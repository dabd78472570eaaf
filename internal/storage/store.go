// Package storage persists solver runs as a directory per run: metadata as
// JSON, the solution grid as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a stored run.
type RunMetadata struct {
	ID        string    `json:"id"`
	Equation  string    `json:"equation"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Dx        float64   `json:"dx"`
	Sigma     float64   `json:"sigma"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
}

// Save writes a run directory and returns its id. The CSV holds the space
// grid as its first row (with an empty lead cell) and one row per time
// level, each led by its time value.
func (s *Store) Save(equation string, sigma float64, t, x []float64, u [][]float64) (string, error) {
	if len(t) < 2 || len(x) < 2 || len(u) != len(t) || len(u[0]) != len(x) {
		return "", fmt.Errorf("grid shape (%d) does not match t (%d) and x (%d)", len(u), len(t), len(x))
	}

	runID := fmt.Sprintf("%s_%d", equation, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Equation:  equation,
		Timestamp: time.Now(),
		Dt:        t[1] - t[0],
		Dx:        x[1] - x[0],
		Sigma:     sigma,
		Rows:      len(t),
		Cols:      len(x),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "solution.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := make([]string, len(x)+1)
	for j, xv := range x {
		header[j+1] = formatFloat(xv)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	row := make([]string, len(x)+1)
	for i := range u {
		row[0] = formatFloat(t[i])
		for j, v := range u[i] {
			row[j+1] = formatFloat(v)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return runID, w.Error()
}

// List returns metadata for every stored run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.readMeta(e.Name())
		if err != nil {
			continue // skip foreign directories
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// Load reads a stored run back: its metadata, time grid, space grid and
// solution grid.
func (s *Store) Load(runID string) (RunMetadata, []float64, []float64, [][]float64, error) {
	meta, err := s.readMeta(runID)
	if err != nil {
		return RunMetadata{}, nil, nil, nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "solution.csv"))
	if err != nil {
		return RunMetadata{}, nil, nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return RunMetadata{}, nil, nil, nil, err
	}
	if len(records) < 2 {
		return RunMetadata{}, nil, nil, nil, fmt.Errorf("run %s: truncated solution file", runID)
	}

	x, err := parseFloats(records[0][1:])
	if err != nil {
		return RunMetadata{}, nil, nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}

	t := make([]float64, 0, len(records)-1)
	u := make([][]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		tv, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return RunMetadata{}, nil, nil, nil, fmt.Errorf("run %s: %w", runID, err)
		}
		row, err := parseFloats(rec[1:])
		if err != nil {
			return RunMetadata{}, nil, nil, nil, fmt.Errorf("run %s: %w", runID, err)
		}
		t = append(t, tv)
		u = append(u, row)
	}
	return meta, t, x, u, nil
}

func (s *Store) readMeta(runID string) (RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return RunMetadata{}, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return RunMetadata{}, err
	}
	return meta, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
