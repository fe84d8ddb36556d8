package gridworld

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// New constructs a rows x cols Grid where every cell costs the given
// value, applying any Options overrides (e.g. WithBlockedThreshold).
func New(rows, cols int, cost float64, opts ...Option) Grid {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	costs := make([]float64, rows*cols)
	for i := range costs {
		costs[i] = cost
	}
	return Grid{rows: rows, cols: cols, costs: costs, defaultCost: o.DefaultCost, blockedThreshold: o.BlockedThreshold}
}

// NewUniform constructs a rows x cols Grid where every cell costs the
// given value, useful for tests and for the fallback demo grid when no
// CSV source is available (original_source/main.c's "default costs"
// path).
func NewUniform(rows, cols int, cost float64) Grid {
	return New(rows, cols, cost)
}

// Load reads a rectangular CSV of non-negative numeric per-cell costs
// from r, applying any Options overrides (e.g. WithDefaultCost).
// Missing or non-positive values default to the configured
// DefaultCost, matching original_source/main.c's "if
// (grid_costs[i][j] <= 0) grid_costs[i][j] = 1.0" fallback. Returns
// ErrEmptyGrid if the CSV has no rows, ErrNonRectangular if row
// lengths differ, or a wrapped *csv.ParseError on malformed input.
func Load(r io.Reader, opts ...Option) (Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // row lengths are checked below, as ErrNonRectangular
	records, err := cr.ReadAll()
	if err != nil {
		return Grid{}, fmt.Errorf("gridworld: parsing CSV: %w", err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}

	rows, cols := len(records), len(records[0])
	costs := make([]float64, rows*cols)
	for i, rec := range records {
		if len(rec) != cols {
			return Grid{}, ErrNonRectangular
		}
		for j, field := range rec {
			if field == "" {
				costs[i*cols+j] = o.DefaultCost
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Grid{}, fmt.Errorf("gridworld: cell (%d,%d) is not numeric: %w", i, j, err)
			}
			if v <= 0 {
				v = o.DefaultCost
			}
			costs[i*cols+j] = v
		}
	}

	return Grid{rows: rows, cols: cols, costs: costs, defaultCost: o.DefaultCost, blockedThreshold: o.BlockedThreshold}, nil
}

// LoadCSV reads a rectangular CSV of per-cell costs from r using the
// default Options. See Load for the full contract.
func LoadCSV(r io.Reader) (Grid, error) {
	return Load(r)
}
