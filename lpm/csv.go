// SPDX-License-Identifier: MIT

package lpm

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyCSV indicates a table with no header or no data rows.
	ErrEmptyCSV = errors.New("lpm: empty csv")

	// ErrOutcomeColumn indicates that the requested outcome column is not
	// present in the header, or that it is the only column.
	ErrOutcomeColumn = errors.New("lpm: outcome column")
)

// LoadCSV builds a Dataset from a flat table with a header row: the named
// outcome column becomes Y, every other column becomes a covariate, and an
// intercept column of ones is prepended to the design matrix.
//
// Malformed rows and non-numeric cells are errors, never silent skips —
// silently dropping observations would corrupt any downstream comparison.
//
// Errors:
//   - ErrEmptyCSV      — no header or no data rows.
//   - ErrOutcomeColumn — outcome missing from the header, or no covariates left.
//   - csv/strconv errors wrapped with the offending row number.
func LoadCSV(r io.Reader, outcome string) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("LoadCSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("LoadCSV: %w: need a header and at least one data row", ErrEmptyCSV)
	}

	header := records[0]
	outCol := -1
	for j, name := range header {
		if name == outcome {
			outCol = j
			break
		}
	}
	if outCol < 0 {
		return nil, fmt.Errorf("LoadCSV: %w: %q not in header", ErrOutcomeColumn, outcome)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("LoadCSV: %w: no covariate columns besides %q", ErrOutcomeColumn, outcome)
	}

	n := len(records) - 1
	k := len(header) // outcome column swapped for the intercept column
	X := mat.NewDense(n, k, nil)
	y := make([]float64, n)

	// csv.Reader has already enforced a uniform field count per record.
	for i, rec := range records[1:] {
		row := X.RawRowView(i)
		row[0] = 1.0
		col := 1
		for j, cell := range rec {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, fmt.Errorf("LoadCSV: row %d, column %q: %w", i+2, header[j], perr)
			}
			if j == outCol {
				y[i] = v
				continue
			}
			row[col] = v
			col++
		}
	}

	return &Dataset{X: X, Y: y}, nil
}
