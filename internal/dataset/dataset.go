// SPDX-License-Identifier: Apache-2.0

// Package dataset loads paired numeric columns from CSV files with a header
// row. A load is all-or-nothing: a missing file, a missing column or an
// unparseable cell fails the whole run, leaving no partial series.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Series holds two paired columns of samples read from one CSV file.
// X[i] and Y[i] always come from the same data row, so both slices share a
// length. A Series is never mutated after Load returns it.
type Series struct {
	// XName and YName are the header names the samples were selected by.
	XName string
	YName string

	X []float64
	Y []float64
}

// Len returns the number of sample pairs.
func (s *Series) Len() int {
	return len(s.X)
}

// Header reads just the header row of the CSV at path.
func Header(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s is empty: missing header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return header, nil
}

// Load reads the CSV at path and extracts the xcol and ycol columns as a
// paired series, one sample per data row, in file order.
func Load(path, xcol, ycol string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s is empty: missing header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	xIdx := slices.Index(header, xcol)
	yIdx := slices.Index(header, ycol)
	if xIdx < 0 || yIdx < 0 {
		return nil, fmt.Errorf("columns not found. Available: %s", strings.Join(header, ", "))
	}

	series := &Series{XName: xcol, YName: ycol}

	// The header was row 1. csv.Reader enforces the header's field count on
	// every record, so record[xIdx] and record[yIdx] are always in range.
	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d of %s: %w", row, path, err)
		}

		x, err := strconv.ParseFloat(record[xIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", row, xcol, err)
		}
		y, err := strconv.ParseFloat(record[yIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", row, ycol, err)
		}
		series.X = append(series.X, x)
		series.Y = append(series.Y, y)
	}

	return series, nil
}
