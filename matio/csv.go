// SPDX-License-Identifier: MIT

package matio

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	opWriteCSV = "WriteCSV"
	opReadCSV  = "ReadCSV"
)

// CSVOption configures ReadCSV and WriteCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	comma     rune
	header    bool
	matrixOps []matrix.Option
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) CSVOption {
	return func(o *csvOptions) { o.comma = r }
}

// WithHeader makes ReadCSV skip the first record and WriteCSV emit
// "c0,c1,..." column names.
func WithHeader() CSVOption {
	return func(o *csvOptions) { o.header = true }
}

// WithMatrixOptions forwards construction options (epsilon, NaN policy) to
// the matrix built by ReadCSV.
func WithMatrixOptions(opts ...matrix.Option) CSVOption {
	return func(o *csvOptions) { o.matrixOps = append(o.matrixOps, opts...) }
}

func gatherCSV(opts ...CSVOption) csvOptions {
	o := csvOptions{comma: ','}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WriteCSV writes m row by row using the shortest round-trip float formatting.
// Errors: matrix.ErrNilMatrix, write errors.
func WriteCSV(w io.Writer, m matrix.Reader[float64], opts ...CSVOption) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return ioErrorf(opWriteCSV, err)
	}
	o := gatherCSV(opts...)
	cw := csv.NewWriter(w)
	cw.Comma = o.comma

	rows, cols := m.Rows(), m.Cols()
	record := make([]string, cols)
	if o.header {
		for j := range record {
			record[j] = "c" + strconv.Itoa(j)
		}
		if err := cw.Write(record); err != nil {
			return ioErrorf(opWriteCSV, err)
		}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return ioErrorf(opWriteCSV, err)
			}
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return ioErrorf(opWriteCSV, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ioErrorf(opWriteCSV, err)
	}

	return nil
}

// ReadCSV parses a rectangular table of numbers into a Dense matrix.
// Errors: matrix.ErrDimensionMismatch (ragged rows), ErrParse (non-numeric
// cell), matrix.ErrInvalidDimensions (no data rows), plus matrix
// construction errors.
func ReadCSV(r io.Reader, opts ...CSVOption) (*matrix.Matrix[float64], error) {
	o := gatherCSV(opts...)
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, ioErrorf(opReadCSV, matrix.ErrDimensionMismatch)
		}
		return nil, ioErrorf(opReadCSV, err)
	}
	if o.header && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ioErrorf(opReadCSV, matrix.ErrInvalidDimensions)
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, cell := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, ioErrorf(opReadCSV, errors.Join(ErrParse, perr))
			}
			rows[i][j] = v
		}
	}
	m, err := matrix.FromRows(rows, o.matrixOps...)
	if err != nil {
		return nil, ioErrorf(opReadCSV, err)
	}

	return m, nil
}
