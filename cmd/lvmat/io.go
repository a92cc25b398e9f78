// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmat/matio"
	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/mat"
)

const binaryExt = ".lvmt"

func isBinary(path string) bool {
	return strings.EqualFold(filepath.Ext(path), binaryExt)
}

// readInput loads a real matrix from path: binary files by extension, CSV
// otherwise, "-" for CSV on stdin.
func (a *app) readInput(path string) (*matrix.Matrix[float64], error) {
	if isBinary(path) {
		return matio.OpenBinary[float64](path)
	}
	opts := a.csvOptions()
	if path == "-" {
		return matio.ReadCSV(a.stdin, opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return matio.ReadCSV(f, opts...)
}

func (a *app) writeOutput(path string, m matrix.Reader[float64]) error {
	if isBinary(path) {
		return matio.SaveBinary(path, m)
	}
	if path == "-" {
		return matio.WriteCSV(a.stdout, m, a.csvOptions()...)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = matio.WriteCSV(f, m, a.csvOptions()...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (a *app) csvOptions() []matio.CSVOption {
	opts := []matio.CSVOption{matio.WithComma(a.cfg.comma())}
	if a.cfg.CSV.Header {
		opts = append(opts, matio.WithHeader())
	}

	return opts
}

// printMatrix writes a titled, column-aligned rendering of m.
func printMatrix(w io.Writer, title string, m matrix.Reader[float64]) error {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s =\n%.6g\n\n", title, mat.Formatted(g, mat.Prefix(""), mat.Squeeze()))

	return err
}

func printVector(w io.Writer, title string, v []float64) error {
	_, err := fmt.Fprintf(w, "%s = %.6g\n", title, v)

	return err
}
