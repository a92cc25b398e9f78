// SPDX-License-Identifier: MIT
package matio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmat/matio"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1.5, -2}, {0.1, 3e10}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matio.WriteCSV(&buf, m))
	require.Equal(t, "1.5,-2\n0.1,3e+10\n", buf.String())

	got, err := matio.ReadCSV(&buf)
	require.NoError(t, err)
	require.True(t, matrix.Equal[float64](m, got))
}

func TestCSVHeaderAndComma(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matio.WriteCSV(&buf, m, matio.WithHeader(), matio.WithComma(';')))
	require.Equal(t, "c0;c1;c2\n1;2;3\n", buf.String())

	got, err := matio.ReadCSV(&buf, matio.WithHeader(), matio.WithComma(';'))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, gather(t, got))
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []matio.CSVOption
		want error
	}{
		{"ragged", "1,2\n3\n", nil, matrix.ErrDimensionMismatch},
		{"not a number", "1,x\n", nil, matio.ErrParse},
		{"empty", "", nil, matrix.ErrInvalidDimensions},
		{"header only", "a,b\n", []matio.CSVOption{matio.WithHeader()}, matrix.ErrInvalidDimensions},
		{"nan rejected", "1,NaN\n", nil, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matio.ReadCSV(strings.NewReader(tc.in), tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadCSVMatrixOptions(t *testing.T) {
	got, err := matio.ReadCSV(strings.NewReader(" 1, NaN\n"),
		matio.WithMatrixOptions(matrix.WithNoValidateNaNInf()))
	require.NoError(t, err)
	require.Equal(t, 1.0, mustAt(t, got, 0, 0))
}

func TestWriteCSVView(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	col, err := m.Col(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matio.WriteCSV(&buf, col))
	require.Equal(t, "2\n4\n", buf.String())
}
