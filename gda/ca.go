// SPDX-License-Identifier: MIT
// Package: gda
//
// Correspondence analysis of a two-way contingency table N (I×J).
//
// Implementation:
//   - Stage 1: P = N/n, row masses r = P·1, column masses c = Pᵀ·1.
//   - Stage 2: standardized residuals S = D_r^{-1/2} (P − r cᵀ) D_c^{-1/2}.
//   - Stage 3: S = U Σ Vᵀ; principal inertias σ_k².
//   - Stage 4: row principal coordinates F = D_r^{-1/2} U Σ,
//     column principal coordinates G = D_c^{-1/2} V Σ.
//
// Behavior highlights:
//   - At most min(I−1, J−1) non-trivial axes.
//   - Total inertia equals the Pearson χ² statistic divided by n.
//
// Complexity:
//   - Time O(I·J·min(I,J)), Space O(I·J).

package gda

import (
	"math"

	"github.com/katalvlaran/lvmat/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const opCA = "CorrespondenceAnalysis"

// CAResult holds a fitted correspondence analysis.
type CAResult struct {
	RowCoords    *matrix.Matrix[float64] // I×k principal coordinates of rows
	ColCoords    *matrix.Matrix[float64] // J×k principal coordinates of columns
	Inertia      []float64               // principal inertia per kept axis (σ²)
	TotalInertia float64                 // Σ over all axes (χ²/n)
	RowMasses    []float64
	ColMasses    []float64
}

// CorrespondenceAnalysis fits CA on the nonnegative table N.
// Errors: matrix.ErrNilMatrix, ErrNegative, ErrDegenerate (empty margin or
// independence table), ErrTooFewObservations (fewer than 2 rows or columns),
// ErrFactorization.
func CorrespondenceAnalysis(N matrix.Reader[float64], opts ...Option) (*CAResult, error) {
	if err := matrix.ValidateNotNil(N); err != nil {
		return nil, gdaErrorf(opCA, err)
	}
	o := gatherOptions(opts...)
	I, J := N.Rows(), N.Cols()
	if I < 2 || J < 2 {
		return nil, gdaErrorf(opCA, ErrTooFewObservations)
	}

	data, err := matrix.Gather(N)
	if err != nil {
		return nil, gdaErrorf(opCA, err)
	}
	for _, v := range data {
		if v < 0 {
			return nil, gdaErrorf(opCA, ErrNegative)
		}
	}
	total := floats.Sum(data)
	if total <= 0 {
		return nil, gdaErrorf(opCA, ErrDegenerate)
	}

	// P and margins, reading the column-major buffer directly.
	rowMass := make([]float64, I)
	colMass := make([]float64, J)
	P := mat.NewDense(I, J, nil)
	var i, j int
	for j = 0; j < J; j++ {
		for i = 0; i < I; i++ {
			pij := data[i+j*I] / total
			P.Set(i, j, pij)
			rowMass[i] += pij
			colMass[j] += pij
		}
	}
	if floats.Min(rowMass) == 0 || floats.Min(colMass) == 0 {
		return nil, gdaErrorf(opCA, ErrDegenerate) // empty row or column
	}

	S := mat.NewDense(I, J, nil)
	for i = 0; i < I; i++ {
		for j = 0; j < J; j++ {
			e := rowMass[i] * colMass[j]
			S.Set(i, j, (P.At(i, j)-e)/math.Sqrt(e))
		}
	}

	u, sv, v, err := thinSVD(S)
	if err != nil {
		return nil, gdaErrorf(opCA, err)
	}
	available := countAbove(sv, o.tol)
	if limit := min(I, J) - 1; available > limit {
		available = limit
	}
	if available == 0 {
		return nil, gdaErrorf(opCA, ErrDegenerate)
	}
	k := o.keep(available)

	F := leading(u, k)
	G := leading(v, k)
	for a := 0; a < k; a++ {
		for i = 0; i < I; i++ {
			F.Set(i, a, F.At(i, a)*sv[a]/math.Sqrt(rowMass[i]))
		}
		for j = 0; j < J; j++ {
			G.Set(j, a, G.At(j, a)*sv[a]/math.Sqrt(colMass[j]))
		}
	}
	alignSigns(k, G, F)

	res := &CAResult{RowMasses: rowMass, ColMasses: colMass}
	for a, s := range sv {
		res.TotalInertia += s * s
		if a < k {
			res.Inertia = append(res.Inertia, s*s)
		}
	}
	if res.RowCoords, err = toMatrix(opCA, F); err != nil {
		return nil, err
	}
	if res.ColCoords, err = toMatrix(opCA, G); err != nil {
		return nil, err
	}

	return res, nil
}
