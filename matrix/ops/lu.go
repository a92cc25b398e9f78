// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	opLU      = "LU"
	opSolve   = "LU.Solve"
	opInverse = "Inverse"
	opDet     = "Det"

	// pivotTol scales the largest |a_ij| into the singularity threshold.
	pivotTol = 1e-14
)

// LUResult holds P·A = L·U packed in one column-major n×n buffer: the strict
// lower part is L (unit diagonal implied), the upper part is U.
type LUResult struct {
	n    int
	lu   []float64
	piv  []int // row i of P·A is row piv[i] of A
	sign float64
}

func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU factorizes the square matrix a with partial (row) pivoting.
// Blueprint:
//
//	Stage 1 (Validate): non-nil, square, non-empty.
//	Stage 2 (Gather): copy a into a column-major work buffer.
//	Stage 3 (Eliminate): for each column pick the largest pivot, swap rows,
//	  scale the multipliers and update the trailing block.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrBadShape (0×0),
// matrix.ErrSingular (pivot below pivotTol·max|a|).
// Complexity: O(n³) time, O(n²) memory.
func LU(a matrix.Reader[float64]) (*LUResult, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, opErrorf(opLU, err)
	}
	n := a.Rows()
	if n == 0 {
		return nil, opErrorf(opLU, matrix.ErrBadShape)
	}
	lu, err := matrix.Gather(a)
	if err != nil {
		return nil, opErrorf(opLU, err)
	}

	var scale float64
	for _, v := range lu {
		scale = math.Max(scale, math.Abs(v))
	}
	tol := pivotTol * scale

	res := &LUResult{n: n, lu: lu, piv: make([]int, n), sign: 1}
	for i := range res.piv {
		res.piv[i] = i
	}
	var i, j, k, p int
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(lu[i+k*n]) > math.Abs(lu[p+k*n]) {
				p = i
			}
		}
		if math.Abs(lu[p+k*n]) <= tol {
			return nil, opErrorf(opLU, fmt.Errorf("zero pivot in column %d: %w", k, matrix.ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[p+j*n], lu[k+j*n] = lu[k+j*n], lu[p+j*n]
			}
			res.piv[p], res.piv[k] = res.piv[k], res.piv[p]
			res.sign = -res.sign
		}
		pivot := lu[k+k*n]
		for i = k + 1; i < n; i++ {
			lu[i+k*n] /= pivot
		}
		for j = k + 1; j < n; j++ {
			ukj := lu[k+j*n]
			if ukj == 0 {
				continue
			}
			for i = k + 1; i < n; i++ {
				lu[i+j*n] -= lu[i+k*n] * ukj
			}
		}
	}

	return res, nil
}

// L returns the unit lower triangular factor.
func (f *LUResult) L() (*matrix.Matrix[float64], error) {
	n := f.n
	out := make([]float64, n*n)
	for j := 0; j < n; j++ {
		out[j+j*n] = 1
		for i := j + 1; i < n; i++ {
			out[i+j*n] = f.lu[i+j*n]
		}
	}

	return matrix.FromColumnMajor(n, n, out)
}

// U returns the upper triangular factor.
func (f *LUResult) U() (*matrix.Matrix[float64], error) {
	n := f.n
	out := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			out[i+j*n] = f.lu[i+j*n]
		}
	}

	return matrix.FromColumnMajor(n, n, out)
}

// Pivot returns a copy of the row permutation: row i of P·A is row Pivot()[i] of A.
func (f *LUResult) Pivot() []int { return append([]int(nil), f.piv...) }

// Det returns det(A) = sign(P) · Π u_ii.
func (f *LUResult) Det() float64 {
	d := f.sign
	for k := 0; k < f.n; k++ {
		d *= f.lu[k+k*f.n]
	}

	return d
}

// SolveVec solves A·x = b. Errors: matrix.ErrDimensionMismatch.
func (f *LUResult) SolveVec(b []float64) ([]float64, error) {
	if len(b) != f.n {
		return nil, opErrorf(opSolve, matrix.ErrDimensionMismatch)
	}
	x := make([]float64, f.n)
	f.solveInto(x, b)

	return x, nil
}

// solveInto writes the solution of A·x = b into x (len n).
func (f *LUResult) solveInto(x, b []float64) {
	n := f.n
	for i := 0; i < n; i++ {
		x[i] = b[f.piv[i]]
	}
	// L·y = P·b, unit diagonal
	for j := 0; j < n; j++ {
		for i := j + 1; i < n; i++ {
			x[i] -= f.lu[i+j*n] * x[j]
		}
	}
	// U·x = y
	for j := n - 1; j >= 0; j-- {
		x[j] /= f.lu[j+j*n]
		for i := 0; i < j; i++ {
			x[i] -= f.lu[i+j*n] * x[j]
		}
	}
}

// Solve solves A·X = B column by column.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (B.Rows() != n).
func (f *LUResult) Solve(B matrix.Reader[float64]) (*matrix.Matrix[float64], error) {
	if err := matrix.ValidateNotNil(B); err != nil {
		return nil, opErrorf(opSolve, err)
	}
	if B.Rows() != f.n {
		return nil, opErrorf(opSolve, matrix.ErrDimensionMismatch)
	}
	b, err := matrix.Gather(B)
	if err != nil {
		return nil, opErrorf(opSolve, err)
	}
	n, m := f.n, B.Cols()
	out := make([]float64, n*m)
	for j := 0; j < m; j++ {
		f.solveInto(out[j*n:(j+1)*n], b[j*n:(j+1)*n])
	}

	return matrix.FromColumnMajor(n, m, out)
}

// Inverse returns A⁻¹ by solving A·X = I.
// Errors: those of LU.
func Inverse(a matrix.Reader[float64]) (*matrix.Matrix[float64], error) {
	f, err := LU(a)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	n := f.n
	out := make([]float64, n*n)
	e := make([]float64, n)
	for j := 0; j < n; j++ {
		e[j] = 1
		f.solveInto(out[j*n:(j+1)*n], e)
		e[j] = 0
	}
	inv, err := matrix.FromColumnMajor(n, n, out)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	return inv, nil
}

// Det returns the determinant of a; a singular matrix yields 0 with no error.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrBadShape.
func Det(a matrix.Reader[float64]) (float64, error) {
	f, err := LU(a)
	if errors.Is(err, matrix.ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, opErrorf(opDet, err)
	}

	return f.Det(), nil
}
