// SPDX-License-Identifier: MIT
// Package: matio
//
// Binary layout (little-endian):
//
//	offset  size  field
//	0       4     magic "LVMT"
//	4       1     version (1)
//	5       1     kind (1 = float64, 2 = complex128)
//	6       2     reserved (zero)
//	8       8     rows (uint64)
//	16      8     cols (uint64)
//	24      ...   payload, column-major; complex elements as (real, imag)
//
// The payload is exactly the matrix Storage order, so a Dense round-trips
// without reshuffling.

package matio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	headerSize    = 24
	formatVersion = 1
)

var magic = [4]byte{'L', 'V', 'M', 'T'}

// Kind identifies the element type stored in a binary stream.
type Kind uint8

const (
	KindFloat64    Kind = 1
	KindComplex128 Kind = 2
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindFloat64:
		return "float64"
	case KindComplex128:
		return "complex128"
	}

	return "unknown"
}

// header is the decoded fixed-size prefix.
type header struct {
	kind       Kind
	rows, cols int
}

// kindOf reports the Kind of T.
func kindOf[T matrix.Element]() Kind {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		return KindComplex128
	}

	return KindFloat64
}

// elemSize is the encoded byte width of one element of kind k.
func (k Kind) elemSize() int {
	if k == KindComplex128 {
		return 16
	}

	return 8
}

// payloadSize returns the payload byte count. Headers announcing more than
// matrix.MaxElements elements are rejected with matrix.ErrAllocation before
// anything is allocated.
func (h header) payloadSize() (int, error) {
	if h.rows < 0 || h.cols < 0 {
		return 0, ErrTruncated
	}
	if h.cols != 0 && h.rows > matrix.MaxElements/h.cols {
		return 0, fmt.Errorf("%dx%d elements: %w", h.rows, h.cols, matrix.ErrAllocation)
	}
	n := h.rows * h.cols

	return n * h.kind.elemSize(), nil
}

func encodeHeader(h header) []byte {
	b := make([]byte, headerSize)
	copy(b[0:4], magic[:])
	b[4] = formatVersion
	b[5] = byte(h.kind)
	binary.LittleEndian.PutUint64(b[8:16], uint64(h.rows))
	binary.LittleEndian.PutUint64(b[16:24], uint64(h.cols))

	return b
}

func decodeHeader(b []byte) (header, error) {
	if len(b) < headerSize {
		return header{}, ErrTruncated
	}
	if [4]byte(b[0:4]) != magic {
		return header{}, ErrBadMagic
	}
	if b[4] != formatVersion {
		return header{}, ErrVersion
	}
	h := header{kind: Kind(b[5])}
	if h.kind != KindFloat64 && h.kind != KindComplex128 {
		return header{}, ErrKind
	}
	rows := binary.LittleEndian.Uint64(b[8:16])
	cols := binary.LittleEndian.Uint64(b[16:24])
	if rows > math.MaxInt32 || cols > math.MaxInt32 {
		return header{}, ErrTruncated
	}
	h.rows, h.cols = int(rows), int(cols)

	return h, nil
}

// putElems encodes src into dst (len(dst) == len(src)*elemSize).
func putElems[T matrix.Element](dst []byte, src []T) {
	switch s := any(src).(type) {
	case []float64:
		for k, v := range s {
			binary.LittleEndian.PutUint64(dst[8*k:], math.Float64bits(v))
		}
	case []complex128:
		for k, v := range s {
			binary.LittleEndian.PutUint64(dst[16*k:], math.Float64bits(real(v)))
			binary.LittleEndian.PutUint64(dst[16*k+8:], math.Float64bits(imag(v)))
		}
	}
}

// getElems decodes n elements from src.
func getElems[T matrix.Element](src []byte, n int) []T {
	out := make([]T, n)
	switch d := any(out).(type) {
	case []float64:
		for k := range d {
			d[k] = math.Float64frombits(binary.LittleEndian.Uint64(src[8*k:]))
		}
	case []complex128:
		for k := range d {
			re := math.Float64frombits(binary.LittleEndian.Uint64(src[16*k:]))
			im := math.Float64frombits(binary.LittleEndian.Uint64(src[16*k+8:]))
			d[k] = complex(re, im)
		}
	}

	return out
}

// build turns decoded data into a handle; zero-area payloads are rejected
// because public constructors require positive dimensions.
func build[T matrix.Element](h header, data []T, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	return matrix.FromColumnMajor(h.rows, h.cols, data, opts...)
}
