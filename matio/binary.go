// SPDX-License-Identifier: MIT

package matio

import (
	"io"

	"github.com/katalvlaran/lvmat/matrix"
)

const (
	opWriteBinary = "WriteBinary"
	opReadBinary  = "ReadBinary"
)

// WriteBinary streams m in the lvmat binary layout (see format.go).
// Views are gathered through their mapping; the source is only read.
// Errors: matrix.ErrNilMatrix, write errors.
func WriteBinary[T matrix.Element](w io.Writer, m matrix.Reader[T]) error {
	data, err := matrix.Gather(m)
	if err != nil {
		return ioErrorf(opWriteBinary, err)
	}
	h := header{kind: kindOf[T](), rows: m.Rows(), cols: m.Cols()}
	buf := make([]byte, headerSize+len(data)*h.kind.elemSize())
	copy(buf, encodeHeader(h))
	putElems(buf[headerSize:], data)
	if _, err = w.Write(buf); err != nil {
		return ioErrorf(opWriteBinary, err)
	}

	return nil
}

// ReadBinary decodes one matrix of element type T from r.
// Errors: ErrBadMagic, ErrVersion, ErrKind, ErrTruncated, matrix.ErrAllocation
// (header announces more than matrix.MaxElements elements), and construction
// errors from the matrix package (numeric policy, zero dimensions).
func ReadBinary[T matrix.Element](r io.Reader, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	hb := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hb); err != nil {
		return nil, ioErrorf(opReadBinary, ErrTruncated)
	}
	h, err := decodeHeader(hb)
	if err != nil {
		return nil, ioErrorf(opReadBinary, err)
	}
	if h.kind != kindOf[T]() {
		return nil, ioErrorf(opReadBinary, ErrKind)
	}
	size, err := h.payloadSize()
	if err != nil {
		return nil, ioErrorf(opReadBinary, err)
	}
	// Buffer grows with the bytes actually present, so a lying header
	// cannot force a large allocation.
	payload, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, ioErrorf(opReadBinary, err)
	}
	if len(payload) != size {
		return nil, ioErrorf(opReadBinary, ErrTruncated)
	}
	m, err := build(h, getElems[T](payload, h.rows*h.cols), opts...)
	if err != nil {
		return nil, ioErrorf(opReadBinary, err)
	}

	return m, nil
}
