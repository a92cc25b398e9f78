// SPDX-License-Identifier: MIT

package matio

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/lvmat/matrix"
)

const (
	opOpenBinary = "OpenBinary"
	opSaveBinary = "SaveBinary"
)

// OpenBinary memory-maps a binary matrix file read-only and decodes it into
// a fresh Dense. The mapping is released before returning.
// Errors: os errors, plus those of ReadBinary.
func OpenBinary[T matrix.Element](path string, opts ...matrix.Option) (m *matrix.Matrix[T], err error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, ioErrorf(opOpenBinary, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioErrorf(opOpenBinary, err)
	}
	if info.Size() < headerSize {
		return nil, ioErrorf(opOpenBinary, ErrTruncated)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, ioErrorf(opOpenBinary, err)
	}
	defer func() {
		if uerr := data.Unmap(); uerr != nil && err == nil {
			m, err = nil, ioErrorf(opOpenBinary, uerr)
		}
	}()

	h, err := decodeHeader(data)
	if err != nil {
		return nil, ioErrorf(opOpenBinary, err)
	}
	if h.kind != kindOf[T]() {
		return nil, ioErrorf(opOpenBinary, ErrKind)
	}
	size, err := h.payloadSize()
	if err != nil {
		return nil, ioErrorf(opOpenBinary, err)
	}
	if len(data)-headerSize < size {
		return nil, ioErrorf(opOpenBinary, ErrTruncated)
	}
	if m, err = build(h, getElems[T](data[headerSize:], h.rows*h.cols), opts...); err != nil {
		return nil, ioErrorf(opOpenBinary, err)
	}

	return m, nil
}

// SaveBinary writes m to path through a read-write mapping sized to the
// encoded matrix, then flushes it. An existing file is truncated.
func SaveBinary[T matrix.Element](path string, m matrix.Reader[T]) (err error) {
	src, err := matrix.Gather(m)
	if err != nil {
		return ioErrorf(opSaveBinary, err)
	}
	h := header{kind: kindOf[T](), rows: m.Rows(), cols: m.Cols()}
	size := headerSize + len(src)*h.kind.elemSize()

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return ioErrorf(opSaveBinary, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(opSaveBinary, cerr)
		}
	}()
	if err = f.Truncate(int64(size)); err != nil {
		return ioErrorf(opSaveBinary, err)
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return ioErrorf(opSaveBinary, err)
	}
	copy(data, encodeHeader(h))
	putElems(data[headerSize:], src)
	if err = data.Flush(); err != nil {
		_ = data.Unmap()
		return ioErrorf(opSaveBinary, err)
	}
	if err = data.Unmap(); err != nil {
		return ioErrorf(opSaveBinary, err)
	}

	return nil
}
