// SPDX-License-Identifier: MIT

// Package matio reads and writes lvmat matrices.
//
// Two encodings are supported:
//
//   - CSV (WriteCSV, ReadCSV) for real matrices, one record per row.
//   - A compact binary layout (WriteBinary, ReadBinary) carrying a 24-byte
//     header followed by the column-major payload, for float64 and
//     complex128 elements. OpenBinary and SaveBinary do the same through a
//     memory mapping of the file.
//
// Writers accept any matrix.Reader, so views are serialized through their
// index mapping and read-only facades work unchanged. Readers always return
// a fresh Dense-backed handle.
package matio
