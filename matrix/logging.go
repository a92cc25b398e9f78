// SPDX-License-Identifier: MIT

package matrix

import "log/slog"

// logger receives debug events from the copy-on-write protocol.
// Silent by default.
var logger = slog.New(slog.DiscardHandler)

// SetLogger routes storage-engine debug events (materializations) to l.
// Passing nil restores the silent default. Not safe to call concurrently
// with matrix operations.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
