// SPDX-License-Identifier: MIT

// Package matrix - materializer (second half of the copy-on-write protocol).
//
// States of a view with respect to an ancestor:
//   - Live-Linked : registered on the ancestor's notifier, delegating to it.
//   - Materialized: rebound to a private Dense snapshot and detached.
//
// Transition (one per notification received while Live-Linked):
//  1. read the visible data through the pre-mutation path into a new buffer;
//  2. unsubscribe from the ancestor's notifier;
//  3. hand this view's own subscribers to the new Dense (they are NOT
//     materialized; they keep delegating through the owner slot);
//  4. swap the owner slot to the new Dense and rebind the view to it with an
//     identity mapping.
//
// The caller (the mutating Set) applies its write only after every direct
// subscriber went through these steps.
package matrix

import (
	"fmt"
	"log/slog"
)

const ctxMaterialize = "View.materialize"

// onParentChange is the subscription callback.
// Views on the active write path ignore the notification they caused.
func (v *View[T]) onParentChange() error {
	if v.writing {
		return nil
	}

	return v.materialize()
}

// materialize snapshots the view into a private Dense and rebinds the chain.
// MAIN DESCRIPTION:
//   - Faithful snapshot of the view contents as of immediately before the
//     pending mutation.
//
// Errors:
//   - ErrAllocation when the snapshot buffer cannot be obtained; read errors
//     from the delegation path. In both cases nothing was rebound.
//
// Complexity:
//   - Time O(r*c*depth), Space O(r*c).
func (v *View[T]) materialize() error {
	data, err := v.snapshot()
	if err != nil {
		return fmt.Errorf("%s: %w", ctxMaterialize, err)
	}
	r, c := v.Rows(), v.Cols()
	d := &Dense[T]{r: r, c: c, data: data, validateNaNInf: v.numericPolicy()}

	if v.source != nil {
		v.source.unsubscribe(v)
		v.source = nil
	}
	v.subs.transferTo(&d.subs)
	v.owner.impl = d
	v.parent = v.owner
	v.mapping = identityMapping(r, c)

	logger.Debug("matrix: view materialized",
		slog.Int("rows", r),
		slog.Int("cols", c),
		slog.Int("children", d.subs.live()),
	)

	return nil
}
