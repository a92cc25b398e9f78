// SPDX-License-Identifier: MIT

// Package matrix - change notifier (copy-on-write publish/subscribe channel).
//
// Purpose:
//   - Let an Implementor know, at mutation time, which views currently alias it.
//   - Keep subscribers as weak back-references: a view's lifetime is governed
//     only by the Matrix handles that reach it, never by its ancestors.
//
// Contract:
//   - fire() is synchronous and carries no payload; every live subscriber is
//     asked to materialize before the caller applies its mutation.
//   - Notification is one hop: grandchildren are not visited here.
//   - Dead weak references are pruned lazily on subscribe and fire.
//
// Complexity quicksheet:
//   - subscribe: amortized O(k) (prune); unsubscribe: O(k); fire: O(k) + materialization.
package matrix

import "weak"

// notifier is the per-Implementor subscriber table.
// The zero value is ready to use.
type notifier[T Element] struct {
	subs []weak.Pointer[View[T]]
}

// subscribe registers v and records the registration on the view, so that a
// later materialization can unsubscribe from the right table.
func (n *notifier[T]) subscribe(v *View[T]) {
	n.prune()
	n.subs = append(n.subs, weak.Make(v))
	v.source = n
}

// unsubscribe removes v (no-op when absent).
func (n *notifier[T]) unsubscribe(v *View[T]) {
	key := weak.Make(v)
	for i, w := range n.subs {
		if w == key {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// prune drops references whose views were collected.
func (n *notifier[T]) prune() {
	live := n.subs[:0]
	for _, w := range n.subs {
		if w.Value() != nil {
			live = append(live, w)
		}
	}
	// clear the tail so the backing array does not pin stale weak handles
	for i := len(live); i < len(n.subs); i++ {
		n.subs[i] = weak.Pointer[View[T]]{}
	}
	n.subs = live
}

// fire asks every live subscriber to react to a pending mutation.
// MAIN DESCRIPTION:
//   - Called by Set/Apply/Fill BEFORE the mutation is applied.
//
// Implementation:
//   - Stage 1: resolve weak references into a local batch (pruning dead ones).
//   - Stage 2: invoke onParentChange on each view, in registration order.
//
// Behavior highlights:
//   - Handlers unsubscribe themselves while we iterate; the local batch keeps
//     the iteration stable.
//   - The first failing handler aborts the cascade and its error is returned;
//     views materialized before the failure hold the current (pre-mutation)
//     content, so the overall state stays consistent.
//
// Complexity:
//   - Time O(k + Σ materialization), Space O(k).
func (n *notifier[T]) fire() error {
	if len(n.subs) == 0 {
		return nil
	}
	n.prune()

	batch := make([]*View[T], 0, len(n.subs))
	for _, w := range n.subs {
		if v := w.Value(); v != nil {
			batch = append(batch, v)
		}
	}

	for _, v := range batch {
		if err := v.onParentChange(); err != nil {
			return err
		}
	}

	return nil
}

// transferTo moves every live subscriber of n onto dst and empties n.
// Used when a view is rebound: its children keep listening to whatever now
// backs the slot they delegate through.
func (n *notifier[T]) transferTo(dst *notifier[T]) {
	for _, w := range n.subs {
		if v := w.Value(); v != nil {
			dst.subs = append(dst.subs, w)
			v.source = dst
		}
	}
	n.subs = nil
}

// live reports the number of live subscribers.
func (n *notifier[T]) live() int {
	count := 0
	for _, w := range n.subs {
		if w.Value() != nil {
			count++
		}
	}

	return count
}
