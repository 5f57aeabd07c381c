// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pair provides a container that bundles a self-owned value (the
// owner) with a second value computed from it (the dependent), keeping both
// movable as one unit with a single, well-defined teardown order.
//
// The core type [Pair] places the owner in a dedicated heap cell at
// construction, invokes a caller-supplied production function against that
// cell to build the dependent, and from then on guards all access behind a
// liveness check: the pair is live from successful construction until it is
// consumed ([Pair.IntoOwner], [Pair.IntoOwnerPtr]) or dropped ([Pair.Drop]),
// and every accessor panics afterwards. Exactly one consume-or-drop wins,
// enforced by an atomic one-shot latch.
//
// # Design Philosophy
//
// pair provides:
//   - A single construction path with a full convenience matrix over
//     {fallible, infallible} × {context-taking, context-free} ×
//     {owner-by-value, owner-in-cell}
//   - Callback-scoped dependent access that brackets every use of the
//     dependent between liveness checks
//   - A teardown protocol with a documented, deterministic panic-precedence
//     policy: dependent before owner, always, on every path
//
// # Borrow Contract
//
// The contract between an owner type and its dependent type has two halves:
// the dependent-type declaration, carried by the D type parameter, and the
// production function, which computes the dependent from a pointer to the
// owner's cell plus an optional context:
//
//   - [MakeDependentFunc]: the canonical production shape —
//     func(owner *O, ctx C) (D, error)
//   - [Owner]: the method form of the same contract, implemented on *O
//   - [OwnerMake]: bridges the method form to the function form
//   - [NoContext]: the trivial context for contracts that need none
//
// Production runs exactly once per construction attempt. Infallibility is
// structural: the infallible constructors accept a production function with
// no error result, so a fallible contract does not fit their signatures.
//
// # Construction
//
//   - [New], [NewWithContext]: infallible, owner by value
//   - [TryNew], [TryNewWithContext]: fallible, owner by value
//   - [NewFromPtr], [NewFromPtrWithContext]: infallible, adopting an
//     existing owner cell
//   - [TryNewFromPtr], [TryNewFromPtrWithContext]: fallible, adopting an
//     existing owner cell
//   - [NewZero]: pairs the zero value of O with an infallible, context-free
//     contract
//
// If production returns an error, no pair is created and the owner remains
// the caller's, untouched. If production panics, the owner is torn down
// (its [Dropper] hook runs, if any) before the panic continues.
//
// # Access
//
//   - [Pair.Owner]: shared view of the owner; treat it as read-only —
//     mutation behind the owner's own indirections (interior mutability) is
//     fine, replacing owner state that the dependent views is not
//   - [WithDependent]: callback-scoped shared access to the dependent
//   - [WithDependentMut]: callback-scoped exclusive access, for mutation
//   - [WithBoth], [WithBothMut]: both parts in one callback
//
// Accessor callbacks receive cell pointers valid only for the duration of
// the call and must not retain them; whatever the callback computes is
// returned by value. Shared accessors may run concurrently with each other;
// the Mut forms require the caller to hold the pair exclusively, exactly
// like a write to any ordinary Go value.
//
// # Teardown
//
// Owners and dependents that need teardown implement [Dropper]; parts
// without the hook need none (storage is reclaimed by the garbage
// collector). On every teardown path the dependent is torn down strictly
// before the owner:
//
//   - [Pair.Drop]: tears down dependent, then owner; idempotent. If the
//     dependent's teardown panics, the owner's still runs and the
//     dependent's earlier panic wins — a second panic raised by the owner's
//     teardown during that recovery is discarded.
//   - [Pair.IntoOwnerPtr], [Pair.IntoOwner]: tear down only the dependent
//     and hand the owner back live. If the dependent's teardown panics, the
//     consumption is aborted: the owner is torn down too and the panic then
//     propagates, falling through to the runtime's panic-during-panic crash
//     if that second teardown panics as well.
//
// # Concurrency
//
// A Pair is a passive value: no goroutines, no internal locking. The usual
// rules apply — many concurrent readers xor one writer — and sharing a pair
// across goroutines for mutation requires wrapping it in external
// synchronization ([sync.Mutex], [sync.RWMutex]), the same as any other Go
// value. The liveness latch is atomic so that access racing a drop fails
// the latch check rather than observing torn-down parts, but the latch is a
// guardrail, not a synchronization guarantee.
//
// # Formatting
//
// *Pair implements [fmt.Formatter], rendering as a two-field structure with
// the verb, flags, width, and precision forwarded transparently to both
// fields, so the output matches what formatting the fields directly would
// produce. A pair that is no longer live formats as "Pair(dead)".
//
// # No Substitution
//
// Go generics have no variance: Pair[O1, D1] and Pair[O2, D2] are unrelated
// types for distinct arguments, which closes the type-confusion hole that
// substituting related owner types would open. The adjacent hazard in Go is
// shallow copying a pair (two pairs sharing cells, double teardown); all
// constructors return *Pair and the struct carries a noCopy marker so that
// go vet flags copies.
package pair
