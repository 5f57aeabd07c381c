// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pair

// Pair bundles an owner value with a dependent computed from it. The owner
// lives in a dedicated heap cell fixed at construction; the dependent lives
// in its own cell and may hold interior pointers into the owner's. The pair
// moves freely as a unit, because moving a *Pair never relocates either
// cell.
//
// The zero Pair is not live; construct pairs with the package constructors,
// which return *Pair.
type Pair[O, D any] struct {
	noCopy noCopy

	// owner's cell: fixed at construction, nil after retirement.
	owner *O

	// dependent's cell: filled after production succeeds, nil after
	// retirement. Only reachable through the callback accessors.
	dependent *D

	life liveness
}

const (
	panicNotLive       = "pair: use after consume or drop"
	panicNilOwnerCell  = "pair: nil owner cell"
	panicNilProduction = "pair: nil production function"
)

// TryNewFromPtrWithContext constructs a Pair around an owner already in its
// own cell, producing the dependent with the given context. This is the
// single construction path; every other constructor is a thin wrapper.
//
// The owner cell is adopted as-is: it must not be written through by the
// caller afterwards. On error no pair is created and the cell is left
// untouched, still the caller's. If production panics, the owner is torn
// down (its [Dropper] hook runs, if any) before the panic continues.
func TryNewFromPtrWithContext[O, D, C any](owner *O, ctx C, makeDep MakeDependentFunc[O, D, C]) (*Pair[O, D], error) {
	if owner == nil {
		panic(panicNilOwnerCell)
	}
	if makeDep == nil {
		panic(panicNilProduction)
	}

	// The owner is at its final address before production begins, and the
	// guard guarantees its teardown if production panics. It is disarmed on
	// every normal return, including the error path: a returned error hands
	// the owner back to the caller live.
	guard := dropGuard{armed: true, cleanup: func() { dropCell(owner) }}
	defer guard.run()
	dep, err := makeDep(owner, ctx)
	guard.disarm()

	if err != nil {
		return nil, err
	}

	// Move the dependent into its own cell, then go live. From here on the
	// owner is logically borrowed by the dependent until retirement.
	p := &Pair[O, D]{owner: owner, dependent: &dep}
	p.life.start()
	return p, nil
}

// TryNewWithContext constructs a Pair from an owner value, moving it into a
// fresh cell, producing the dependent with the given context. On error the
// value was never captured and remains the caller's.
func TryNewWithContext[O, D, C any](owner O, ctx C, makeDep MakeDependentFunc[O, D, C]) (*Pair[O, D], error) {
	return TryNewFromPtrWithContext(&owner, ctx, makeDep)
}

// TryNewFromPtr is [TryNewFromPtrWithContext] for context-free contracts.
func TryNewFromPtr[O, D any](owner *O, makeDep func(owner *O) (D, error)) (*Pair[O, D], error) {
	if makeDep == nil {
		panic(panicNilProduction)
	}
	return TryNewFromPtrWithContext(owner, NoContext{}, func(o *O, _ NoContext) (D, error) {
		return makeDep(o)
	})
}

// TryNew is [TryNewWithContext] for context-free contracts.
func TryNew[O, D any](owner O, makeDep func(owner *O) (D, error)) (*Pair[O, D], error) {
	return TryNewFromPtr(&owner, makeDep)
}

// NewFromPtrWithContext constructs a Pair around an owner already in its
// own cell, with an infallible, context-taking contract. Infallibility is
// structural: the production signature has no error result.
func NewFromPtrWithContext[O, D, C any](owner *O, ctx C, makeDep func(owner *O, ctx C) D) *Pair[O, D] {
	if makeDep == nil {
		panic(panicNilProduction)
	}
	p, _ := TryNewFromPtrWithContext(owner, ctx, func(o *O, c C) (D, error) {
		return makeDep(o, c), nil
	})
	return p
}

// NewWithContext constructs a Pair from an owner value with an infallible,
// context-taking contract.
func NewWithContext[O, D, C any](owner O, ctx C, makeDep func(owner *O, ctx C) D) *Pair[O, D] {
	return NewFromPtrWithContext(&owner, ctx, makeDep)
}

// NewFromPtr constructs a Pair around an owner already in its own cell,
// with an infallible, context-free contract.
func NewFromPtr[O, D any](owner *O, makeDep func(owner *O) D) *Pair[O, D] {
	if makeDep == nil {
		panic(panicNilProduction)
	}
	p, _ := TryNewFromPtr(owner, func(o *O) (D, error) {
		return makeDep(o), nil
	})
	return p
}

// New constructs a Pair from an owner value with an infallible,
// context-free contract. This is the plain entry point:
//
//	p := pair.New(Buff{"This is a test of pair."}, func(b *Buff) []string {
//		return strings.Fields(b.Text)
//	})
func New[O, D any](owner O, makeDep func(owner *O) D) *Pair[O, D] {
	return NewFromPtr(&owner, makeDep)
}

// NewZero constructs a Pair whose owner is the zero value of O, with an
// infallible, context-free contract.
func NewZero[O, D any](makeDep func(owner *O) D) *Pair[O, D] {
	return NewFromPtr(new(O), makeDep)
}

// Owner returns a shared view of the owner, valid while the pair is live.
//
// Treat the view as read-only: the dependent may hold interior pointers
// into the owner, so replacing owner state through the returned pointer can
// invalidate the dependent's view. Mutation behind the owner's own
// indirections (interior mutability) is safe, since it never replaces the
// owner's cell.
//
// Panics if the pair is not live.
func (p *Pair[O, D]) Owner() *O {
	if !p.life.live() {
		panic(panicNotLive)
	}
	return p.owner
}

// IntoOwnerPtr consumes the pair: the dependent is torn down first, then
// the owner's cell is handed back live and unchanged. After consumption the
// pair is dead; accessors panic and [Pair.Drop] is a no-op.
//
// If the dependent's teardown panics, the consumption is aborted: the owner
// is torn down as well, and the dependent's panic then propagates. A second
// panic from the owner's teardown in that path falls through to the
// runtime's panic-during-panic crash.
//
// Panics if the pair is not live.
func (p *Pair[O, D]) IntoOwnerPtr() *O {
	if !p.life.retire() {
		panic(panicNotLive)
	}
	owner, dependent := p.owner, p.dependent
	p.owner, p.dependent = nil, nil

	defer func() {
		if r := recover(); r != nil {
			dropCell(owner)
			panic(r)
		}
	}()
	dropCell(dependent)

	return owner
}

// IntoOwner consumes the pair and returns the owner by value. See
// [Pair.IntoOwnerPtr] for the teardown and panic contract.
func (p *Pair[O, D]) IntoOwner() O {
	return *p.IntoOwnerPtr()
}

// Drop retires the pair, tearing down the dependent and then the owner, in
// that order. Drop is idempotent: after a consume or an earlier Drop it
// does nothing, and the zero Pair tolerates it.
//
// If the dependent's teardown panics, the owner's teardown still runs and
// the dependent's earlier panic wins; a panic raised by the owner's
// teardown during that recovery is discarded. When only the owner's
// teardown panics, that panic propagates normally.
func (p *Pair[O, D]) Drop() {
	if !p.life.retire() {
		return
	}
	owner, dependent := p.owner, p.dependent
	p.owner, p.dependent = nil, nil

	depDone := false
	defer func() {
		if depDone {
			// Owner teardown already ran; any panic from it is in flight
			// and keeps propagating on its own.
			return
		}
		r := recover()
		dropCellQuiet(owner)
		panic(r)
	}()
	dropCell(dependent)
	depDone = true
	dropCell(owner)
}
