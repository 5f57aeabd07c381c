// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pair

// The borrow contract: how an owner type O produces its dependent type D.
//
// The contract has two halves. The dependent-type declaration is the D type
// parameter itself; because Go functions accept whichever owner cell they
// are handed, the declaration holds universally rather than for one
// particular cell. The production half is a function from the owner's cell
// and a context to the dependent, in either function or method form.

// NoContext is the trivial context for contracts that need no auxiliary
// input at construction time.
type NoContext = struct{}

// MakeDependentFunc is the canonical production function of the borrow
// contract: given a pointer to the owner's cell and a context, it returns
// the dependent or an error.
//
// The function must not retain owner beyond the call other than inside the
// returned dependent, and it runs exactly once per construction attempt.
// Contracts that cannot fail return a nil error unconditionally, or use the
// infallible constructors, whose production signatures carry no error
// result at all.
type MakeDependentFunc[O, D, C any] func(owner *O, ctx C) (D, error)

// Owner is the method form of the borrow contract, implemented on *O by
// owner types that know how to produce their own dependent.
//
// The receiver is the owner's cell: implementations take interior pointers
// from it freely, since the cell is never replaced while the pair is live.
type Owner[D, C any] interface {
	MakeDependent(ctx C) (D, error)
}

// OwnerMake bridges the method form of the contract to the function form,
// for use with the Try constructors:
//
//	p, err := pair.TryNewWithContext(buff, ctx, pair.OwnerMake[Buff, []string, string, *Buff]())
//
// The pointer-receiver constraint on P ties the method to the owner's cell
// rather than to a copy of the owner.
func OwnerMake[O, D, C any, P interface {
	*O
	Owner[D, C]
}]() MakeDependentFunc[O, D, C] {
	return func(owner *O, ctx C) (D, error) {
		return P(owner).MakeDependent(ctx)
	}
}

// Dropper is the optional teardown hook for owners and dependents. A part
// that implements Dropper has its Drop method run during pair teardown;
// parts without the hook need no teardown, and their storage is reclaimed
// by the garbage collector.
//
// Drop runs at most once per part on every teardown path. Implementations
// that panic are subject to the panic-precedence policy documented on
// [Pair.Drop] and [Pair.IntoOwnerPtr].
type Dropper interface {
	Drop()
}
