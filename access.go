// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pair

// Callback-scoped access to the dependent. The callbacks are package-level
// generic functions rather than methods because the result type T is the
// caller's to choose, and Go methods cannot introduce type parameters.
//
// Every callback receives cell pointers valid only for the duration of the
// call; retaining them past the call escapes the liveness bracket and is a
// contract violation. Results leave the callback by value.

// WithDependent calls f with shared access to the dependent and returns
// f's result. Shared accesses may run concurrently with each other as long
// as nothing mutates the pair; f must not mutate the dependent.
//
// Panics if the pair is not live.
func WithDependent[O, D, T any](p *Pair[O, D], f func(dep *D) T) T {
	if !p.life.live() {
		panic(panicNotLive)
	}
	return f(p.dependent)
}

// WithDependentMut calls f with exclusive access to the dependent and
// returns f's result. The caller must hold the pair exclusively for the
// duration of the call, like any write to an ordinary Go value; f may
// mutate the dependent freely.
//
// Panics if the pair is not live.
func WithDependentMut[O, D, T any](p *Pair[O, D], f func(dep *D) T) T {
	if !p.life.live() {
		panic(panicNotLive)
	}
	return f(p.dependent)
}

// WithBoth calls f with shared access to the owner and the dependent
// together and returns f's result. f must not mutate either part.
//
// Panics if the pair is not live.
func WithBoth[O, D, T any](p *Pair[O, D], f func(owner *O, dep *D) T) T {
	if !p.life.live() {
		panic(panicNotLive)
	}
	return f(p.owner, p.dependent)
}

// WithBothMut calls f with shared access to the owner and exclusive access
// to the dependent. The owner stays read-only even here: the dependent may
// view it, so only the dependent side is the caller's to mutate.
//
// Panics if the pair is not live.
func WithBothMut[O, D, T any](p *Pair[O, D], f func(owner *O, dep *D) T) T {
	if !p.life.live() {
		panic(panicNotLive)
	}
	return f(p.owner, p.dependent)
}
