// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pair

import (
	"sync/atomic"
)

// Pair liveness states. The zero value is deliberately not live, so a Pair
// that was never constructed through a constructor behaves like one that
// has already been retired.
const (
	stateZero uint32 = iota
	stateLive
	stateDead
)

// liveness is the one-shot latch tracking a Pair between construction and
// its single consume-or-drop. Retirement is affine: exactly one retire
// wins, and concurrent retires lose rather than tearing parts down twice.
type liveness struct {
	state atomic.Uint32
}

// start marks the pair live. Called once, at the end of construction.
func (l *liveness) start() {
	l.state.Store(stateLive)
}

// live reports whether the pair is between construction and retirement.
func (l *liveness) live() bool {
	return l.state.Load() == stateLive
}

// retire transitions live → dead and reports whether this call won the
// transition. Losing calls must not touch the pair's cells.
func (l *liveness) retire() bool {
	return l.state.CompareAndSwap(stateLive, stateDead)
}

// noCopy makes go vet's copylocks check flag shallow copies of Pair.
// Copying a live pair would leave two pairs sharing the same cells, and
// with them a double teardown.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
