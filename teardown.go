// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pair

// Teardown primitives. Construction and retirement are written as paired
// acquire/release steps; these helpers run the release half, including the
// paths where an intervening step panics.

// dropGuard runs a cleanup through a deferred call unless disarmed first.
// Arm it before a step that may panic, disarm it once the step's cleanup
// obligation has passed to someone else.
type dropGuard struct {
	cleanup func()
	armed   bool
}

func (g *dropGuard) disarm() {
	g.armed = false
}

// run executes the cleanup if the guard is still armed. Use with defer.
func (g *dropGuard) run() {
	if g.armed {
		g.cleanup()
	}
}

// dropCell runs the [Dropper] hook of the part stored in cell, if it has
// one. The hook is looked up on the cell pointer first, which also covers
// value-receiver implementations, and on the stored value second, which
// covers parts that are themselves pointer types.
func dropCell[T any](cell *T) {
	if d, ok := any(cell).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(*cell).(Dropper); ok {
		d.Drop()
	}
}

// dropCellQuiet is dropCell with panics discarded. Used only where a prior
// panic already holds precedence per the documented teardown policy.
func dropCellQuiet[T any](cell *T) {
	defer func() {
		_ = recover()
	}()
	dropCell(cell)
}
