// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pair

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Format implements [fmt.Formatter]. A live pair renders as a two-field
// structure, with the verb, flags, width, and precision of the directive
// forwarded to both fields unchanged:
//
//	fmt.Sprintf("%6.2f", p) // "Pair{owner:  12.50, dependent:  25.00}"
//
// The field output matches what formatting the owner and dependent directly
// with the same directive would produce. A pair that is no longer live
// renders as "Pair(dead)".
func (p *Pair[O, D]) Format(f fmt.State, verb rune) {
	if !p.life.live() {
		fmt.Fprint(f, "Pair(dead)")
		return
	}
	directive := string(appendDirective(make([]byte, 0, 16), f, verb))
	fmt.Fprintf(f, "Pair{owner: "+directive+", dependent: "+directive+"}", *p.owner, *p.dependent)
}

// appendDirective reconstructs the format directive captured by f and verb,
// flags first, then width and precision.
func appendDirective(b []byte, f fmt.State, verb rune) []byte {
	b = append(b, '%')
	for _, flag := range []byte{'+', '-', '#', ' ', '0'} {
		if f.Flag(int(flag)) {
			b = append(b, flag)
		}
	}
	if width, ok := f.Width(); ok {
		b = strconv.AppendInt(b, int64(width), 10)
	}
	if prec, ok := f.Precision(); ok {
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(prec), 10)
	}
	return utf8.AppendRune(b, verb)
}
