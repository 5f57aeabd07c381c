// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pair_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/pair"
)

// Buff owns a text buffer; its dependent is the buffer split into words.
type Buff struct {
	Text string
}

func splitWords(b *Buff) []string {
	return strings.Fields(b.Text)
}

// depWords snapshots the dependent word list of a Buff pair.
func depWords(p *pair.Pair[Buff, []string]) []string {
	return pair.WithDependent(p, func(dep *[]string) []string {
		return slices.Clone(*dep)
	})
}

func TestBasicUsage(t *testing.T) {
	p := pair.New(Buff{Text: "This is a test of pair."}, splitWords)

	require.Equal(t, "This is a test of pair.", p.Owner().Text)
	require.Equal(t, []string{"This", "is", "a", "test", "of", "pair."}, depWords(p))

	pair.WithDependentMut(p, func(dep *[]string) int {
		*dep = append(*dep, "hi")
		return len(*dep)
	})
	pair.WithDependentMut(p, func(dep *[]string) int {
		*dep = append(*dep, "hey")
		return len(*dep)
	})

	both := pair.WithBoth(p, func(owner *Buff, dep *[]string) [2]any {
		return [2]any{owner.Text, slices.Clone(*dep)}
	})
	assert.Equal(t, "This is a test of pair.", both[0])
	assert.Equal(t, []string{"This", "is", "a", "test", "of", "pair.", "hi", "hey"}, both[1])

	pair.WithDependentMut(p, func(dep *[]string) int {
		slices.Sort(*dep)
		return len(*dep)
	})
	assert.Equal(t, []string{"This", "a", "hey", "hi", "is", "of", "pair.", "test"}, depWords(p))

	lastWord := pair.WithBothMut(p, func(owner *Buff, dep *[]string) string {
		require.Equal(t, "This is a test of pair.", owner.Text)
		last := (*dep)[len(*dep)-1]
		*dep = (*dep)[:len(*dep)-1]
		return last
	})
	assert.Equal(t, "test", lastWord)
	assert.Equal(t, []string{"This", "a", "hey", "hi", "is", "of", "pair."}, depWords(p))

	owner := p.IntoOwner()
	assert.Equal(t, "This is a test of pair.", owner.Text)
}

func TestRepeatedSharedAccessIsIdempotent(t *testing.T) {
	p := pair.New(Buff{Text: "repeat after me"}, splitWords)
	defer p.Drop()

	want := []string{"repeat", "after", "me"}
	for range 10 {
		require.Equal(t, "repeat after me", p.Owner().Text)
		require.Equal(t, want, depWords(p))
		require.Equal(t, len(want), pair.WithBoth(p, func(owner *Buff, dep *[]string) int {
			return len(*dep)
		}))
	}
}

func TestInteriorMutabilityThroughOwner(t *testing.T) {
	type counterOwner struct {
		count *int
	}

	p := pair.New(counterOwner{count: new(int)}, func(o *counterOwner) *int {
		return o.count
	})
	defer p.Drop()

	// Mutation behind the owner's own pointer never replaces owner storage,
	// so the dependent's view stays valid and observes the write.
	*p.Owner().count = 5
	got := pair.WithDependent(p, func(dep **int) int { return **dep })
	assert.Equal(t, 5, got)

	pair.WithDependentMut(p, func(dep **int) int {
		**dep++
		return **dep
	})
	assert.Equal(t, 6, *p.Owner().count)
}

func TestMultiBorrowDependent(t *testing.T) {
	type record struct {
		key, value string
	}
	type view struct {
		key, value *string
	}

	p := pair.New(record{key: "k", value: "v"}, func(o *record) view {
		return view{key: &o.key, value: &o.value}
	})
	defer p.Drop()

	got := pair.WithBoth(p, func(owner *record, dep *view) [2]string {
		require.Same(t, &owner.key, dep.key)
		require.Same(t, &owner.value, dep.value)
		return [2]string{*dep.key, *dep.value}
	})
	assert.Equal(t, [2]string{"k", "v"}, got)
}

func TestUseAfterConsumePanics(t *testing.T) {
	p := pair.New(Buff{Text: "gone"}, splitWords)
	_ = p.IntoOwner()

	assert.PanicsWithValue(t, "pair: use after consume or drop", func() { p.Owner() })
	assert.PanicsWithValue(t, "pair: use after consume or drop", func() {
		pair.WithDependent(p, func(dep *[]string) int { return len(*dep) })
	})
	assert.PanicsWithValue(t, "pair: use after consume or drop", func() {
		pair.WithDependentMut(p, func(dep *[]string) int { return len(*dep) })
	})
	assert.PanicsWithValue(t, "pair: use after consume or drop", func() {
		pair.WithBoth(p, func(owner *Buff, dep *[]string) int { return len(*dep) })
	})
	assert.PanicsWithValue(t, "pair: use after consume or drop", func() { p.IntoOwner() })

	// Drop after consume is a no-op, not a panic.
	p.Drop()
}

func TestZeroPairIsInert(t *testing.T) {
	var p pair.Pair[int, int]

	p.Drop()
	assert.PanicsWithValue(t, "pair: use after consume or drop", func() { p.Owner() })
	assert.PanicsWithValue(t, "pair: use after consume or drop", func() { p.IntoOwner() })
}
