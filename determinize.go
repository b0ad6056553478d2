package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// Determinize Converts the non-deterministic automaton held by b into a deterministic one using the
// powerset construction. Every distinct subset of b's states reached from the initial set becomes
// exactly one state of the result; ids are handed out in the order subsets are first requested, so
// the initial subset is always state 0. The empty subset is an ordinary (rejecting, self-looping)
// state. Worst case complexity: exponential in the number of states of b.
func Determinize(b *Builder) *Automaton {
	newState := NewHashMap[int](WithCapacity(b.GetNumStates() + 1))
	var delta [][2]int
	var accept []int

	getOrCreateState := func(s *FrozenIntSet) int {
		if id, ok := newState.Get(s); ok {
			return id
		}
		id := newState.Size()
		newState.Set(s, id)
		delta = append(delta, [2]int{-1, -1})
		return id
	}

	initialSet := freezeBitSet(b.isInitial)
	getOrCreateState(initialSet)

	visited := bitset.New(0)
	worklist := []*FrozenIntSet{initialSet}
	succ := [numLabels]*bitset.BitSet{bitset.New(0), bitset.New(0)}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]

		id := getOrCreateState(s)
		if visited.Test(uint(id)) {
			continue
		}
		visited.Set(uint(id))

		final := false
		succ[0].ClearAll()
		succ[1].ClearAll()
		for _, q := range s.GetArray() {
			succ[0].InPlaceUnion(b.succ[numLabels*q])
			succ[1].InPlaceUnion(b.succ[numLabels*q+1])
			if b.IsAccept(q) {
				final = true
			}
		}

		s0, s1 := freezeBitSet(succ[0]), freezeBitSet(succ[1])
		delta[id] = [2]int{getOrCreateState(s0), getOrCreateState(s1)}
		if final {
			accept = append(accept, id)
		}
		worklist = append(worklist, s0, s1)
	}

	return NewAutomaton(0, accept, delta)
}
