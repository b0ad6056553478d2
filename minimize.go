package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// Minimize Returns the minimal deterministic automaton accepting the same language as a: unreachable
// states are removed, then states that no input can tell apart are merged. Class ids follow the
// smallest state of each class, so the initial state is always state 0.
func Minimize(a *Automaton) *Automaton {
	return groupNondistinguishable(RemoveUnreachable(a))
}

// pairIndex Position of the unordered pair {qa, qb}, qa < qb, in a triangular table.
func pairIndex(qa, qb int) uint {
	return uint(qb*(qb-1)/2 + qa)
}

// distinguishable Runs the table-filling algorithm. A pair is marked when one of its states is an
// accept state and the other is not, or when some label leads it into a marked pair. Marks are
// propagated backwards through the predecessor index.
func distinguishable(a *Automaton) *bitset.BitSet {
	n := a.GetNumStates()
	table := bitset.New(uint(n * (n - 1) / 2))
	var workList [][2]int

	for qa := 0; qa < n; qa++ {
		for qb := qa + 1; qb < n; qb++ {
			if a.IsAccept(qa) != a.IsAccept(qb) {
				table.Set(pairIndex(qa, qb))
				workList = append(workList, [2]int{qa, qb})
			}
		}
	}

	for len(workList) > 0 {
		ql, qr := workList[0][0], workList[0][1]
		workList = workList[1:]

		for label := 0; label < numLabels; label++ {
			for _, qa := range a.Predecessors(ql, label) {
				for _, qb := range a.Predecessors(qr, label) {
					lo, hi := min(qa, qb), max(qa, qb)
					if lo == hi || table.Test(pairIndex(lo, hi)) {
						continue
					}
					table.Set(pairIndex(lo, hi))
					workList = append(workList, [2]int{lo, hi})
				}
			}
		}
	}
	return table
}

// groupNondistinguishable Collapses every class of equivalent states of a into one state.
func groupNondistinguishable(a *Automaton) *Automaton {
	n := a.GetNumStates()
	table := distinguishable(a)

	classes := newUnionFind(n)
	for qa := 0; qa < n; qa++ {
		for qb := qa + 1; qb < n; qb++ {
			if !table.Test(pairIndex(qa, qb)) {
				classes.union(qa, qb)
			}
		}
	}

	// Number classes by their smallest state, which also serves as the representative.
	classOf := make([]int, n)
	idOfRoot := make(map[int]int)
	var repr []int
	for q := 0; q < n; q++ {
		root := classes.find(q)
		id, ok := idOfRoot[root]
		if !ok {
			id = len(repr)
			idOfRoot[root] = id
			repr = append(repr, q)
		}
		classOf[q] = id
	}

	delta := make([][2]int, len(repr))
	var accept []int
	for c, q := range repr {
		delta[c] = [2]int{classOf[a.Step(q, 0)], classOf[a.Step(q, 1)]}
		if a.IsAccept(q) {
			accept = append(accept, c)
		}
	}
	return NewAutomaton(classOf[a.Initial()], accept, delta)
}
