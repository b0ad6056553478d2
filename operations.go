package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// RemoveUnreachable Returns a copy of a without the states that cannot be reached from the initial
// state. Surviving states are renumbered in breadth-first discovery order, so the initial state
// becomes state 0.
func RemoveUnreachable(a *Automaton) *Automaton {
	numStates := a.GetNumStates()
	mp := make([]int, numStates)
	seen := bitset.New(uint(numStates))
	order := make([]int, 0, numStates)

	workList := []int{a.Initial()}
	seen.Set(uint(a.Initial()))
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		mp[state] = len(order)
		order = append(order, state)

		for label := 0; label < numLabels; label++ {
			dest := a.Step(state, label)
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}

	delta := make([][2]int, len(order))
	accept := make([]int, 0, len(order))
	for i, state := range order {
		delta[i] = [2]int{mp[a.Step(state, 0)], mp[a.Step(state, 1)]}
		if a.IsAccept(state) {
			accept = append(accept, i)
		}
	}
	return NewAutomaton(mp[a.Initial()], accept, delta)
}

// Reverse Returns a deterministic automaton accepting exactly the reversals of the strings accepted
// by a. The predecessor relation of a is used as a non-deterministic successor relation whose
// initial states are the accept states of a, then determinized.
func Reverse(a *Automaton) *Automaton {
	return Determinize(reversedBuilder(a))
}

// MinimizeBrzozowski Minimizes a by determinizing its reversal twice. The result is the minimal
// automaton for the language of a, up to state numbering.
func MinimizeBrzozowski(a *Automaton) *Automaton {
	return Reverse(Reverse(a))
}

// IsEmpty Returns true if a accepts no strings.
func IsEmpty(a *Automaton) bool {
	if a.IsAccept(a.Initial()) {
		return false
	}

	seen := bitset.New(uint(a.GetNumStates()))
	workList := []int{a.Initial()}
	seen.Set(uint(a.Initial()))
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		if a.IsAccept(state) {
			return false
		}
		for label := 0; label < numLabels; label++ {
			dest := a.Step(state, label)
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return true
}
