package automaton

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Alphabet size; labels are 0 and 1.
const numLabels = 2

// Automaton Represents a deterministic automaton over the binary alphabet. States are the integers
// [0, GetNumStates()) and every state has exactly one transition per label. An Automaton is never
// modified after NewAutomaton returns; every operation in this package builds a fresh one.
type Automaton struct {
	// Destination of each transition, packed as next[2*state+label].
	next []int

	// Predecessor index per label in compressed form: the sources of all transitions with that
	// label entering state s are prev[label][prevStart[label][s]:prevStart[label][s+1]], ascending.
	prevStart [numLabels][]int
	prev      [numLabels][]int

	isAccept *bitset.BitSet

	initial int
}

// NewAutomaton Builds an automaton from a total transition relation. delta[s] holds the destinations
// of state s on label 0 and label 1. Invalid input is a programming error and panics.
func NewAutomaton(initial int, accept []int, delta [][2]int) *Automaton {
	numStates := len(delta)
	if initial < 0 || initial >= numStates {
		panic(fmt.Sprintf("automaton: initial state %d out of range [0, %d)", initial, numStates))
	}

	a := &Automaton{
		next:     make([]int, 0, numStates*numLabels),
		isAccept: bitset.New(uint(numStates)),
		initial:  initial,
	}
	counts := [numLabels][]int{make([]int, numStates+1), make([]int, numStates+1)}
	for s, dests := range delta {
		for label, dest := range dests {
			if dest < 0 || dest >= numStates {
				panic(fmt.Sprintf("automaton: transition %d --%d--> %d leaves [0, %d)", s, label, dest, numStates))
			}
			a.next = append(a.next, dest)
			counts[label][dest+1]++
		}
	}

	// Counting sort by destination; scanning sources in order keeps each list ascending.
	for label := 0; label < numLabels; label++ {
		start := counts[label]
		for s := 1; s <= numStates; s++ {
			start[s] += start[s-1]
		}
		fill := make([]int, numStates)
		copy(fill, start[:numStates])
		prev := make([]int, numStates)
		for s := 0; s < numStates; s++ {
			dest := a.next[numLabels*s+label]
			prev[fill[dest]] = s
			fill[dest]++
		}
		a.prevStart[label] = start
		a.prev[label] = prev
	}

	for _, s := range accept {
		a.checkState(s)
		a.isAccept.Set(uint(s))
	}
	return a
}

func (a *Automaton) checkState(state int) {
	if state < 0 || state >= a.GetNumStates() {
		panic(fmt.Sprintf("automaton: state %d out of range [0, %d)", state, a.GetNumStates()))
	}
}

func checkLabel(label int) {
	if label < 0 || label >= numLabels {
		panic(fmt.Sprintf("automaton: label %d is not 0 or 1", label))
	}
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.next) / numLabels
}

// Initial Returns the initial state.
func (a *Automaton) Initial() int {
	return a.initial
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	a.checkState(state)
	return a.isAccept.Test(uint(state))
}

// AcceptStates Returns the accept states in ascending order.
func (a *Automaton) AcceptStates() []int {
	states := make([]int, 0, a.isAccept.Count())
	for s, ok := a.isAccept.NextSet(0); ok; s, ok = a.isAccept.NextSet(s + 1) {
		states = append(states, int(s))
	}
	return states
}

// Step Returns the destination of the transition leaving state with the given label.
func (a *Automaton) Step(state, label int) int {
	a.checkState(state)
	checkLabel(label)
	return a.next[numLabels*state+label]
}

// Predecessors Returns, in ascending order, every state whose transition with the given label enters
// state. The returned slice aliases internal storage and must not be modified.
func (a *Automaton) Predecessors(state, label int) []int {
	a.checkState(state)
	checkLabel(label)
	start := a.prevStart[label]
	return a.prev[label][start[state]:start[state+1]:start[state+1]]
}

// States Iterates over all states in ascending order.
func (a *Automaton) States() iter.Seq[int] {
	return func(yield func(int) bool) {
		for s := 0; s < a.GetNumStates(); s++ {
			if !yield(s) {
				return
			}
		}
	}
}
