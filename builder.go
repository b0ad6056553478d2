package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Builder Holds a non-deterministic automaton while it is being assembled. A state may have any
// number of transitions per label, and any number of states may be initial. A Builder is turned
// into an Automaton by Determinize.
type Builder struct {
	// succ[2*state+label] is the set of destinations of state on label.
	succ []*bitset.BitSet

	isInitial *bitset.BitSet
	isAccept  *bitset.BitSet
}

func NewBuilder() *Builder {
	return &Builder{
		isInitial: bitset.New(0),
		isAccept:  bitset.New(0),
	}
}

// CreateState Create a new state.
func (r *Builder) CreateState() int {
	state := r.GetNumStates()
	r.succ = append(r.succ, bitset.New(0), bitset.New(0))
	return state
}

// GetNumStates How many states this builder has.
func (r *Builder) GetNumStates() int {
	return len(r.succ) / numLabels
}

func (r *Builder) validState(state int) bool {
	return state >= 0 && state < r.GetNumStates()
}

// SetInitial Set or clear this state as an initial state.
func (r *Builder) SetInitial(state int, initial bool) {
	if !r.validState(state) {
		panic(fmt.Sprintf("builder: state %d out of range [0, %d)", state, r.GetNumStates()))
	}
	r.isInitial.SetTo(uint(state), initial)
}

// SetAccept Set or clear this state as an accept state.
func (r *Builder) SetAccept(state int, accept bool) {
	if !r.validState(state) {
		panic(fmt.Sprintf("builder: state %d out of range [0, %d)", state, r.GetNumStates()))
	}
	r.isAccept.SetTo(uint(state), accept)
}

// AddTransition Add a transition from source to dest on label. Both states must already exist.
func (r *Builder) AddTransition(source, dest, label int) error {
	if !r.validState(source) {
		return fmt.Errorf("source state %d does not exist", source)
	}
	if !r.validState(dest) {
		return fmt.Errorf("dest state %d does not exist", dest)
	}
	if label < 0 || label >= numLabels {
		return fmt.Errorf("label %d is not 0 or 1", label)
	}
	r.succ[numLabels*source+label].Set(uint(dest))
	return nil
}

// IsInitial Returns true if this state is an initial state.
func (r *Builder) IsInitial(state int) bool {
	return r.isInitial.Test(uint(state))
}

// IsAccept Returns true if this state is an accept state.
func (r *Builder) IsAccept(state int) bool {
	return r.isAccept.Test(uint(state))
}

// Reversed Returns a new builder with every transition flipped, the accept states as initial states
// and the initial states as accept states.
func (r *Builder) Reversed() *Builder {
	rev := NewBuilder()
	for s := 0; s < r.GetNumStates(); s++ {
		rev.CreateState()
	}
	for s := 0; s < r.GetNumStates(); s++ {
		for label := 0; label < numLabels; label++ {
			dests := r.succ[numLabels*s+label]
			for d, ok := dests.NextSet(0); ok; d, ok = dests.NextSet(d + 1) {
				rev.succ[numLabels*int(d)+label].Set(uint(s))
			}
		}
	}
	rev.isInitial = r.isAccept.Clone()
	rev.isAccept = r.isInitial.Clone()
	return rev
}

// reversedBuilder Treats the predecessor index of a as a successor relation. The accept states of a
// become the initial states and the initial state of a becomes the only accept state.
func reversedBuilder(a *Automaton) *Builder {
	b := NewBuilder()
	for range a.States() {
		b.CreateState()
	}
	for s := range a.States() {
		for label := 0; label < numLabels; label++ {
			for _, p := range a.Predecessors(s, label) {
				b.succ[numLabels*s+label].Set(uint(p))
			}
		}
	}
	b.isInitial = a.isAccept.Clone()
	b.isAccept.Set(uint(a.Initial()))
	return b
}
