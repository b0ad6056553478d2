package automaton

import (
	"fmt"
)

// Automata Factory for small, commonly needed automata.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new automaton with the empty language.
func (*Automata) MakeEmpty() *Automaton {
	return NewAutomaton(0, nil, [][2]int{{0, 0}})
}

// MakeAnyString
// Returns a new automaton that accepts all strings.
func (*Automata) MakeAnyString() *Automaton {
	return NewAutomaton(0, []int{0}, [][2]int{{0, 0}})
}

// MakeString
// Returns a new automaton that accepts only the given word, written with the characters '0' and '1'.
func (*Automata) MakeString(word string) (*Automaton, error) {
	// States 0..len(word) follow the word; the last state is the dead state.
	n := len(word)
	dead := n + 1
	delta := make([][2]int, n+2)
	for i := range delta {
		delta[i] = [2]int{dead, dead}
	}
	for i := 0; i < n; i++ {
		switch word[i] {
		case '0':
			delta[i][0] = i + 1
		case '1':
			delta[i][1] = i + 1
		default:
			return nil, fmt.Errorf("invalid character %q at %d: expected '0' or '1'", word[i], i)
		}
	}
	return NewAutomaton(0, []int{n}, delta), nil
}
