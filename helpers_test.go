package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accepts Walks a from its initial state along word and reports whether it ends in an accept state.
func accepts(a *Automaton, word string) bool {
	s := a.Initial()
	for i := 0; i < len(word); i++ {
		s = a.Step(s, int(word[i]-'0'))
	}
	return a.IsAccept(s)
}

// words Returns every binary word of length at most maxLen.
func words(maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range layer {
			next = append(next, w+"0", w+"1")
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

func reverseWord(w string) string {
	b := []byte(w)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func assertSameLanguage(t *testing.T, want, got *Automaton, maxLen int) {
	t.Helper()
	for _, w := range words(maxLen) {
		assert.Equalf(t, accepts(want, w), accepts(got, w), "word %q", w)
	}
}

// assertIsomorphic Checks that a and b are the same automaton up to a renumbering of states. Both
// automata are expected to have every state reachable.
func assertIsomorphic(t *testing.T, a, b *Automaton) {
	t.Helper()
	require.Equal(t, a.GetNumStates(), b.GetNumStates())

	mp := make(map[int]int)
	mp[a.Initial()] = b.Initial()
	workList := []int{a.Initial()}
	for len(workList) > 0 {
		qa := workList[0]
		workList = workList[1:]
		qb := mp[qa]
		require.Equalf(t, a.IsAccept(qa), b.IsAccept(qb), "accept of %d/%d", qa, qb)
		for label := 0; label < 2; label++ {
			da, db := a.Step(qa, label), b.Step(qb, label)
			if m, ok := mp[da]; ok {
				require.Equalf(t, m, db, "edge %d --%d-->", qa, label)
				continue
			}
			mp[da] = db
			workList = append(workList, da)
		}
	}
	assert.Len(t, mp, a.GetNumStates())
}

// assertInvariants Checks totality, the predecessor index and the initial/accept ranges.
func assertInvariants(t *testing.T, a *Automaton) {
	t.Helper()
	n := a.GetNumStates()
	require.Greater(t, n, 0)
	assert.True(t, a.Initial() >= 0 && a.Initial() < n)

	counts := [2]map[int]int{{}, {}}
	for q := range a.States() {
		for label := 0; label < 2; label++ {
			dest := a.Step(q, label)
			require.Truef(t, dest >= 0 && dest < n, "transition %d --%d--> %d", q, label, dest)
			assert.Contains(t, a.Predecessors(dest, label), q)
			counts[label][dest]++
		}
	}
	for q := range a.States() {
		for label := 0; label < 2; label++ {
			assert.Len(t, a.Predecessors(q, label), counts[label][q])
		}
	}
	for _, q := range a.AcceptStates() {
		assert.True(t, q >= 0 && q < n)
	}
}
