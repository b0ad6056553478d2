package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupNondistinguishable(t *testing.T) {
	// 0 and 1 both go to the accepting sink 2 on either symbol
	a := NewAutomaton(0, []int{2}, [][2]int{{2, 2}, {2, 2}, {2, 2}})

	table := distinguishable(a)
	assert.False(t, table.Test(pairIndex(0, 1)))
	assert.True(t, table.Test(pairIndex(0, 2)))
	assert.True(t, table.Test(pairIndex(1, 2)))

	m := groupNondistinguishable(a)
	assertInvariants(t, m)
	assert.Equal(t, ">0\t1\t1\n1*\t1\t1\n", m.String())
}

func TestMinimize(t *testing.T) {
	t.Run("merges equivalent states", func(t *testing.T) {
		// 3 reaches 0 and 1, which are equivalent
		a := NewAutomaton(3, []int{2}, [][2]int{{2, 2}, {2, 2}, {2, 2}, {0, 1}})
		m := Minimize(a)
		assertInvariants(t, m)
		assert.Equal(t, 3, m.GetNumStates())
		assertSameLanguage(t, a, m, 5)
	})

	t.Run("prunes before grouping", func(t *testing.T) {
		m := Minimize(endsWith01())
		assertInvariants(t, m)
		assert.Equal(t, 3, m.GetNumStates())
		assert.Equal(t, 0, m.Initial())
	})

	t.Run("all accepting", func(t *testing.T) {
		a := NewAutomaton(0, []int{0, 1, 2}, [][2]int{{1, 2}, {2, 0}, {0, 1}})
		m := Minimize(a)
		assertIsomorphic(t, defaultAutomata.MakeAnyString(), m)
	})

	t.Run("none accepting", func(t *testing.T) {
		a := NewAutomaton(0, nil, [][2]int{{1, 2}, {2, 0}, {0, 1}})
		m := Minimize(a)
		assertIsomorphic(t, defaultAutomata.MakeEmpty(), m)
	})

	t.Run("redundant copy of a minimal automaton", func(t *testing.T) {
		// two interleaved copies of the even-zeros automaton
		a := NewAutomaton(0, []int{0, 2}, [][2]int{{1, 2}, {2, 3}, {3, 0}, {0, 1}})
		m := Minimize(a)
		assertIsomorphic(t, RemoveUnreachable(evenZeros()), m)
	})
}

func TestMinimizeRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		n := 1 + rnd.Intn(12)
		delta := make([][2]int, n)
		var accept []int
		for s := range delta {
			delta[s] = [2]int{rnd.Intn(n), rnd.Intn(n)}
			if rnd.Intn(3) == 0 {
				accept = append(accept, s)
			}
		}
		a := NewAutomaton(rnd.Intn(n), accept, delta)

		m := Minimize(a)
		assertInvariants(t, m)
		assert.LessOrEqual(t, m.GetNumStates(), a.GetNumStates())
		assertSameLanguage(t, a, m, 7)
		assertIsomorphic(t, m, Minimize(m))
		assertIsomorphic(t, m, MinimizeBrzozowski(a))
	}
}

func TestUnionFind(t *testing.T) {
	u := newUnionFind(6)
	assert.True(t, u.union(0, 1))
	assert.True(t, u.union(2, 3))
	assert.True(t, u.union(1, 3))
	assert.False(t, u.union(0, 2))

	assert.Equal(t, u.find(0), u.find(3))
	assert.NotEqual(t, u.find(0), u.find(4))
	assert.NotEqual(t, u.find(4), u.find(5))
	assert.Equal(t, 4, u.size[u.find(2)])
}
