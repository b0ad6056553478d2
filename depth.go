package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// DepthLayers Records, for each k below a bound, the states reachable from the initial state after
// exactly k transitions. A state may appear in several layers when it lies on a cycle; layers are
// not first-visit distances.
type DepthLayers struct {
	layers [][]int
}

// NewDepthLayers Computes layers 0 .. depth-1 of a.
func NewDepthLayers(a *Automaton, depth int) *DepthLayers {
	if depth < 0 {
		panic(fmt.Sprintf("depth layers: negative depth %d", depth))
	}

	n := uint(a.GetNumStates())
	current := bitset.New(n)
	next := bitset.New(n)
	current.Set(uint(a.Initial()))

	layers := make([][]int, 0, depth)
	for i := 0; i < depth; i++ {
		layer := make([]int, 0, current.Count())
		for s, ok := current.NextSet(0); ok; s, ok = current.NextSet(s + 1) {
			layer = append(layer, int(s))
			next.Set(uint(a.Step(int(s), 0)))
			next.Set(uint(a.Step(int(s), 1)))
		}
		layers = append(layers, layer)

		current, next = next, current
		next.ClearAll()
	}
	return &DepthLayers{layers: layers}
}

// Depth Returns the number of prepared layers.
func (d *DepthLayers) Depth() int {
	return len(d.layers)
}

// StatesAtDepth Returns the states reachable in exactly k steps, ascending. k must be below Depth().
func (d *DepthLayers) StatesAtDepth(k int) []int {
	if k < 0 || k >= len(d.layers) {
		panic(fmt.Sprintf("depth layers: depth %d not prepared (have %d)", k, len(d.layers)))
	}
	return d.layers[k]
}
