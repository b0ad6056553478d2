package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// IntSet A set of states that can key a HashMap.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet An immutable, sorted set of states. The determinizer uses it as the identity of a
// subset-construction state.
type FrozenIntSet struct {
	values   []int
	hashCode uint64
}

// NewFrozenIntSet Freezes values, which must be sorted ascending and free of duplicates.
func NewFrozenIntSet(values []int) *FrozenIntSet {
	hashCode := uint64(len(values))
	for _, v := range values {
		hashCode = hashCode*31 + uint64(uint32(mix32(v)))
	}
	return &FrozenIntSet{values: values, hashCode: hashCode}
}

// freezeBitSet Collects the set bits of b into a FrozenIntSet.
func freezeBitSet(b *bitset.BitSet) *FrozenIntSet {
	values := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return NewFrozenIntSet(values)
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenIntSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}
