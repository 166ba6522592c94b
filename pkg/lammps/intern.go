package lammps

// TypeTable interns keys into small positive integers. IDs start at 1 and
// follow first-seen order, which is what makes the emitted type numbering
// reproducible run to run for the same input.
type TypeTable[K comparable] struct {
	ids  map[K]int
	keys []K
}

func NewTypeTable[K comparable]() *TypeTable[K] {
	return &TypeTable[K]{ids: make(map[K]int)}
}

// Assign returns the ID for key, allocating the next one on first sight.
func (t *TypeTable[K]) Assign(key K) int {
	if id, ok := t.ids[key]; ok {
		return id
	}
	t.keys = append(t.keys, key)
	id := len(t.keys)
	t.ids[key] = id
	return id
}

// ID returns the ID for key without allocating.
func (t *TypeTable[K]) ID(key K) (int, bool) {
	id, ok := t.ids[key]
	return id, ok
}

// Len returns the number of interned keys.
func (t *TypeTable[K]) Len() int {
	return len(t.keys)
}

// Keys returns the keys in ID order; key i has ID i+1. The slice is
// shared, not a copy.
func (t *TypeTable[K]) Keys() []K {
	return t.keys
}
