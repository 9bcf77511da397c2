package align

// Index maps source positions to target positions and back. Both directions
// are partial. When several pairs share an endpoint the last pair in input
// order wins for that endpoint.
type Index struct {
	forward map[int]int
	reverse map[int]int
}

// NewIndex builds the forward and reverse mappings of a.
func NewIndex(a Alignment) *Index {
	idx := &Index{
		forward: make(map[int]int, len(a)),
		reverse: make(map[int]int, len(a)),
	}

	for _, p := range a {
		idx.forward[p.Source] = p.Target
		idx.reverse[p.Target] = p.Source
	}

	return idx
}

// Forward returns the target position aligned to source position src.
func (idx *Index) Forward(src int) (int, bool) {
	tgt, ok := idx.forward[src]
	return tgt, ok
}

// Reverse returns the source position aligned to target position tgt.
func (idx *Index) Reverse(tgt int) (int, bool) {
	src, ok := idx.reverse[tgt]
	return src, ok
}

// Len returns the number of distinct source positions with a mapping.
func (idx *Index) Len() int {
	return len(idx.forward)
}
