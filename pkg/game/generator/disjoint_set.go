package generator

// DisjointSet is a union-find over arena indices.
// Union is asymmetric and unranked: the first argument's root is attached
// under the second's. Find halves paths as it walks.
type DisjointSet struct {
	parent []int
}

// NewDisjointSet creates n singleton classes, one per index
func NewDisjointSet(n int) *DisjointSet {
	s := &DisjointSet{parent: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

// Find returns the representative of i's class
func (s *DisjointSet) Find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

// Union points the root of a at the root of b. Returns false if they were already joined.
func (s *DisjointSet) Union(a, b int) bool {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return false
	}
	s.parent[ra] = rb
	return true
}

// Connected reports whether a and b share a class
func (s *DisjointSet) Connected(a, b int) bool {
	return s.Find(a) == s.Find(b)
}

// Len returns the number of indices in the set
func (s *DisjointSet) Len() int {
	return len(s.parent)
}
