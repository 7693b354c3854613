package mst

// DisjointSet is a union-find structure over vertex indexes 0..n-1 with
// iterative path compression and union by rank.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// Find returns the representative of x's set.
func (ds *DisjointSet) Find(x int) int {
	// Walk up, pointing each visited node at its grandparent (halving).
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// Union merges the sets of x and y, reporting whether they were disjoint.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper root.
	if ds.rank[rx] < ds.rank[ry] {
		rx, ry = ry, rx
	}
	ds.parent[ry] = rx
	if ds.rank[rx] == ds.rank[ry] {
		ds.rank[rx]++
	}
	ds.count--

	return true
}

// Connected reports whether x and y share a set.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.count }
