// Package mst computes minimum spanning trees with Kruskal's algorithm
// over a plain edge list, using a disjoint-set (union-find) structure with
// path compression and union by rank.
//
// Steps:
//  1. Validate: n > 0 and every edge endpoint in [0, n).
//  2. n == 1 → trivial MST (no edges, weight 0).
//  3. Drop self-loops; they can never join two components.
//  4. Sort edges by ascending weight (stable, so equal weights keep input
//     order and results are deterministic).
//  5. Scan edges, uniting components and keeping each edge that joins two.
//  6. Fewer than n-1 kept edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
package mst

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoVertices indicates n <= 0; there is nothing to span.
	ErrNoVertices = errors.New("mst: vertex count must be positive")
	// ErrBadEndpoint indicates an edge endpoint outside [0, n).
	ErrBadEndpoint = errors.New("mst: edge endpoint out of range")
	// ErrDisconnected indicates no spanning tree exists.
	ErrDisconnected = errors.New("mst: graph is not connected")
)

// Edge is an undirected weighted edge between vertex indexes U and V.
type Edge struct {
	U, V   int
	Weight int64
}

// Kruskal returns the MST edges of the undirected graph with n vertices
// and the given edge list, plus the total weight.
func Kruskal(n int, edges []Edge) ([]Edge, int64, error) {
	if n <= 0 {
		return nil, 0, ErrNoVertices
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, 0, fmt.Errorf("%w: edge %d–%d with n=%d", ErrBadEndpoint, e.U, e.V, n)
		}
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// Self-loops cannot be part of a spanning tree.
	candidates := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U != e.V {
			candidates = append(candidates, e)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	ds := NewDisjointSet(n)
	mst := make([]Edge, 0, n-1)
	var total int64
	for _, e := range candidates {
		if !ds.Union(e.U, e.V) {
			continue // endpoints already connected
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
