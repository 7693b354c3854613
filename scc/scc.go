// Package scc computes strongly connected components of a directed graph
// given as an index-based adjacency list.
//
// The implementation is Tarjan's single-pass algorithm driven by an
// explicit frame stack, so component discovery never recurses and input
// depth is bounded only by heap memory.
//
// Complexity: O(V + E) time, O(V) space beyond the input.
//
// Components are emitted in reverse topological order of the condensation
// (a Tarjan property): every edge between distinct components points from a
// later-emitted component to an earlier one.
package scc

import (
	"errors"
	"fmt"
)

// ErrBadNeighbor is returned when an adjacency entry references a vertex
// index outside [0, len(adj)).
var ErrBadNeighbor = errors.New("scc: neighbor index out of range")

// tarjan carries the mutable traversal state.
type tarjan struct {
	adj     [][]int
	index   []int // discovery order, -1 = unvisited
	lowlink []int
	onStack []bool
	stack   []int // Tarjan's component stack
	next    int   // next discovery index
	comps   [][]int
}

// frame is one explicit-DFS activation record: vertex v, with edge cursor
// ei into adj[v].
type frame struct {
	v, ei int
}

// Strong returns the strongly connected components of the graph whose
// vertex i has out-neighbors adj[i]. Vertices are 0..len(adj)-1; an empty
// graph yields no components.
func Strong(adj [][]int) ([][]int, error) {
	n := len(adj)
	t := &tarjan{
		adj:     adj,
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for v := 0; v < n; v++ {
		if t.index[v] == -1 {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return t.comps, nil
}

// visit runs the iterative Tarjan walk from root.
func (t *tarjan) visit(root int) error {
	frames := []frame{{v: root}}
	t.discover(root)

	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		v := f.v

		if f.ei < len(t.adj[v]) {
			w := t.adj[v][f.ei]
			f.ei++
			if w < 0 || w >= len(t.adj) {
				return fmt.Errorf("%w: vertex %d lists neighbor %d", ErrBadNeighbor, v, w)
			}
			switch {
			case t.index[w] == -1:
				// Tree edge: push the child activation.
				t.discover(w)
				frames = append(frames, frame{v: w})
			case t.onStack[w]:
				// Back or cross edge into the current component stack.
				if t.index[w] < t.lowlink[v] {
					t.lowlink[v] = t.index[w]
				}
			}

			continue
		}

		// All edges of v explored: pop the activation, fold lowlink into
		// the parent, and emit a component if v is its root.
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			p := frames[len(frames)-1].v
			if t.lowlink[v] < t.lowlink[p] {
				t.lowlink[p] = t.lowlink[v]
			}
		}
		if t.lowlink[v] == t.index[v] {
			var comp []int
			for {
				w := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				t.onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			t.comps = append(t.comps, comp)
		}
	}

	return nil
}

// discover assigns the next index to v and pushes it on the component stack.
func (t *tarjan) discover(v int) {
	t.index[v] = t.next
	t.lowlink[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true
}

// Condense returns the components of adj plus the condensation DAG:
// comp[i] lists the vertices of component i, and dag[i] lists the distinct
// component indexes reachable from component i by a single original edge.
func Condense(adj [][]int) (comps [][]int, dag [][]int, err error) {
	comps, err = Strong(adj)
	if err != nil {
		return nil, nil, err
	}

	whichComp := make([]int, len(adj))
	for ci, comp := range comps {
		for _, v := range comp {
			whichComp[v] = ci
		}
	}

	dag = make([][]int, len(comps))
	seen := make(map[[2]int]bool)
	for v, neighbors := range adj {
		for _, w := range neighbors {
			cv, cw := whichComp[v], whichComp[w]
			if cv == cw || seen[[2]int{cv, cw}] {
				continue
			}
			seen[[2]int{cv, cw}] = true
			dag[cv] = append(dag[cv], cw)
		}
	}

	return comps, dag, nil
}
