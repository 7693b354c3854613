// Package cutpoints finds articulation points and biconnected components
// of an undirected graph given as an index-based adjacency list, and
// assembles them into a block-cut tree.
//
// An articulation point (cut vertex) is a vertex whose removal increases
// the number of connected components. A block is a maximal biconnected
// subgraph; every edge belongs to exactly one block. The block-cut tree
// has one node per block and one per cut vertex, with a cut vertex linked
// to every block containing it.
//
// The traversal is a single low-link DFS over an explicit frame stack:
// O(V + E) time, O(V + E) space, no recursion.
package cutpoints

import (
	"errors"
	"fmt"
	"sort"
)

// ErrBadNeighbor is returned when an adjacency entry references a vertex
// index outside [0, len(adj)).
var ErrBadNeighbor = errors.New("cutpoints: neighbor index out of range")

// Tree is a block-cut tree. Node indexes 0..len(Blocks)-1 are blocks;
// node index len(Blocks)+i is the i-th cut vertex (Cuts[i]).
type Tree struct {
	// Blocks lists each biconnected component as a sorted vertex set.
	Blocks [][]int
	// Cuts lists the articulation points in ascending order.
	Cuts []int
	// Adj is the tree adjacency over the combined node indexing.
	Adj [][]int
}

// walker carries the shared low-link DFS state.
type walker struct {
	adj       [][]int
	disc      []int // discovery time, -1 = unvisited
	low       []int
	isCut     []bool
	edgeStack [][2]int // edges of the active blocks
	rawBlocks [][][2]int
	time      int
}

type frame struct {
	v, parent, ei int
	children      int
}

// Points returns the articulation points of the graph in ascending order.
func Points(adj [][]int) ([]int, error) {
	w, err := analyze(adj)
	if err != nil {
		return nil, err
	}
	var cuts []int
	for v, is := range w.isCut {
		if is {
			cuts = append(cuts, v)
		}
	}

	return cuts, nil
}

// BlockCutTree returns the block-cut tree of the graph.
func BlockCutTree(adj [][]int) (*Tree, error) {
	w, err := analyze(adj)
	if err != nil {
		return nil, err
	}

	t := &Tree{}
	for v, is := range w.isCut {
		if is {
			t.Cuts = append(t.Cuts, v)
		}
	}
	cutNode := make(map[int]int, len(t.Cuts))
	for i, v := range t.Cuts {
		cutNode[v] = i // offset by len(Blocks) later
	}

	// Materialize each block's vertex set from its edge list.
	for _, edges := range w.rawBlocks {
		set := make(map[int]bool)
		for _, e := range edges {
			set[e[0]] = true
			set[e[1]] = true
		}
		verts := make([]int, 0, len(set))
		for v := range set {
			verts = append(verts, v)
		}
		sort.Ints(verts)
		t.Blocks = append(t.Blocks, verts)
	}

	// Isolated vertices form single-vertex blocks with no edges.
	inBlock := make([]bool, len(adj))
	for _, b := range t.Blocks {
		for _, v := range b {
			inBlock[v] = true
		}
	}
	for v := range adj {
		if !inBlock[v] {
			t.Blocks = append(t.Blocks, []int{v})
		}
	}

	t.Adj = make([][]int, len(t.Blocks)+len(t.Cuts))
	for bi, b := range t.Blocks {
		for _, v := range b {
			if ci, ok := cutNode[v]; ok {
				cn := len(t.Blocks) + ci
				t.Adj[bi] = append(t.Adj[bi], cn)
				t.Adj[cn] = append(t.Adj[cn], bi)
			}
		}
	}

	return t, nil
}

// analyze runs the iterative low-link DFS over every component.
func analyze(adj [][]int) (*walker, error) {
	n := len(adj)
	w := &walker{
		adj:   adj,
		disc:  make([]int, n),
		low:   make([]int, n),
		isCut: make([]bool, n),
	}
	for i := range w.disc {
		w.disc[i] = -1
	}
	for v := 0; v < n; v++ {
		if w.disc[v] == -1 {
			if err := w.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}

func (w *walker) visit(root int) error {
	frames := []frame{{v: root, parent: -1}}
	w.discover(root)

	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		v := f.v

		if f.ei < len(w.adj[v]) {
			u := w.adj[v][f.ei]
			f.ei++
			if u < 0 || u >= len(w.adj) {
				return fmt.Errorf("%w: vertex %d lists neighbor %d", ErrBadNeighbor, v, u)
			}
			switch {
			case w.disc[u] == -1:
				f.children++
				w.edgeStack = append(w.edgeStack, [2]int{v, u})
				w.discover(u)
				frames = append(frames, frame{v: u, parent: v})
			case u != f.parent && w.disc[u] < w.disc[v]:
				// Back edge to an ancestor; also opens a potential block.
				w.edgeStack = append(w.edgeStack, [2]int{v, u})
				if w.disc[u] < w.low[v] {
					w.low[v] = w.disc[u]
				}
			}

			continue
		}

		// v is fully explored: fold into the parent and close blocks.
		frames = frames[:len(frames)-1]
		if len(frames) == 0 {
			// Root: articulation iff it has 2+ DFS children.
			w.isCut[v] = f.children >= 2
			continue
		}
		p := frames[len(frames)-1].v
		if w.low[v] < w.low[p] {
			w.low[p] = w.low[v]
		}
		if w.low[v] >= w.disc[p] {
			// p separates v's subtree. A non-root p is a cut vertex; the
			// root case is settled by its child count when its frame pops.
			if frames[len(frames)-1].parent != -1 {
				w.isCut[p] = true
			}
			var block [][2]int
			for len(w.edgeStack) > 0 {
				e := w.edgeStack[len(w.edgeStack)-1]
				w.edgeStack = w.edgeStack[:len(w.edgeStack)-1]
				block = append(block, e)
				if e[0] == p && e[1] == v {
					break
				}
			}
			if len(block) > 0 {
				w.rawBlocks = append(w.rawBlocks, block)
			}
		}
	}

	return nil
}

func (w *walker) discover(v int) {
	w.disc[v] = w.time
	w.low[v] = w.time
	w.time++
}
