package cutpoints_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowfit1980/shadow-ai-sub020/cutpoints"
)

// undirected builds a symmetric adjacency list from edge pairs.
func undirected(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	return adj
}

func TestPoints_Path(t *testing.T) {
	// 0-1-2-3: both interior vertices are cut vertices.
	adj := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	cuts, err := cutpoints.Points(adj)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, cuts)
}

func TestPoints_Cycle(t *testing.T) {
	// A cycle is biconnected: no cut vertices.
	adj := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	cuts, err := cutpoints.Points(adj)
	require.NoError(t, err)
	assert.Empty(t, cuts)
}

func TestPoints_Bowtie(t *testing.T) {
	// Two triangles sharing vertex 2: only 2 is a cut vertex.
	adj := undirected(5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}})
	cuts, err := cutpoints.Points(adj)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, cuts)
}

func TestPoints_StarRoot(t *testing.T) {
	// Star centered at 0: the DFS root itself is the cut vertex.
	adj := undirected(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	cuts, err := cutpoints.Points(adj)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, cuts)
}

func TestPoints_EmptyAndSingle(t *testing.T) {
	cuts, err := cutpoints.Points(nil)
	require.NoError(t, err)
	assert.Empty(t, cuts)

	cuts, err = cutpoints.Points([][]int{nil})
	require.NoError(t, err)
	assert.Empty(t, cuts)
}

func TestPoints_Disconnected(t *testing.T) {
	// Path 0-1-2 plus isolated edge 3-4 plus isolated vertex 5.
	adj := undirected(6, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	cuts, err := cutpoints.Points(adj)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, cuts)
}

func TestPoints_BadNeighbor(t *testing.T) {
	_, err := cutpoints.Points([][]int{{7}})
	assert.ErrorIs(t, err, cutpoints.ErrBadNeighbor)
}

func TestBlockCutTree_Bowtie(t *testing.T) {
	adj := undirected(5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}})
	tree, err := cutpoints.BlockCutTree(adj)
	require.NoError(t, err)

	require.Equal(t, []int{2}, tree.Cuts)
	blocks := append([][]int(nil), tree.Blocks...)
	sort.Slice(blocks, func(a, b int) bool { return blocks[a][0] < blocks[b][0] })
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3, 4}}, blocks)

	// The cut vertex node links to both blocks.
	cutNode := len(tree.Blocks)
	assert.Len(t, tree.Adj[cutNode], 2)
	for bi := range tree.Blocks {
		assert.Equal(t, []int{cutNode}, tree.Adj[bi])
	}
}

func TestBlockCutTree_BridgeEdge(t *testing.T) {
	// Triangle {0,1,2} + bridge 2-3: blocks {0,1,2} and {2,3}, cut vertex 2.
	adj := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	tree, err := cutpoints.BlockCutTree(adj)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, tree.Cuts)
	require.Len(t, tree.Blocks, 2)
	sizes := []int{len(tree.Blocks[0]), len(tree.Blocks[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 3}, sizes)
}

func TestBlockCutTree_IsolatedVertex(t *testing.T) {
	tree, err := cutpoints.BlockCutTree([][]int{nil, nil})
	require.NoError(t, err)
	assert.Empty(t, tree.Cuts)
	assert.Equal(t, [][]int{{0}, {1}}, tree.Blocks)
	assert.Empty(t, tree.Adj[0])
	assert.Empty(t, tree.Adj[1])
}
