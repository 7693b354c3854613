package bktree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowfit1980/shadow-ai-sub020/bktree"
	"github.com/shadowfit1980/shadow-ai-sub020/strdist"
)

var corpus = []string{"book", "books", "cake", "boo", "cape", "boon", "cook", "cart"}

func buildTree(t *testing.T) *bktree.Tree {
	t.Helper()
	tree := bktree.NewLevenshtein()
	for _, w := range corpus {
		require.True(t, tree.Add(w))
	}

	return tree
}

func TestNew_NilMetric(t *testing.T) {
	_, err := bktree.New(nil)
	assert.ErrorIs(t, err, bktree.ErrNilMetric)
}

func TestAdd_Duplicate(t *testing.T) {
	tree := buildTree(t)
	assert.False(t, tree.Add("book"))
	assert.Equal(t, len(corpus), tree.Len())
}

func TestSearch_ExactAndNear(t *testing.T) {
	tree := buildTree(t)

	// radius 0 is an exact lookup.
	matches, err := tree.Search("book", 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, bktree.Match{Word: "book", Distance: 0}, matches[0])

	matches, err = tree.Search("book", 1)
	require.NoError(t, err)
	words := make([]string, len(matches))
	for i, m := range matches {
		words[i] = m.Word
	}
	assert.Equal(t, []string{"book", "boo", "books", "boon", "cook"}, words)
}

func TestSearch_NoHits(t *testing.T) {
	tree := buildTree(t)
	matches, err := tree.Search("zzzzzz", 1)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearch_NegativeRadius(t *testing.T) {
	tree := buildTree(t)
	_, err := tree.Search("book", -1)
	assert.ErrorIs(t, err, bktree.ErrNegativeRadius)
}

func TestSearch_EmptyTree(t *testing.T) {
	tree := bktree.NewLevenshtein()
	matches, err := tree.Search("anything", 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// TestSearch_AgainstLinearScan verifies tree pruning returns exactly the
// brute-force result set for several radii.
func TestSearch_AgainstLinearScan(t *testing.T) {
	tree := buildTree(t)
	queries := []string{"bock", "cakes", "art", ""}
	for _, q := range queries {
		for radius := 0; radius <= 3; radius++ {
			matches, err := tree.Search(q, radius)
			require.NoError(t, err)
			got := make(map[string]int, len(matches))
			for _, m := range matches {
				got[m.Word] = m.Distance
			}
			want := make(map[string]int)
			for _, w := range corpus {
				if d := strdist.Levenshtein(q, w); d <= radius {
					want[w] = d
				}
			}
			require.Equalf(t, want, got, "query %q radius %d", q, radius)
		}
	}
}
