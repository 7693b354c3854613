// Package shadowai is a flat collection of independent algorithm and
// data-structure utilities: classic exercises, small generic containers,
// probabilistic sketches, and a few in-process coordination components.
//
// Each subpackage is self-contained and owns only its local state; there
// is no shared runtime, no singletons, and no cross-package coupling
// beyond the shared string-metric kit.
//
//	sorting/    — comparison & integer sorts, binary-search bounds
//	dp/         — coin change, LIS, knapsack, regex match, circuit greedy
//	scc/        — Tarjan strongly connected components (iterative)
//	cutpoints/  — articulation points & block-cut tree
//	mst/        — Kruskal over edge lists + exported DisjointSet
//	bimap/      — one-to-one bidirectional map
//	ringbuf/    — fixed-capacity FIFO ring buffer
//	segtree/    — generic segment tree (point update, range query)
//	trie/       — byte-wise prefix tree
//	bktree/     — BK-tree for approximate matching by discrete metric
//	skiplist/   — ordered map on a probabilistic skip list
//	sketch/     — Bloom / counting Bloom, Xor8, MinHash, SimHash
//	strdist/    — Levenshtein & Hamming distances
//	roman/      — Roman numeral encode/decode
//	bwt/        — Burrows–Wheeler transform and inverse
//	textsearch/ — Knuth–Morris–Pratt substring search
//	bintree/    — index-based binary-tree exercises, all iterative
//	pubsub/     — topic publish/subscribe with FIFO buffers
//	cmdbus/     — command bus with middleware chain
//	lockmgr/    — named FIFO locks with ownership tokens
//	pool/       — bounded generic resource pool
//
// Pure algorithms are plain functions; stateful structures are freely
// instantiable values returned by New* constructors. Absence and
// not-applicable results use sentinel values (-1, false) or
// package-prefixed sentinel errors.
package shadowai
