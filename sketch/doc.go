// Package sketch provides probabilistic set and similarity structures:
// Bloom and counting Bloom filters, an immutable Xor8 membership filter,
// MinHash signatures for Jaccard similarity, and SimHash fingerprints for
// document similarity.
//
// All structures share one hashing scheme: 64-bit xxHash, re-seeded per
// hash function by mixing an index-derived constant into the input. They
// trade exactness for space the usual way — membership filters never
// produce false negatives but may produce false positives at a rate set by
// their sizing; similarity sketches estimate the true measure with error
// shrinking as signature size grows.
package sketch
