// Package textsearch provides Knuth–Morris–Pratt substring search.
//
// The prefix table is precomputed once per pattern, so scanning never backs
// up in the text: O(len(pattern)) preprocessing, O(len(text)) search.
// Absence is reported with the -1 sentinel, matching strings.Index.
package textsearch

// PrefixTable returns the KMP failure function of pattern: table[i] is the
// length of the longest proper prefix of pattern[:i+1] that is also a
// suffix of it.
func PrefixTable(pattern string) []int {
	table := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = table[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		table[i] = k
	}

	return table
}

// Index returns the byte offset of the first occurrence of pattern in text,
// or -1 if pattern is absent. An empty pattern matches at offset 0.
func Index(text, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}
	if len(pattern) > len(text) {
		return -1
	}
	table := PrefixTable(pattern)
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = table[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			return i - len(pattern) + 1
		}
	}

	return -1
}

// IndexAll returns the byte offsets of every (possibly overlapping)
// occurrence of pattern in text. An empty pattern yields no offsets.
func IndexAll(text, pattern string) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}
	table := PrefixTable(pattern)
	var offsets []int
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = table[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			offsets = append(offsets, i-len(pattern)+1)
			// Continue from the longest border to catch overlaps.
			k = table[k-1]
		}
	}

	return offsets
}
