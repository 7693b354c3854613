package dp

import (
	"errors"
	"math"

	"github.com/shadowfit1980/shadow-ai-sub020/strdist"
)

// ErrBadCapacity is returned by Knapsack01 for a negative capacity or for
// weight/value slices of differing length.
var ErrBadCapacity = errors.New("dp: knapsack capacity must be non-negative and weights/values must align")

// MinCoins returns the minimum number of coins from coins (unlimited supply
// of each denomination) summing exactly to amount, or -1 if amount cannot
// be formed. Non-positive denominations are ignored.
func MinCoins(coins []int, amount int) int {
	if amount < 0 {
		return -1
	}
	if amount == 0 {
		return 0
	}

	// best[a] = fewest coins forming a; MaxInt marks "unreachable".
	best := make([]int, amount+1)
	for a := 1; a <= amount; a++ {
		best[a] = math.MaxInt
	}
	for a := 1; a <= amount; a++ {
		for _, c := range coins {
			if c <= 0 || c > a || best[a-c] == math.MaxInt {
				continue
			}
			if best[a-c]+1 < best[a] {
				best[a] = best[a-c] + 1
			}
		}
	}
	if best[amount] == math.MaxInt {
		return -1
	}

	return best[amount]
}

// LongestIncreasingSubsequence returns the length of the longest strictly
// increasing subsequence of nums using the patience-sorting tails array:
// tails[k] holds the smallest possible tail of an increasing subsequence of
// length k+1, so tails stays sorted and each element binary-searches its
// slot.
func LongestIncreasingSubsequence(nums []int) int {
	tails := make([]int, 0, len(nums))
	for _, v := range nums {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := lo + (hi-lo)/2
			if tails[mid] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo == len(tails) {
			tails = append(tails, v)
		} else {
			tails[lo] = v
		}
	}

	return len(tails)
}

// EditDistance returns the Levenshtein distance between a and b. The table
// computation lives in strdist so the metric kit and the DP exercise share
// one implementation.
func EditDistance(a, b string) int {
	return strdist.Levenshtein(a, b)
}

// Knapsack01 returns the maximum total value achievable by selecting items
// (each at most once) whose weights sum to at most capacity.
func Knapsack01(weights, values []int, capacity int) (int, error) {
	if capacity < 0 || len(weights) != len(values) {
		return 0, ErrBadCapacity
	}
	best := make([]int, capacity+1)
	for i, w := range weights {
		if w < 0 {
			return 0, ErrBadCapacity
		}
		// Descending capacity sweep so each item is taken at most once.
		for c := capacity; c >= w; c-- {
			if best[c-w]+values[i] > best[c] {
				best[c] = best[c-w] + values[i]
			}
		}
	}

	return best[capacity], nil
}

// RegexMatch reports whether s fully matches pattern, where '.' matches any
// single byte and '*' matches zero or more of the preceding element.
//
// match[i][j] == true means s[:i] matches pattern[:j].
func RegexMatch(s, pattern string) bool {
	n, m := len(s), len(pattern)
	match := make([][]bool, n+1)
	for i := range match {
		match[i] = make([]bool, m+1)
	}
	match[0][0] = true

	// Empty string vs patterns like "a*", "a*b*": a starred element may
	// collapse to nothing.
	for j := 2; j <= m; j++ {
		if pattern[j-1] == '*' {
			match[0][j] = match[0][j-2]
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			p := pattern[j-1]
			switch {
			case p == '*':
				if j < 2 {
					// A leading '*' has no preceding element; unmatched.
					continue
				}
				// Zero occurrences of the starred element...
				match[i][j] = match[i][j-2]
				// ...or one more occurrence, if it matches s[i-1].
				prev := pattern[j-2]
				if prev == '.' || prev == s[i-1] {
					match[i][j] = match[i][j] || match[i-1][j]
				}
			case p == '.' || p == s[i-1]:
				match[i][j] = match[i-1][j-1]
			}
		}
	}

	return match[n][m]
}

// CanCompleteCircuit returns the index of the unique gas station from which
// the full circuit can be driven (tank starts empty, station i adds gas[i],
// the leg to the next station burns cost[i]), or -1 when total gas cannot
// cover total cost. Greedy restart: whenever the running tank drops below
// zero, no station in the failed stretch can be the answer, so the
// candidate start jumps past it.
func CanCompleteCircuit(gas, cost []int) int {
	if len(gas) != len(cost) || len(gas) == 0 {
		return -1
	}
	total, tank, start := 0, 0, 0
	for i := range gas {
		delta := gas[i] - cost[i]
		total += delta
		tank += delta
		if tank < 0 {
			start = i + 1
			tank = 0
		}
	}
	if total < 0 {
		return -1
	}

	return start
}

// ClimbStairs returns the number of distinct ways to climb n steps taking 1
// or 2 at a time. ClimbStairs(0) == 1 (the empty climb).
func ClimbStairs(n int) int {
	if n < 0 {
		return 0
	}
	a, b := 1, 1 // ways for i-2, i-1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b
}

// RobHouses returns the maximum sum selectable from nums with no two
// adjacent elements chosen.
func RobHouses(nums []int) int {
	skip, take := 0, 0
	for _, v := range nums {
		skip, take = max(skip, take), skip+v
	}

	return max(skip, take)
}
