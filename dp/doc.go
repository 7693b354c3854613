// Package dp collects classic dynamic-programming and greedy exercises over
// integer slices and strings.
//
// Every function is pure: inputs are read-only, results are returned, and
// "no solution" is reported with a -1 sentinel (MinCoins,
// CanCompleteCircuit) or a false/zero value, never an error, matching the
// convention of the rest of the collection.
//
// Complexity:
//
//	– MinCoins:                      O(len(coins)·amount) time, O(amount) space
//	– LongestIncreasingSubsequence:  O(n log n) time (patience tails), O(n) space
//	– EditDistance:                  O(len(a)·len(b)) time, O(min) space (rolling row)
//	– Knapsack01:                    O(n·capacity) time, O(capacity) space
//	– RegexMatch:                    O(len(s)·len(pattern)) time and space
//	– CanCompleteCircuit:            O(n) time, O(1) space (greedy restart)
//	– ClimbStairs / RobHouses:       O(n) time, O(1) space
package dp
