package dp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowfit1980/shadow-ai-sub020/dp"
)

func TestMinCoins(t *testing.T) {
	tests := []struct {
		name   string
		coins  []int
		amount int
		want   int
	}{
		{"classic", []int{1, 2, 5}, 11, 3},
		{"exact single coin", []int{1, 2, 5}, 5, 1},
		{"zero amount", []int{1, 2, 5}, 0, 0},
		{"unreachable", []int{2}, 3, -1},
		{"no coins", nil, 7, -1},
		{"negative amount", []int{1}, -4, -1},
		{"ignores bad denominations", []int{0, -3, 4}, 8, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dp.MinCoins(tc.coins, tc.amount))
		})
	}
}

func TestLongestIncreasingSubsequence(t *testing.T) {
	assert.Equal(t, 4, dp.LongestIncreasingSubsequence([]int{10, 9, 2, 5, 3, 7, 101, 18}))
	assert.Equal(t, 1, dp.LongestIncreasingSubsequence([]int{7, 7, 7, 7}))
	assert.Equal(t, 5, dp.LongestIncreasingSubsequence([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 1, dp.LongestIncreasingSubsequence([]int{5, 4, 3, 2, 1}))
	assert.Equal(t, 0, dp.LongestIncreasingSubsequence(nil))
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"horse", "ros", 3},
		{"intention", "execution", 5},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"", "", 0},
		{"kitten", "sitting", 3},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, dp.EditDistance(tc.a, tc.b), "EditDistance(%q, %q)", tc.a, tc.b)
		// Distance is symmetric.
		assert.Equal(t, tc.want, dp.EditDistance(tc.b, tc.a))
	}
}

func TestKnapsack01(t *testing.T) {
	got, err := dp.Knapsack01([]int{1, 3, 4, 5}, []int{1, 4, 5, 7}, 7)
	require.NoError(t, err)
	assert.Equal(t, 9, got) // items of weight 3 and 4

	got, err = dp.Knapsack01(nil, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = dp.Knapsack01([]int{1}, []int{1}, -1)
	assert.ErrorIs(t, err, dp.ErrBadCapacity)

	_, err = dp.Knapsack01([]int{1, 2}, []int{1}, 5)
	assert.ErrorIs(t, err, dp.ErrBadCapacity)
}

func TestRegexMatch(t *testing.T) {
	tests := []struct {
		s, pattern string
		want       bool
	}{
		{"aa", "a", false},
		{"aa", "a*", true},
		{"ab", ".*", true},
		{"aab", "c*a*b", true},
		{"mississippi", "mis*is*p*.", false},
		{"", "", true},
		{"", "a*b*", true},
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"a", "*a", false}, // leading '*' has nothing to repeat
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, dp.RegexMatch(tc.s, tc.pattern), "RegexMatch(%q, %q)", tc.s, tc.pattern)
	}
}

func TestCanCompleteCircuit(t *testing.T) {
	assert.Equal(t, 3, dp.CanCompleteCircuit([]int{1, 2, 3, 4, 5}, []int{3, 4, 5, 1, 2}))
	assert.Equal(t, -1, dp.CanCompleteCircuit([]int{2, 3, 4}, []int{3, 4, 3}))
	assert.Equal(t, 0, dp.CanCompleteCircuit([]int{5}, []int{4}))
	assert.Equal(t, -1, dp.CanCompleteCircuit([]int{1, 2}, []int{1}))
	assert.Equal(t, -1, dp.CanCompleteCircuit(nil, nil))
}

func TestClimbStairs(t *testing.T) {
	want := []int{1, 1, 2, 3, 5, 8, 13}
	for n, w := range want {
		assert.Equalf(t, w, dp.ClimbStairs(n), "ClimbStairs(%d)", n)
	}
	assert.Equal(t, 0, dp.ClimbStairs(-1))
}

func TestRobHouses(t *testing.T) {
	assert.Equal(t, 12, dp.RobHouses([]int{2, 7, 9, 3, 1}))
	assert.Equal(t, 4, dp.RobHouses([]int{1, 2, 3, 1}))
	assert.Equal(t, 0, dp.RobHouses(nil))
	assert.Equal(t, 5, dp.RobHouses([]int{5}))
}
