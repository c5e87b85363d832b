package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerlens/internal/window"
)

type row struct {
	part  string
	value float64
}

func part(r row) string   { return r.part }
func value(r row) float64 { return r.value }

func sum(rows []row) float64 {
	var total float64
	for _, r := range rows {
		total += r.value
	}

	return total
}

func TestRunningTotal(t *testing.T) {
	rows := []row{
		{"2023", 10}, {"2023", 25.5}, {"2023", -5},
		{"2024", 100}, {"2024", 1},
	}

	got := window.RunningTotal(rows, part, value)
	assert.Equal(t, []float64{10, 35.5, 30.5, 100, 101}, got)
}

func TestRunningTotal_LastRowEqualsPartitionSum(t *testing.T) {
	rows := []row{
		{"a", 3}, {"a", 4}, {"a", 5},
		{"b", -1}, {"b", 1},
	}

	got := window.RunningTotal(rows, part, value)

	// Last row of each partition carries the partition's full sum.
	assert.Equal(t, sum(rows[:3]), got[2])
	assert.Equal(t, sum(rows[3:]), got[4])
}

func TestRunningTotal_Empty(t *testing.T) {
	got := window.RunningTotal(nil, part, value)
	assert.Empty(t, got)
}

func TestRunningTotal_InterleavedPartitions(t *testing.T) {
	// Partitions need not be contiguous, only ordered within themselves.
	rows := []row{{"a", 1}, {"b", 10}, {"a", 2}, {"b", 20}}

	got := window.RunningTotal(rows, part, value)
	assert.Equal(t, []float64{1, 10, 3, 30}, got)
}

func TestLagDelta(t *testing.T) {
	rows := []row{
		{"x", 100}, {"x", 150}, {"x", 120},
	}

	got := window.LagDelta(rows, part, value)
	require.Len(t, got, 3)

	assert.Nil(t, got[0], "first row of a partition has no prior comparison")
	require.NotNil(t, got[1])
	assert.InDelta(t, 0.5, *got[1], 1e-9)
	require.NotNil(t, got[2])
	assert.InDelta(t, -0.2, *got[2], 1e-9)
}

func TestLagDelta_ZeroPrevious(t *testing.T) {
	rows := []row{{"x", 0}, {"x", 50}, {"x", 100}}

	got := window.LagDelta(rows, part, value)

	assert.Nil(t, got[0])
	assert.Nil(t, got[1], "division by a zero previous value yields absent, not an error")
	require.NotNil(t, got[2])
	assert.InDelta(t, 1.0, *got[2], 1e-9)
}

func TestLagDelta_Rounding(t *testing.T) {
	rows := []row{{"x", 3}, {"x", 4}}

	got := window.LagDelta(rows, part, value)
	require.NotNil(t, got[1])
	assert.Equal(t, 0.33, *got[1])
}

func TestLagDelta_PartitionBoundary(t *testing.T) {
	rows := []row{{"2023", 10}, {"2023", 20}, {"2024", 99}}

	got := window.LagDelta(rows, part, value)

	assert.NotNil(t, got[1])
	assert.Nil(t, got[2], "a new partition starts without a prior value")
}

func TestMovingAverage(t *testing.T) {
	rows := []row{
		{value: 7}, {value: 14}, {value: 0}, {value: 21},
		{value: 7}, {value: 7}, {value: 7}, {value: 70},
	}

	got := window.MovingAverage(rows, value, 7)
	require.Len(t, got, 8)

	// Short window over the prefix for the first size-1 rows.
	assert.Equal(t, 7.0, got[0])
	assert.Equal(t, 10.5, got[1])
	assert.Equal(t, 7.0, got[2])
	assert.Equal(t, 10.5, got[3])

	// Full window from row 6 (0-indexed) on.
	assert.Equal(t, 9.0, got[6])  // mean of rows 0..6
	assert.Equal(t, 18.0, got[7]) // mean of rows 1..7
}

func TestMovingAverage_WindowOne(t *testing.T) {
	rows := []row{{value: 5}, {value: 9}}

	got := window.MovingAverage(rows, value, 1)
	assert.Equal(t, []float64{5, 9}, got)
}

func TestMovingAverage_Empty(t *testing.T) {
	got := window.MovingAverage(nil, value, 7)
	assert.Empty(t, got)
}

func TestMovingAverage_Rounding(t *testing.T) {
	rows := []row{{value: 1}, {value: 1}, {value: 2}}

	got := window.MovingAverage(rows, value, 3)
	assert.Equal(t, 1.33, got[2])
}

func TestRank(t *testing.T) {
	rows := []row{
		{"2023-01", 300}, {"2023-01", 500}, {"2023-01", 100},
		{"2023-02", 50},
	}

	got := window.Rank(rows, part, value)
	assert.Equal(t, []int{2, 1, 3, 1}, got)
}

func TestRank_TiesShareRankAndSkip(t *testing.T) {
	rows := []row{
		{"m", 500}, {"m", 500}, {"m", 300}, {"m", 300}, {"m", 100},
	}

	got := window.Rank(rows, part, value)

	// RANK() semantics: ties share, the next rank skips by the tie-group size.
	assert.Equal(t, []int{1, 1, 3, 3, 5}, got)
}

func TestRank_GreaterValueHasStrictlySmallerRank(t *testing.T) {
	rows := []row{{"m", 4}, {"m", 8}, {"m", 2}, {"m", 6}}

	got := window.Rank(rows, part, value)

	for i := range rows {
		for j := range rows {
			if rows[i].value > rows[j].value {
				assert.Less(t, got[i], got[j])
			}
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	rows := []row{{"m", 1}, {"m", 2}, {"n", 2}, {"n", 1}}

	first := window.Rank(rows, part, value)
	second := window.Rank(rows, part, value)
	assert.Equal(t, first, second)
}

func TestOperations_NoStateLeakAcrossCalls(t *testing.T) {
	rows := []row{{"a", 1}, {"a", 2}}

	rt1 := window.RunningTotal(rows, part, value)
	rt2 := window.RunningTotal(rows, part, value)
	assert.Equal(t, rt1, rt2)

	ld1 := window.LagDelta(rows, part, value)
	ld2 := window.LagDelta(rows, part, value)
	assert.Equal(t, ld1, ld2)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.33, window.Round2(1.0/3.0))
	assert.Equal(t, -0.67, window.Round2(-2.0/3.0))
	assert.Equal(t, 2.0, window.Round2(1.999))
}
