// Package window implements partitioned, ordered windowed aggregates over
// in-memory row slices: running totals, lag deltas, moving averages, and
// ranks. Every operation is a pure function: callers pass rows already sorted
// by their order key (within each partition for partitioned operations), and
// results are returned positionally aligned with the input.
package window

import "math"

// RunningTotal computes the inclusive prefix sum of value within each
// partition. Rows must be sorted by the order key within partitions;
// partitions themselves may interleave.
func RunningTotal[T any, K comparable](rows []T, partition func(T) K, value func(T) float64) []float64 {
	totals := make(map[K]float64, 8)
	out := make([]float64, len(rows))

	for i, row := range rows {
		k := partition(row)
		totals[k] += value(row)
		out[i] = totals[k]
	}

	return out
}

// LagDelta computes (current - previous) / previous per partition, rounded to
// two decimals. The result is nil for the first row of a partition and when
// the previous value is zero: "no prior comparison" is an absent value, never
// a division error and never a fake zero.
func LagDelta[T any, K comparable](rows []T, partition func(T) K, value func(T) float64) []*float64 {
	prev := make(map[K]float64, 8)
	seen := make(map[K]bool, 8)
	out := make([]*float64, len(rows))

	for i, row := range rows {
		k := partition(row)
		v := value(row)

		if seen[k] && prev[k] != 0 {
			delta := Round2((v - prev[k]) / prev[k])
			out[i] = &delta
		}

		prev[k] = v
		seen[k] = true
	}

	return out
}

// MovingAverage computes the trailing average over a fixed-width window across
// the whole input order (no partitioning). The first size-1 rows average over
// the shorter prefix instead of waiting for a full window. Results are rounded
// to two decimals. Panics if size < 1; a zero-width window is a caller bug.
func MovingAverage[T any](rows []T, value func(T) float64, size int) []float64 {
	if size < 1 {
		panic("window: moving average size must be >= 1")
	}

	out := make([]float64, len(rows))

	var sum float64

	for i, row := range rows {
		sum += value(row)
		if i >= size {
			sum -= value(rows[i-size])
		}

		width := min(i+1, size)
		out[i] = Round2(sum / float64(width))
	}

	return out
}

// Rank ranks rows within each partition by value descending, with SQL RANK()
// tie semantics: equal values share a rank, and the rank after a tie group
// skips by the group size. The top rank is always 1.
func Rank[T any, K comparable](rows []T, partition func(T) K, value func(T) float64) []int {
	groups := make(map[K][]int, 8)
	for i, row := range rows {
		k := partition(row)
		groups[k] = append(groups[k], i)
	}

	out := make([]int, len(rows))

	for _, idxs := range groups {
		for _, i := range idxs {
			rank := 1

			for _, j := range idxs {
				if value(rows[j]) > value(rows[i]) {
					rank++
				}
			}

			out[i] = rank
		}
	}

	return out
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
