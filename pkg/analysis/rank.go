package analysis

import (
	"cmp"
	"slices"
)

type scored struct {
	key   string
	score float64
}

// topN sorts by score (descending unless asc) and then by key ascending, and returns the first
// n keys.
func topN(items []scored, n int, asc bool) []string {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b scored) int {
		c := cmp.Compare(b.score, a.score)
		if asc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	resp := make([]string, len(sorted))
	for i, s := range sorted {
		resp[i] = s.key
	}
	return resp
}

// frequency counts values in order of first appearance. Empty values are skipped unless
// keepEmpty is set.
func frequency(values []string, keepEmpty bool) []scored {
	index := make(map[string]int)
	var resp []scored
	for _, v := range values {
		if v == "" && !keepEmpty {
			continue
		}
		i, ok := index[v]
		if !ok {
			i = len(resp)
			index[v] = i
			resp = append(resp, scored{key: v})
		}
		resp[i].score++
	}
	return resp
}

// mostFrequent returns the rank-th (0-origin) most frequent non-empty value, or "" if there
// are not enough distinct values.
func mostFrequent(values []string, rank int) string {
	ranked := topN(frequency(values, false), rank+1, false)
	if len(ranked) <= rank {
		return ""
	}
	return ranked[rank]
}
