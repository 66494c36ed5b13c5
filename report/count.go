package report

import (
	"sort"

	"github.com/bitmark-inc/commerce-survey/schema"
)

// Count is the number of occurrences of one label.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SplitMultiValued flattens joined multi-select cells into single labels.
// Blank cells contribute nothing.
func SplitMultiValued(values []string) []string {
	labels := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		labels = append(labels, schema.SplitSelection(v)...)
	}
	return labels
}

// CountFrequency counts every distinct non-empty value. The result is sorted
// by count, descending, and ties keep the order of first appearance.
func CountFrequency(values []string) []Count {
	index := map[string]int{}
	counts := []Count{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, Count{Label: v, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// CountOrdered counts the values that belong to order and emits them in that
// order. Values outside order are ignored and labels never observed are
// omitted.
func CountOrdered(values []string, order []string) []Count {
	observed := map[string]int{}
	for _, v := range values {
		observed[v]++
	}

	counts := []Count{}
	for _, label := range order {
		if n := observed[label]; n > 0 {
			counts = append(counts, Count{Label: label, Count: n})
		}
	}
	return counts
}

// TotalCount sums the counts.
func TotalCount(counts []Count) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}
