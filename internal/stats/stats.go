package stats

import (
	"sort"

	"uniformes/internal/catalog"
	"uniformes/internal/model"
)

// Aggregate folds the record set into grouped counts. Pure function: same
// input always yields the same output, and the input slice is never mutated.
func Aggregate(records []model.Delivery) model.AggregatedStats {
	agg := model.AggregatedStats{
		AreaCounts:   make(map[string]int),
		ItemCounts:   make(map[string]int),
		ColorCounts:  make(map[string]int),
		ReasonCounts: make(map[string]int),
	}

	for _, d := range records {
		agg.AreaCounts[d.Area]++
		agg.ReasonCounts[d.Reason]++

		for _, item := range d.Items {
			agg.TotalItems += item.Quantity
			agg.ItemCounts[item.Item] += item.Quantity

			// Color distribution only covers garments with a real color
			if item.Category == catalog.CategoryGarment && item.Color != "" && item.Color != catalog.ColorNA {
				agg.ColorCounts[item.Color] += item.Quantity
			}
		}
	}

	return agg
}

// Entry is one label/count pair of a sorted distribution
type Entry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SortedEntries orders a count map by descending count, ties broken by
// label ascending so the ordering is deterministic.
func SortedEntries(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, Entry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}
