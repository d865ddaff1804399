package stats

import (
	"reflect"
	"testing"
	"time"

	"uniformes/internal/catalog"
	"uniformes/internal/model"

	"github.com/google/uuid"
)

func record(area, reason string, items ...model.LineItem) model.Delivery {
	return model.Delivery{
		ID:        uuid.New(),
		Area:      area,
		Reason:    reason,
		Items:     items,
		Timestamp: time.Now(),
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)
	if agg.TotalItems != 0 {
		t.Errorf("expected 0 total items, got %d", agg.TotalItems)
	}
	if len(agg.AreaCounts) != 0 || len(agg.ItemCounts) != 0 || len(agg.ColorCounts) != 0 || len(agg.ReasonCounts) != 0 {
		t.Errorf("expected all-empty maps, got %+v", agg)
	}
}

func TestAggregateAreaCounts(t *testing.T) {
	records := []model.Delivery{
		record("A", "Renovación anual"),
		record("A", "Renovación anual"),
		record("B", "Renovación de 3 meses"),
	}

	agg := Aggregate(records)

	want := map[string]int{"A": 2, "B": 1}
	if !reflect.DeepEqual(agg.AreaCounts, want) {
		t.Errorf("expected %v, got %v", want, agg.AreaCounts)
	}
	if agg.ReasonCounts["Renovación anual"] != 2 {
		t.Errorf("expected 2 annual renewals, got %d", agg.ReasonCounts["Renovación anual"])
	}
}

func TestAggregateTotalIsSumOfQuantities(t *testing.T) {
	records := []model.Delivery{
		record("PRODUCCIÓN", "Renovación de 3 meses",
			model.LineItem{Item: "Polos", Quantity: 2, Color: "Azulino", Category: catalog.CategoryGarment},
			model.LineItem{Item: "Zapato Mecánico", Quantity: 1, Color: catalog.ColorNA, Category: catalog.CategoryFootwear},
		),
		record("SANEAMIENTO", "Renovación anual",
			model.LineItem{Item: "Polos", Quantity: 3, Color: "Celeste", Category: catalog.CategoryGarment},
		),
	}

	agg := Aggregate(records)

	sum := 0
	for _, r := range records {
		for _, it := range r.Items {
			sum += it.Quantity
		}
	}
	if agg.TotalItems != sum {
		t.Errorf("total %d does not match quantity sum %d", agg.TotalItems, sum)
	}
	if agg.ItemCounts["Polos"] != 5 {
		t.Errorf("expected 5 polos units, got %d", agg.ItemCounts["Polos"])
	}
}

func TestAggregateColorSkipsFootwearAndSentinel(t *testing.T) {
	records := []model.Delivery{
		record("PRODUCCIÓN", "Renovación anual",
			model.LineItem{Item: "Polos", Quantity: 2, Color: "Azulino", Category: catalog.CategoryGarment},
			model.LineItem{Item: "Tocas", Quantity: 1, Color: "", Category: catalog.CategoryGarment},
			model.LineItem{Item: "Zapato Mecánico", Quantity: 4, Color: catalog.ColorNA, Category: catalog.CategoryFootwear},
		),
	}

	agg := Aggregate(records)

	if !reflect.DeepEqual(agg.ColorCounts, map[string]int{"Azulino": 2}) {
		t.Errorf("unexpected color counts: %v", agg.ColorCounts)
	}
}

func TestAggregateIsPure(t *testing.T) {
	records := []model.Delivery{
		record("A", "Renovación anual",
			model.LineItem{Item: "Polos", Quantity: 2, Color: "Azulino", Category: catalog.CategoryGarment}),
		record("B", "Renovación anual"),
	}

	first := Aggregate(records)
	second := Aggregate(records)

	if !reflect.DeepEqual(first, second) {
		t.Error("aggregation must be deterministic for the same input")
	}
	if records[0].Area != "A" || len(records[0].Items) != 1 {
		t.Error("aggregation must not mutate its input")
	}
}

func TestSortedEntries(t *testing.T) {
	entries := SortedEntries(map[string]int{
		"Celeste":  2,
		"Azulino":  5,
		"Amarillo": 2,
	})

	want := []Entry{
		{Label: "Azulino", Count: 5},
		{Label: "Amarillo", Count: 2},
		{Label: "Celeste", Count: 2},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("expected %v, got %v", want, entries)
	}
}
