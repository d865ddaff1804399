package model

import (
	"testing"
)

func TestLineItemsScan(t *testing.T) {
	raw := `[{"item":"Polos","size":"M","color":"Azulino","quantity":2,"category":"prendas","status":"Renovación anual"}]`

	var fromBytes LineItems
	if err := fromBytes.Scan([]byte(raw)); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if len(fromBytes) != 1 || fromBytes[0].Quantity != 2 {
		t.Errorf("unexpected scan result: %+v", fromBytes)
	}

	var fromString LineItems
	if err := fromString.Scan(raw); err != nil {
		t.Fatalf("Scan string: %v", err)
	}

	var fromNil LineItems
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if fromNil != nil {
		t.Error("nil column should scan to nil slice")
	}

	var bad LineItems
	if err := bad.Scan(42); err == nil {
		t.Error("expected error for unsupported column type")
	}
}

func TestLineItemsValue(t *testing.T) {
	items := LineItems{{Item: "Tocas", Size: "Única", Color: "Celeste", Quantity: 1, Category: "prendas", Status: "Renovación anual"}}

	v, err := items.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var roundTrip LineItems
	if err := roundTrip.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if roundTrip[0].Item != "Tocas" || roundTrip[0].Size != "Única" {
		t.Errorf("round trip mismatch: %+v", roundTrip[0])
	}
}
