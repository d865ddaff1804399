package form

import (
	"fmt"

	"uniformes/internal/catalog"
)

// ItemDraft holds the in-progress selection for one catalog item
type ItemDraft struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
}

// Draft is the mutable, unsubmitted request being edited. It accepts any
// value, including invalid ones; validation happens only at submission.
type Draft struct {
	EmployeeName string               `json:"employeeName"`
	Area         string               `json:"area"`
	ReasonKey    string               `json:"reasonKey"`
	DamageNotes  string               `json:"damageNotes"`
	Photo        []byte               `json:"photo,omitempty"`
	Items        map[string]ItemDraft `json:"items"`
}

// NewDraft returns a draft in its default state: empty identification,
// the default renewal reason and one zero-quantity entry per catalog item.
// Single-size items start with their fixed size preselected.
func NewDraft() *Draft {
	items := make(map[string]ItemDraft, len(catalog.Items))
	for _, it := range catalog.Items {
		entry := ItemDraft{}
		if it.FixedSize() {
			entry.Size = catalog.SizeUnica
		}
		items[it.Key] = entry
	}
	return &Draft{
		ReasonKey: catalog.DefaultReasonKey,
		Items:     items,
	}
}

// UpdateField sets one of the general (non-item) fields by name
func (d *Draft) UpdateField(name, value string) error {
	switch name {
	case "employeeName":
		d.EmployeeName = value
	case "area":
		d.Area = value
	case "reasonKey":
		d.ReasonKey = value
	case "damageNotes":
		d.DamageNotes = value
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// UpdateItem replaces one field of one item's draft, leaving every other
// item and field untouched.
func (d *Draft) UpdateItem(key, field string, value interface{}) error {
	entry, ok := d.Items[key]
	if !ok {
		return fmt.Errorf("unknown catalog item %q", key)
	}

	switch field {
	case "size":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("size for %q must be a string", key)
		}
		entry.Size = s
	case "color":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("color for %q must be a string", key)
		}
		entry.Color = s
	case "quantity":
		q, ok := value.(int)
		if !ok {
			return fmt.Errorf("quantity for %q must be an int", key)
		}
		entry.Quantity = q
	default:
		return fmt.Errorf("unknown item field %q", field)
	}

	d.Items[key] = entry
	return nil
}

// SetPhoto attaches (or, with nil, clears) the photo evidence blob
func (d *Draft) SetPhoto(blob []byte) {
	d.Photo = blob
}

// Reset returns the draft wholesale to its default state
func (d *Draft) Reset() {
	*d = *NewDraft()
}

// RequiresPhoto derives whether the selected reason demands photo evidence.
// An unknown reason key defaults to false.
func (d *Draft) RequiresPhoto() bool {
	r, ok := catalog.ReasonByKey(d.ReasonKey)
	return ok && r.RequiresPhoto
}

// ReasonLabel resolves the selected reason's display label, empty if unknown
func (d *Draft) ReasonLabel() string {
	r, ok := catalog.ReasonByKey(d.ReasonKey)
	if !ok {
		return ""
	}
	return r.Label
}
