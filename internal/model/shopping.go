package model

import (
	"strconv"
	"strings"
	"time"
)

// ShoppingListItem is a desired purchase, independent of the fridge
// inventory. Its id space is separate from FoodItem.
type ShoppingListItem struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	CustomUnit string    `json:"custom_unit,omitempty"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
}

// InsertShoppingListItem is the client input for a new shopping entry.
type InsertShoppingListItem struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Quantity   *float64 `json:"quantity"`
	Unit       string   `json:"unit"`
	CustomUnit string   `json:"custom_unit"`
}

// Validate normalizes defaults and checks every field.
func (in *InsertShoppingListItem) Validate() *ValidationError {
	var verr ValidationError

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		verr.add("name", "name is required")
	}

	if in.Category == "" {
		in.Category = CategoryOther
	}
	if !ValidCategories[in.Category] {
		verr.add("category", "unknown category "+strconv.Quote(in.Category))
	}

	// An omitted quantity defaults to 1; an explicit 0 is rejected like any
	// other non-positive value.
	if in.Quantity == nil {
		qty := 1.0
		in.Quantity = &qty
	}
	if *in.Quantity <= 0 {
		verr.add("quantity", "quantity must be positive")
	}

	if in.Unit == "" {
		in.Unit = DefaultUnit
	}
	if !ValidUnits[in.Unit] {
		verr.add("unit", "unknown unit "+strconv.Quote(in.Unit))
	}
	if in.Unit == UnitCustom && strings.TrimSpace(in.CustomUnit) == "" {
		verr.add("custom_unit", "custom_unit is required when unit is custom")
	}

	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}

// ShoppingListItemPatch is a partial update for a shopping entry. The
// completed flag is flipped through the toggle operation, not patched.
type ShoppingListItemPatch struct {
	Name       *string  `json:"name"`
	Category   *string  `json:"category"`
	Quantity   *float64 `json:"quantity"`
	Unit       *string  `json:"unit"`
	CustomUnit *string  `json:"custom_unit"`
}

// Apply validates the provided fields and merges them onto item. On failure
// item is left untouched.
func (p ShoppingListItemPatch) Apply(item *ShoppingListItem) *ValidationError {
	var verr ValidationError

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		verr.add("name", "name is required")
	}
	if p.Category != nil && !ValidCategories[*p.Category] {
		verr.add("category", "unknown category "+strconv.Quote(*p.Category))
	}
	if p.Quantity != nil && *p.Quantity <= 0 {
		verr.add("quantity", "quantity must be positive")
	}
	if p.Unit != nil && !ValidUnits[*p.Unit] {
		verr.add("unit", "unknown unit "+strconv.Quote(*p.Unit))
	}

	unit := item.Unit
	if p.Unit != nil {
		unit = *p.Unit
	}
	customUnit := item.CustomUnit
	if p.CustomUnit != nil {
		customUnit = *p.CustomUnit
	}
	if unit == UnitCustom && strings.TrimSpace(customUnit) == "" {
		verr.add("custom_unit", "custom_unit is required when unit is custom")
	}

	if len(verr.Fields) > 0 {
		return &verr
	}

	if p.Name != nil {
		item.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.CustomUnit != nil {
		item.CustomUnit = *p.CustomUnit
	}
	return nil
}
