package model

import (
	"strconv"
	"strings"
	"time"
)

// Food item categories. "other" is the default.
const (
	CategoryDairy      = "dairy"
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryMeats      = "meats"
	CategoryGrains     = "grains"
	CategoryBeverages  = "beverages"
	CategoryOther      = "other"
)

// UnitCustom is the sentinel unit: items using it carry their own
// custom_unit label.
const (
	UnitPieces  = "pcs"
	UnitCustom  = "custom"
	DefaultUnit = UnitPieces
)

var ValidCategories = map[string]bool{
	CategoryDairy:      true,
	CategoryVegetables: true,
	CategoryFruits:     true,
	CategoryMeats:      true,
	CategoryGrains:     true,
	CategoryBeverages:  true,
	CategoryOther:      true,
}

var ValidUnits = map[string]bool{
	UnitPieces: true,
	"kg":       true,
	"g":        true,
	"ml":       true,
	"l":        true,
	"box":      true,
	"bag":      true,
	"bottle":   true,
	"can":      true,
	"cup":      true,
	"tbsp":     true,
	"tsp":      true,
	"bunch":    true,
	"slice":    true,
	"loaf":     true,
	"pack":     true,
	UnitCustom: true,
}

// FoodItem is a quantity of a perishable good in the fridge inventory.
type FoodItem struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	CustomUnit     string    `json:"custom_unit,omitempty"`
	ExpirationDate time.Time `json:"expiration_date"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Notified       bool      `json:"notified"`
}

// InsertFoodItem is the client input for creating a food item. The store
// assigns id, created_at, and the notified flag.
type InsertFoodItem struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Quantity       *float64 `json:"quantity"`
	Unit           string   `json:"unit"`
	CustomUnit     string   `json:"custom_unit"`
	ExpirationDate string   `json:"expiration_date"`
	Notes          string   `json:"notes"`
}

// Validate normalizes defaults, checks every field, and returns the parsed
// expiration date. A non-nil *ValidationError names each offending field.
func (in *InsertFoodItem) Validate() (time.Time, *ValidationError) {
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

	var exp time.Time
	if in.ExpirationDate == "" {
		verr.add("expiration_date", "expiration_date is required")
	} else {
		parsed, err := ParseDate(in.ExpirationDate)
		if err != nil {
			verr.add("expiration_date", "expiration_date must be a date like 2026-01-31")
		}
		exp = parsed
	}

	if len(verr.Fields) > 0 {
		return time.Time{}, &verr
	}
	return exp, nil
}

// FoodItemPatch is a partial update. Nil fields are left unchanged; unknown
// JSON keys are dropped by the decoder. id and created_at are not patchable.
type FoodItemPatch struct {
	Name           *string  `json:"name"`
	Category       *string  `json:"category"`
	Quantity       *float64 `json:"quantity"`
	Unit           *string  `json:"unit"`
	CustomUnit     *string  `json:"custom_unit"`
	ExpirationDate *string  `json:"expiration_date"`
	Notes          *string  `json:"notes"`
}

// Apply validates the provided fields and merges them onto item. On failure
// item is left untouched.
func (p FoodItemPatch) Apply(item *FoodItem) *ValidationError {
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

	// The custom unit label must exist on the merged record whenever the
	// merged unit is "custom".
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

	var exp time.Time
	if p.ExpirationDate != nil {
		parsed, err := ParseDate(*p.ExpirationDate)
		if err != nil {
			verr.add("expiration_date", "expiration_date must be a date like 2026-01-31")
		}
		exp = parsed
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
	if p.ExpirationDate != nil {
		item.ExpirationDate = exp
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	return nil
}

// ParseDate accepts an ISO calendar date ("2006-01-02") or a full RFC 3339
// timestamp, returning the value truncated to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
