// Package model defines the core domain types shared across the application.
package model

import (
	"fmt"
	"strings"
)

// Category is one of the fixed set of expense categories.
type Category string

const (
	// CategoryFood covers groceries, restaurants, and everything edible.
	CategoryFood Category = "Food"
	// CategoryTransportation covers fuel, transit fares, and vehicle costs.
	CategoryTransportation Category = "Transportation"
	// CategoryEntertainment covers streaming, events, and hobbies.
	CategoryEntertainment Category = "Entertainment"
	// CategoryShopping covers retail purchases.
	CategoryShopping Category = "Shopping"
	// CategoryBills covers recurring obligations like rent and utilities.
	CategoryBills Category = "Bills"
	// CategoryOther is the catch-all for anything unclassified.
	CategoryOther Category = "Other"
)

// categoryOrder is the canonical display order. The set is closed; nothing is
// added or removed at runtime.
var categoryOrder = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryBills,
	CategoryOther,
}

// categoryMeta holds per-category display metadata.
type categoryMeta struct {
	icon  string
	color string
}

var categoryMetadata = map[Category]categoryMeta{
	CategoryFood:           {icon: "fork.knife", color: "#FFA500"},
	CategoryTransportation: {icon: "car.fill", color: "#1E90FF"},
	CategoryEntertainment:  {icon: "tv.fill", color: "#9370DB"},
	CategoryShopping:       {icon: "cart.fill", color: "#FF69B4"},
	CategoryBills:          {icon: "doc.text.fill", color: "#FF4444"},
	CategoryOther:          {icon: "ellipsis.circle.fill", color: "#888888"},
}

// Categories returns every category in canonical order. The returned slice is
// a copy; callers may reorder it freely.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Icon returns the icon token for the category.
func (c Category) Icon() string {
	return categoryMetadata[c].icon
}

// Color returns the color token for the category, usable as a lipgloss color.
func (c Category) Color() string {
	return categoryMetadata[c].color
}

// String returns the display label, which doubles as the serialization key.
func (c Category) String() string {
	return string(c)
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryMetadata[c]
	return ok
}

// ParseCategory resolves a user-supplied name to a Category, case-insensitively.
// It exists for the CLI boundary; engine code only ever sees valid categories.
func ParseCategory(name string) (Category, error) {
	for _, c := range categoryOrder {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", name, strings.Join(categoryNames(), ", "))
}

func categoryNames() []string {
	names := make([]string, len(categoryOrder))
	for i, c := range categoryOrder {
		names[i] = string(c)
	}
	return names
}
