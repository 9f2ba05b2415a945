package enums

import "fmt"

// Category buckets a menu item into one lane of the menu.
type Category string

const (
	CategoryStarters Category = "starters"
	CategoryMains    Category = "mains"
	CategorySides    Category = "sides"
	CategoryDesserts Category = "desserts"
	CategoryDrinks   Category = "drinks"

	// CategoryAll is the filter sentinel matching every lane. It is never
	// assigned to an item.
	CategoryAll Category = "all"
)

var validCategories = []Category{
	CategoryStarters,
	CategoryMains,
	CategorySides,
	CategoryDesserts,
	CategoryDrinks,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known item Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category, accepting the "all"
// sentinel used by menu filters.
func ParseCategory(value string) (Category, error) {
	if Category(value) == CategoryAll {
		return CategoryAll, nil
	}
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
