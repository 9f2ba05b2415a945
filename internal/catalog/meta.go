package catalog

import "github.com/trinhquocthinh/foodhub/pkg/enums"

// CategoryOption is one selectable lane in the menu sidebar.
type CategoryOption struct {
	ID     enums.Category `json:"id"`
	Label  string         `json:"label"`
	Helper string         `json:"helper,omitempty"`
}

// DietaryFilter is one selectable dietary tag.
type DietaryFilter struct {
	ID    enums.Tag `json:"id"`
	Label string    `json:"label"`
}

// SortOption pairs a public sort id with its comparator configuration.
type SortOption struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	SortBy    enums.SortField `json:"sort_by"`
	Ascending bool            `json:"ascending"`
	Helper    string          `json:"helper,omitempty"`
}

var menuCategories = []CategoryOption{
	{
		ID:     enums.CategoryAll,
		Label:  "All dishes",
		Helper: "Browse the full experience curated by our kitchen team.",
	},
	{
		ID:     enums.CategoryStarters,
		Label:  "Starters",
		Helper: "Seasonal small plates designed for sharing.",
	},
	{
		ID:     enums.CategoryMains,
		Label:  "Mains",
		Helper: "Comforting signatures and modern classics.",
	},
	{
		ID:     enums.CategorySides,
		Label:  "Sides",
		Helper: "Vibrant accompaniments to round out the table.",
	},
	{
		ID:     enums.CategoryDesserts,
		Label:  "Desserts",
		Helper: "Sweet finishes crafted in-house daily.",
	},
	{
		ID:     enums.CategoryDrinks,
		Label:  "Drinks",
		Helper: "Refreshers, juices, and crafted mocktails.",
	},
}

var menuDietaryFilters = []DietaryFilter{
	{ID: enums.TagVegan, Label: "Plant-based"},
	{ID: enums.TagGlutenFree, Label: "Gluten friendly"},
	{ID: enums.TagHot, Label: "Spicy"},
	{ID: enums.TagSignature, Label: "Chef signature"},
	{ID: enums.TagSeasonal, Label: "Seasonal pick"},
}

var menuSortOptions = []SortOption{
	{
		ID:     "recommended",
		Label:  "Chef recommends",
		SortBy: enums.SortFieldOriginal,
		Helper: "Balanced tasting journey from light to bold.",
	},
	{
		ID:        "price-asc",
		Label:     "Price · Low to high",
		SortBy:    enums.SortFieldPrice,
		Ascending: true,
	},
	{
		ID:     "price-desc",
		Label:  "Price · High to low",
		SortBy: enums.SortFieldPrice,
	},
	{
		ID:     "rating",
		Label:  "Top rated",
		SortBy: enums.SortFieldRating,
	},
	{
		ID:        "alphabetical",
		Label:     "A to Z",
		SortBy:    enums.SortFieldName,
		Ascending: true,
	},
}
