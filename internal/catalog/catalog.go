package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/trinhquocthinh/foodhub/pkg/enums"
)

// Item is one read-only dish record. Items are defined at build time and
// never mutated; accessors hand out copies.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    enums.Category  `json:"category,omitempty"`
	Tags        []enums.Tag     `json:"tags,omitempty"`
	Rating      float64         `json:"rating,omitempty"`
	Calories    int             `json:"calories,omitempty"`
	PrepTime    int             `json:"prep_time,omitempty"`
	Highlight   string          `json:"highlight,omitempty"`
}

// HasTag reports whether the item carries the given tag.
func (i Item) HasTag(tag enums.Tag) bool {
	for _, candidate := range i.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// Service is one of the restaurant's promise blurbs on the home page.
type Service struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Testimonial is a guest review shown on the home page.
type Testimonial struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Rating float64 `json:"rating"`
}

// Store exposes the static catalog. All lists keep their authored order,
// which doubles as the "chef recommends" sort.
type Store struct{}

// NewStore returns the catalog store.
func NewStore() *Store {
	return &Store{}
}

// MenuItems returns the full menu in authored order.
func (s *Store) MenuItems() []Item {
	return copyItems(menuItems)
}

// Products returns the featured dishes for the home page.
func (s *Store) Products() []Item {
	return copyItems(products)
}

// Services returns the home page service blurbs.
func (s *Store) Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Testimonials returns the home page guest reviews.
func (s *Store) Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// FindItem looks up a menu item or featured product by id.
func (s *Store) FindItem(id string) (Item, bool) {
	for _, item := range menuItems {
		if item.ID == id {
			return copyItem(item), true
		}
	}
	for _, item := range products {
		if item.ID == id {
			return copyItem(item), true
		}
	}
	return Item{}, false
}

// Categories returns the menu filter lanes, "all" first.
func (s *Store) Categories() []CategoryOption {
	out := make([]CategoryOption, len(menuCategories))
	copy(out, menuCategories)
	return out
}

// DietaryFilters returns the selectable dietary tags.
func (s *Store) DietaryFilters() []DietaryFilter {
	out := make([]DietaryFilter, len(menuDietaryFilters))
	copy(out, menuDietaryFilters)
	return out
}

// SortOptions returns the menu sort choices, default first.
func (s *Store) SortOptions() []SortOption {
	out := make([]SortOption, len(menuSortOptions))
	copy(out, menuSortOptions)
	return out
}

// FindSortOption resolves a sort option id.
func (s *Store) FindSortOption(id string) (SortOption, bool) {
	for _, option := range menuSortOptions {
		if option.ID == id {
			return option, true
		}
	}
	return SortOption{}, false
}

func copyItems(src []Item) []Item {
	out := make([]Item, len(src))
	for i, item := range src {
		out[i] = copyItem(item)
	}
	return out
}

func copyItem(item Item) Item {
	if len(item.Tags) > 0 {
		tags := make([]enums.Tag, len(item.Tags))
		copy(tags, item.Tags)
		item.Tags = tags
	}
	return item
}
