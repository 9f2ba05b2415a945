package menu

import (
	"sort"
	"strings"

	"github.com/trinhquocthinh/foodhub/internal/catalog"
	"github.com/trinhquocthinh/foodhub/pkg/enums"
)

// ViewState holds the current filter, sort, and search selection for the
// menu grid. Recomputing the visible list from the catalog and this
// state is a pure function; the state carries nothing derived.
type ViewState struct {
	ActiveCategory enums.Category
	ActiveTags     map[enums.Tag]struct{}
	ActiveSort     catalog.SortOption
	Query          string

	defaultCategory enums.Category
	defaultSort     catalog.SortOption
}

// NewViewState starts at the first category and the default sort of the
// provided catalog metadata.
func NewViewState(store *catalog.Store) *ViewState {
	category := enums.CategoryAll
	if categories := store.Categories(); len(categories) > 0 {
		category = categories[0].ID
	}
	var sortOption catalog.SortOption
	if options := store.SortOptions(); len(options) > 0 {
		sortOption = options[0]
	}
	return &ViewState{
		ActiveCategory:  category,
		ActiveTags:      map[enums.Tag]struct{}{},
		ActiveSort:      sortOption,
		defaultCategory: category,
		defaultSort:     sortOption,
	}
}

// SetCategory selects the active lane.
func (v *ViewState) SetCategory(category enums.Category) {
	v.ActiveCategory = category
}

// ToggleTag adds or removes a dietary tag from the active set.
func (v *ViewState) ToggleTag(tag enums.Tag) {
	if _, ok := v.ActiveTags[tag]; ok {
		delete(v.ActiveTags, tag)
		return
	}
	v.ActiveTags[tag] = struct{}{}
}

// SetSort selects the active sort option.
func (v *ViewState) SetSort(option catalog.SortOption) {
	v.ActiveSort = option
}

// SetQuery updates the free-text search term. Empty matches everything.
func (v *ViewState) SetQuery(query string) {
	v.Query = strings.TrimSpace(query)
}

// Reset restores the first category, an empty tag set, the default sort,
// and an empty query.
func (v *ViewState) Reset() {
	v.ActiveCategory = v.defaultCategory
	v.ActiveTags = map[enums.Tag]struct{}{}
	v.ActiveSort = v.defaultSort
	v.Query = ""
}

// VisibleItems filters and sorts the catalog items for display. Category
// must match unless "all" is active; every selected tag must be present
// on the item; the query matches name or description case-insensitively.
// Sorting is stable, so equal keys keep their catalog order.
func (v *ViewState) VisibleItems(items []catalog.Item) []catalog.Item {
	visible := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if v.matches(item) {
			visible = append(visible, item)
		}
	}
	sortItems(visible, v.ActiveSort)
	return visible
}

func (v *ViewState) matches(item catalog.Item) bool {
	if v.ActiveCategory != enums.CategoryAll && item.Category != v.ActiveCategory {
		return false
	}
	for tag := range v.ActiveTags {
		if !item.HasTag(tag) {
			return false
		}
	}
	if v.Query != "" {
		query := strings.ToLower(v.Query)
		if !strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			return false
		}
	}
	return true
}

func sortItems(items []catalog.Item, option catalog.SortOption) {
	if option.SortBy == enums.SortFieldOriginal || option.SortBy == "" {
		return
	}

	less := comparatorFor(option.SortBy)
	if less == nil {
		return
	}
	// Descending reverses the comparator rather than the final list so
	// ties keep their relative catalog order.
	sort.SliceStable(items, func(i, j int) bool {
		if option.Ascending {
			return less(items[i], items[j])
		}
		return less(items[j], items[i])
	})
}

func comparatorFor(field enums.SortField) func(a, b catalog.Item) bool {
	switch field {
	case enums.SortFieldPrice:
		return func(a, b catalog.Item) bool {
			return a.Price.LessThan(b.Price)
		}
	case enums.SortFieldRating:
		// Missing ratings sort as zero.
		return func(a, b catalog.Item) bool {
			return a.Rating < b.Rating
		}
	case enums.SortFieldName:
		return func(a, b catalog.Item) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	return nil
}
