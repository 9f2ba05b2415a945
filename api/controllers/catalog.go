package controllers

import (
	"net/http"

	"github.com/trinhquocthinh/foodhub/api/responses"
	"github.com/trinhquocthinh/foodhub/api/validators"
	"github.com/trinhquocthinh/foodhub/internal/catalog"
	"github.com/trinhquocthinh/foodhub/internal/menu"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
	"github.com/trinhquocthinh/foodhub/pkg/logger"
)

// MenuResponse is the filtered, sorted menu grid payload.
type MenuResponse struct {
	Items      []catalog.Item           `json:"items"`
	Count      int                      `json:"count"`
	Category   string                   `json:"category"`
	Tags       []string                 `json:"tags"`
	Sort       string                   `json:"sort"`
	Query      string                   `json:"query,omitempty"`
	Categories []catalog.CategoryOption `json:"categories"`
	Filters    []catalog.DietaryFilter  `json:"filters"`
	SortBy     []catalog.SortOption     `json:"sort_options"`
}

// MenuList computes the visible menu for the requested filter state.
func MenuList(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := validators.ParseQueryCategory(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		tags, err := validators.ParseQueryTags(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := menu.NewViewState(store)
		state.SetCategory(category)
		for _, tag := range tags {
			state.ToggleTag(tag)
		}
		if sortID := validators.ParseQuerySort(r); sortID != "" {
			option, ok := store.FindSortOption(sortID)
			if !ok {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "unknown sort option").
						WithDetails(map[string]any{"field": "sort"}))
				return
			}
			state.SetSort(option)
		}
		state.SetQuery(validators.ParseQuerySearch(r))

		items := state.VisibleItems(store.MenuItems())

		tagValues := make([]string, 0, len(tags))
		for _, tag := range tags {
			tagValues = append(tagValues, tag.String())
		}

		responses.WriteSuccess(w, MenuResponse{
			Items:      items,
			Count:      len(items),
			Category:   state.ActiveCategory.String(),
			Tags:       tagValues,
			Sort:       state.ActiveSort.ID,
			Query:      state.Query,
			Categories: store.Categories(),
			Filters:    store.DietaryFilters(),
			SortBy:     store.SortOptions(),
		})
	}
}

// ProductList returns the featured dishes for the home page.
func ProductList(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Products())
	}
}

// ServiceList returns the home page service blurbs.
func ServiceList(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Services())
	}
}

// TestimonialList returns the home page guest reviews.
func TestimonialList(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Testimonials())
	}
}
