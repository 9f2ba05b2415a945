package validators

import (
	"net/http"
	"strings"

	"github.com/trinhquocthinh/foodhub/pkg/enums"
	pkgerrors "github.com/trinhquocthinh/foodhub/pkg/errors"
)

// ParseQueryCategory reads the category filter, defaulting to "all".
func ParseQueryCategory(r *http.Request) (enums.Category, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("category"))
	if raw == "" {
		return enums.CategoryAll, nil
	}
	category, err := enums.ParseCategory(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown category").WithDetails(map[string]any{"field": "category"})
	}
	return category, nil
}

// ParseQueryTags reads the comma-separated tags filter.
func ParseQueryTags(r *http.Request) ([]enums.Tag, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("tags"))
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]enums.Tag, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag, err := enums.ParseTag(part)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown tag").WithDetails(map[string]any{"field": "tags", "value": part})
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ParseQuerySort reads the sort option id, empty meaning the default.
func ParseQuerySort(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("sort"))
}

// ParseQuerySearch reads the free-text search term.
func ParseQuerySearch(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}
