package enums

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	category, err := ParseCategory("mains")
	require.NoError(t, err)
	require.Equal(t, CategoryMains, category)

	all, err := ParseCategory("all")
	require.NoError(t, err)
	require.Equal(t, CategoryAll, all)
	require.False(t, all.IsValid(), "the all sentinel is not an item category")

	_, err = ParseCategory("breakfast")
	require.Error(t, err)
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tag, err := ParseTag("gluten-free")
	require.NoError(t, err)
	require.Equal(t, TagGlutenFree, tag)

	_, err = ParseTag("keto")
	require.Error(t, err)
}

func TestParseSortField(t *testing.T) {
	t.Parallel()

	field, err := ParseSortField("price")
	require.NoError(t, err)
	require.Equal(t, SortFieldPrice, field)

	_, err = ParseSortField("popularity")
	require.Error(t, err)
}

func TestParseDiningOption(t *testing.T) {
	t.Parallel()

	option, err := ParseDiningOption("takeaway")
	require.NoError(t, err)
	require.Equal(t, DiningOptionTakeaway, option)

	_, err = ParseDiningOption("delivery")
	require.Error(t, err)
	require.False(t, DiningOption("delivery").IsValid())
}
