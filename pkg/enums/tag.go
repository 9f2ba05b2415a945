package enums

import "fmt"

// Tag marks a dietary or merchandising highlight on a menu item.
type Tag string

const (
	TagVegan      Tag = "vegan"
	TagHot        Tag = "hot"
	TagGlutenFree Tag = "gluten-free"
	TagNew        Tag = "new"
	TagSignature  Tag = "signature"
	TagSeasonal   Tag = "seasonal"
)

var validTags = []Tag{
	TagVegan,
	TagHot,
	TagGlutenFree,
	TagNew,
	TagSignature,
	TagSeasonal,
}

// String implements fmt.Stringer.
func (t Tag) String() string {
	return string(t)
}

// IsValid reports whether the value is a known Tag.
func (t Tag) IsValid() bool {
	for _, candidate := range validTags {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTag converts raw input into a Tag.
func ParseTag(value string) (Tag, error) {
	for _, candidate := range validTags {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tag %q", value)
}
