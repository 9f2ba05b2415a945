package enums

import "fmt"

// DiningOption selects how a checkout order is fulfilled.
type DiningOption string

const (
	DiningOptionDineIn   DiningOption = "dine-in"
	DiningOptionTakeaway DiningOption = "takeaway"
)

var validDiningOptions = []DiningOption{
	DiningOptionDineIn,
	DiningOptionTakeaway,
}

// String implements fmt.Stringer.
func (d DiningOption) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DiningOption.
func (d DiningOption) IsValid() bool {
	for _, candidate := range validDiningOptions {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDiningOption converts raw input into a DiningOption.
func ParseDiningOption(value string) (DiningOption, error) {
	for _, candidate := range validDiningOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid dining option %q", value)
}
