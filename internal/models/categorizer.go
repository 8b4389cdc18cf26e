package models

import "strings"

// Category is one of the labels the classifier can produce.
// The zero value is CategoryUnrecognized and never reaches a transaction.
type Category string

// Categories known to the classifier, in rule-table order.
const (
	CategoryUnrecognized  Category = ""
	CategoryFood          Category = "food"
	CategoryRent          Category = "rent"
	CategoryShopping      Category = "shopping"
	CategoryTravel        Category = "travel"
	CategoryUtilities     Category = "utilities"
	CategorySubscriptions Category = "subscriptions"
	CategorySalary        Category = "salary"
	CategoryOther         Category = "other"
)

// KnownCategories returns the label set offered to the classification service,
// ending with the catch-all.
func KnownCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryRent,
		CategoryShopping,
		CategoryTravel,
		CategoryUtilities,
		CategorySubscriptions,
		CategorySalary,
		CategoryOther,
	}
}

// NormalizeLabel trims and lowercases a category label.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ParseCategory maps free text onto the closed label set.
// Anything outside the set yields CategoryUnrecognized and false.
func ParseCategory(text string) (Category, bool) {
	label := Category(NormalizeLabel(text))
	for _, c := range KnownCategories() {
		if c == label {
			return c, true
		}
	}
	return CategoryUnrecognized, false
}

// String implements fmt.Stringer
func (c Category) String() string {
	return string(c)
}
