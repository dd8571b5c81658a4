package services

import "testing"

func TestCategorizeLabelMatchesKeywords(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Cheddar Cheese": "Dairy",
		"Green Apple":    "Fruits",
		"Chicken Breast": "Meat",
		"Orange Juice":   "Beverages", // juice outranks the fruit keyword
		"Mystery Object": "Other",
	}
	for label, want := range cases {
		if got := categorizeLabel(label); got != want {
			t.Fatalf("%s: expected %s, got %s", label, want, got)
		}
	}
}
