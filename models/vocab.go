package models

import "strings"

// Closed vocabularies. Unknown values are rejected at the API boundary,
// never defaulted.
var (
	Categories = []string{
		"Fruits", "Vegetables", "Dairy", "Meat", "Fish", "Grains",
		"Snacks", "Beverages", "Frozen", "Condiments", "Other",
	}
	Units            = []string{"pieces", "g", "kg", "ml", "l", "pack"}
	StorageLocations = []string{"fridge", "freezer", "pantry"}
)

func ValidCategory(s string) bool { _, ok := CanonicalCategory(s); return ok }

func ValidUnit(s string) bool { _, ok := CanonicalUnit(s); return ok }

func ValidStorageLocation(s string) bool { _, ok := CanonicalStorageLocation(s); return ok }

// CanonicalCategory matches case-insensitively and returns the vocabulary's
// own spelling, so "fruits" and "Fruits" never coexist in storage.
func CanonicalCategory(s string) (string, bool) { return canonical(Categories, s) }

func CanonicalUnit(s string) (string, bool) { return canonical(Units, s) }

func CanonicalStorageLocation(s string) (string, bool) { return canonical(StorageLocations, s) }

func canonical(set []string, s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, v := range set {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}
