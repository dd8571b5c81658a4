package models

import "testing"

func TestVocabulariesAreClosed(t *testing.T) {
	t.Parallel()
	if !ValidCategory("Fruits") || !ValidCategory("fruits") {
		t.Fatalf("known category rejected")
	}
	if ValidCategory("Gadgets") {
		t.Fatalf("unknown category accepted")
	}
	if !ValidUnit("kg") || ValidUnit("bushels") {
		t.Fatalf("unit vocabulary not enforced")
	}
	if !ValidStorageLocation("pantry") || ValidStorageLocation("garage") {
		t.Fatalf("storage location vocabulary not enforced")
	}
}

func TestCanonicalSpellings(t *testing.T) {
	t.Parallel()
	if got, ok := CanonicalCategory("fruits"); !ok || got != "Fruits" {
		t.Fatalf("CanonicalCategory(fruits) = %q, %v", got, ok)
	}
	if got, ok := CanonicalUnit(" KG "); !ok || got != "kg" {
		t.Fatalf("CanonicalUnit( KG ) = %q, %v", got, ok)
	}
	if got, ok := CanonicalStorageLocation("Fridge"); !ok || got != "fridge" {
		t.Fatalf("CanonicalStorageLocation(Fridge) = %q, %v", got, ok)
	}
	if _, ok := CanonicalCategory("Gadgets"); ok {
		t.Fatalf("unknown category canonicalized")
	}
}
