package services

import (
	"errors"
	"testing"

	"github.com/omorros/SnapShelf/models"
)

func floatPtr(f float64) *float64 { return &f }

// A draft that only carries a name can be confirmed with a payload that
// supplies the rest; the name comes from the draft.
func TestConfirmationPayloadFallsBackToDraftName(t *testing.T) {
	t.Parallel()
	draft := &models.DraftItem{Name: "Apple"}
	merged := confirmationPayload(draft, ItemPayload{
		Category:        "fruits",
		Quantity:        4,
		Unit:            "pieces",
		StorageLocation: "fridge",
		ExpiryDate:      "2024-02-01",
	})
	if _, err := ValidateItemPayload(&merged); err != nil {
		t.Fatalf("merged confirmation payload rejected: %v", err)
	}
	if merged.Name != "Apple" {
		t.Fatalf("expected draft name to carry over, got %q", merged.Name)
	}
}

func TestConfirmationPayloadFallsBackToDraftFields(t *testing.T) {
	t.Parallel()
	draft := &models.DraftItem{
		Name:     "Milk",
		Quantity: floatPtr(2),
		Unit:     "l",
		Location: "fridge",
	}
	merged := confirmationPayload(draft, ItemPayload{
		Category:   "Dairy",
		ExpiryDate: "2024-02-01",
	})
	if _, err := ValidateItemPayload(&merged); err != nil {
		t.Fatalf("merged confirmation payload rejected: %v", err)
	}
	if merged.Name != "Milk" || merged.Quantity != 2 || merged.Unit != "l" || merged.StorageLocation != "fridge" {
		t.Fatalf("expected draft fields to fill the gaps, got %+v", merged)
	}
}

func TestConfirmationPayloadOverridesDraftFields(t *testing.T) {
	t.Parallel()
	draft := &models.DraftItem{
		Name:     "Milk",
		Quantity: floatPtr(2),
		Unit:     "l",
		Location: "pantry",
	}
	merged := confirmationPayload(draft, ItemPayload{
		Name:            "Whole Milk",
		Category:        "Dairy",
		Quantity:        1,
		Unit:            "ml",
		StorageLocation: "fridge",
		ExpiryDate:      "2024-02-01",
	})
	if merged.Name != "Whole Milk" || merged.Quantity != 1 || merged.Unit != "ml" || merged.StorageLocation != "fridge" {
		t.Fatalf("expected payload to win over draft, got %+v", merged)
	}
}

// Expiry date and category never fall back to the draft; the caller has to
// state them at confirmation time.
func TestConfirmationPayloadStillRequiresExpiryAndCategory(t *testing.T) {
	t.Parallel()
	draft := &models.DraftItem{
		Name:     "Milk",
		Quantity: floatPtr(2),
		Unit:     "l",
		Location: "fridge",
		Category: "Dairy",
	}
	merged := confirmationPayload(draft, ItemPayload{Category: "Dairy"})
	if _, err := ValidateItemPayload(&merged); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure without expiry_date, got %v", err)
	}
	merged = confirmationPayload(draft, ItemPayload{ExpiryDate: "2024-02-01"})
	if _, err := ValidateItemPayload(&merged); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure without category, got %v", err)
	}
}
