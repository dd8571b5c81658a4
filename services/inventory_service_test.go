package services

import (
	"errors"
	"testing"
)

func validPayload() ItemPayload {
	return ItemPayload{
		Name:            "Apple",
		Category:        "Fruits",
		Quantity:        4,
		Unit:            "pieces",
		StorageLocation: "fridge",
		ExpiryDate:      "2024-02-01",
	}
}

func TestValidateItemPayloadAcceptsCompletePayload(t *testing.T) {
	t.Parallel()
	p := validPayload()
	expiry, err := ValidateItemPayload(&p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expiry.Format("2006-01-02") != "2024-02-01" {
		t.Fatalf("expected parsed expiry 2024-02-01, got %s", expiry)
	}
}

func TestValidateItemPayloadCanonicalizesVocabulary(t *testing.T) {
	t.Parallel()
	p := validPayload()
	p.Name = "  Apple  "
	p.Category = "fruits"
	p.Unit = "PIECES"
	p.StorageLocation = "Fridge"
	if _, err := ValidateItemPayload(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Apple" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.Category != "Fruits" {
		t.Fatalf("expected canonical category Fruits, got %q", p.Category)
	}
	if p.Unit != "pieces" {
		t.Fatalf("expected canonical unit pieces, got %q", p.Unit)
	}
	if p.StorageLocation != "fridge" {
		t.Fatalf("expected canonical storage location fridge, got %q", p.StorageLocation)
	}
}

func TestValidateItemPayloadRequiresExpiryDate(t *testing.T) {
	t.Parallel()
	p := validPayload()
	p.ExpiryDate = ""
	if _, err := ValidateItemPayload(&p); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure without expiry_date, got %v", err)
	}
	p.ExpiryDate = "   "
	if _, err := ValidateItemPayload(&p); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure for blank expiry_date, got %v", err)
	}
}

func TestValidateItemPayloadRejectsMalformedDate(t *testing.T) {
	t.Parallel()
	p := validPayload()
	p.ExpiryDate = "01/02/2024"
	if _, err := ValidateItemPayload(&p); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure for malformed date, got %v", err)
	}
}

func TestValidateItemPayloadRejectsUnknownVocabulary(t *testing.T) {
	t.Parallel()
	p := validPayload()
	p.Category = "Gadgets"
	if _, err := ValidateItemPayload(&p); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected unknown category to be rejected, got %v", err)
	}

	p = validPayload()
	p.Unit = "bushels"
	if _, err := ValidateItemPayload(&p); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected unknown unit to be rejected, got %v", err)
	}

	p = validPayload()
	p.StorageLocation = "garage"
	if _, err := ValidateItemPayload(&p); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected unknown storage location to be rejected, got %v", err)
	}
}

func TestValidateItemPayloadRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()
	for _, q := range []float64{0, -2} {
		p := validPayload()
		p.Quantity = q
		if _, err := ValidateItemPayload(&p); !errors.Is(err, ErrValidation) {
			t.Fatalf("quantity %v: expected validation failure, got %v", q, err)
		}
	}
}
