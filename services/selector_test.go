package services

import (
	"errors"
	"testing"

	"github.com/omorros/SnapShelf/models"
)

func pantry() []models.InventoryItem {
	return []models.InventoryItem{
		invItem(1, "Chicken", 0.5, "2024-01-09"),
		invItem(2, "Spinach", 1, "2024-01-10"),
		invItem(3, "Rice", 2, "2024-03-01"),
		invItem(4, "Old Yogurt", 1, "2024-01-05"),
		invItem(5, "chicken", 0.3, "2024-01-20"),
	}
}

func TestSelectExpiringKeepsOnlyWindowItems(t *testing.T) {
	t.Parallel()
	sel := SelectExpiring(pantry(), date("2024-01-08"), 3)
	if len(sel) != 2 {
		t.Fatalf("expected 2 expiring items, got %d: %+v", len(sel), sel)
	}
	if sel[0].Name != "Chicken" || sel[1].Name != "Spinach" {
		t.Fatalf("expected soonest-first order [Chicken Spinach], got %+v", sel)
	}
}

func TestSelectExpiringExcludesAlreadyExpired(t *testing.T) {
	t.Parallel()
	for _, s := range SelectExpiring(pantry(), date("2024-01-08"), 3) {
		if s.Name == "Old Yogurt" {
			t.Fatalf("expired item must not be selected for recipes")
		}
	}
}

func TestSelectExpiringEmptyWhenNothingUrgent(t *testing.T) {
	t.Parallel()
	items := []models.InventoryItem{invItem(1, "Rice", 2, "2024-03-01")}
	if sel := SelectExpiring(items, date("2024-01-08"), 3); len(sel) != 0 {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
}

func TestSelectAllDeduplicatesByNormalizedName(t *testing.T) {
	t.Parallel()
	sel := SelectAll(pantry(), date("2024-01-08"))
	seen := map[string]int{}
	for _, s := range sel {
		seen[NormalizeName(s.Name)]++
	}
	if seen["chicken"] != 1 {
		t.Fatalf("expected chicken deduplicated to one entry, got %d", seen["chicken"])
	}
}

func TestSelectManualReturnsExactSubset(t *testing.T) {
	t.Parallel()
	sel, err := SelectManual(pantry(), []string{"CHICKEN", "rice"}, date("2024-01-08"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sel) != 2 {
		t.Fatalf("expected exactly 2 selections regardless of inventory size, got %d", len(sel))
	}
	names := map[string]bool{}
	for _, s := range sel {
		names[NormalizeName(s.Name)] = true
	}
	if !names["chicken"] || !names["rice"] {
		t.Fatalf("expected chicken and rice, got %+v", sel)
	}
}

func TestSelectManualRejectsEmptySubset(t *testing.T) {
	t.Parallel()
	if _, err := SelectManual(pantry(), nil, date("2024-01-08")); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected precondition violation for empty manual selection, got %v", err)
	}
	if _, err := SelectManual(pantry(), []string{"  "}, date("2024-01-08")); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected precondition violation for blank names, got %v", err)
	}
}

func TestSelectionIsASnapshot(t *testing.T) {
	t.Parallel()
	items := pantry()
	sel := SelectAll(items, date("2024-01-08"))
	items[0].Quantity = 99
	for _, s := range sel {
		if s.Quantity == 99 {
			t.Fatalf("selection must not track later inventory mutations")
		}
	}
}

func TestSelectForGenerationAutoFallsBackToFullInventory(t *testing.T) {
	t.Parallel()
	items := []models.InventoryItem{
		invItem(1, "Rice", 2, "2024-03-01"),
		invItem(2, "Beans", 3, "2024-04-01"),
	}
	sel, err := SelectForGeneration(items, ModeAuto, nil, date("2024-01-08"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sel) != 2 {
		t.Fatalf("expected fallback to the full inventory, got %+v", sel)
	}
}

func TestSelectForGenerationRejectsUnknownMode(t *testing.T) {
	t.Parallel()
	if _, err := SelectForGeneration(pantry(), "chef", nil, date("2024-01-08")); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation failure for unknown mode, got %v", err)
	}
}
