package services

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/omorros/SnapShelf/models"
)

// Recipe generation modes.
const (
	ModeAuto   = "auto"
	ModeManual = "manual"
)

const DefaultRecipePriorityDays = 3

// RecipePriorityDays is the auto-mode window: items expiring within this
// many days are submitted as priority ingredients.
func RecipePriorityDays() int {
	if v := os.Getenv("RECIPE_PRIORITY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return DefaultRecipePriorityDays
}

// IngredientSelection is a point-in-time projection of an inventory item for
// an outbound recipe request. It never refers back to the inventory row.
type IngredientSelection struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	ExpiryDate string  `json:"expiry_date"` // "2006-01-02"
}

func snapshotIngredient(it models.InventoryItem) IngredientSelection {
	return IngredientSelection{
		Name:       it.Name,
		Quantity:   it.Quantity,
		Unit:       it.Unit,
		ExpiryDate: truncateToDay(it.ExpiryDate).Format("2006-01-02"),
	}
}

// dedupeByName keeps the first occurrence of each normalized name.
func dedupeByName(items []models.InventoryItem) []models.InventoryItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]models.InventoryItem, 0, len(items))
	for _, it := range items {
		key := NormalizeName(it.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

// SelectExpiring returns the items expiring within the window, soonest
// first: not yet expired and at most priorityDays away. An empty result means
// nothing is urgent — callers then submit the full inventory so the generator
// still has the whole ingredient universe to work with.
func SelectExpiring(items []models.InventoryItem, today time.Time, priorityDays int) []IngredientSelection {
	sorted := make([]models.InventoryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpiryDate.Before(sorted[j].ExpiryDate)
	})

	var expiring []models.InventoryItem
	for _, it := range dedupeByName(sorted) {
		days := DaysUntilExpiry(it.ExpiryDate, today)
		if days >= 0 && days <= priorityDays {
			expiring = append(expiring, it)
		}
	}
	out := make([]IngredientSelection, 0, len(expiring))
	for _, it := range expiring {
		out = append(out, snapshotIngredient(it))
	}
	return out
}

// SelectAll snapshots the whole inventory, soonest expiry first, deduped by
// normalized name.
func SelectAll(items []models.InventoryItem, today time.Time) []IngredientSelection {
	sorted := make([]models.InventoryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpiryDate.Before(sorted[j].ExpiryDate)
	})
	deduped := dedupeByName(sorted)
	out := make([]IngredientSelection, 0, len(deduped))
	for _, it := range deduped {
		out = append(out, snapshotIngredient(it))
	}
	return out
}

// SelectManual returns exactly the named subset, nothing added. Names match
// after normalization. An empty subset is a contract violation — manual mode
// means the user picked something.
func SelectManual(items []models.InventoryItem, names []string, today time.Time) ([]IngredientSelection, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: manual selection requires at least one ingredient", ErrPrecondition)
	}
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		wanted[NormalizeName(n)] = struct{}{}
	}
	if len(wanted) == 0 {
		return nil, fmt.Errorf("%w: manual selection requires at least one ingredient", ErrPrecondition)
	}

	sorted := make([]models.InventoryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpiryDate.Before(sorted[j].ExpiryDate)
	})

	var out []IngredientSelection
	for _, it := range dedupeByName(sorted) {
		if _, ok := wanted[NormalizeName(it.Name)]; ok {
			out = append(out, snapshotIngredient(it))
		}
	}
	return out, nil
}

// SelectForGeneration picks the ingredient set a recipe request should carry.
// Auto mode prefers the expiring window and falls back to the full inventory;
// manual mode is exactly the user's subset.
func SelectForGeneration(items []models.InventoryItem, mode string, names []string, today time.Time) ([]IngredientSelection, error) {
	switch mode {
	case ModeAuto, "":
		if sel := SelectExpiring(items, today, RecipePriorityDays()); len(sel) > 0 {
			return sel, nil
		}
		return SelectAll(items, today), nil
	case ModeManual:
		return SelectManual(items, names, today)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrValidation, mode)
	}
}
