package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/omorros/SnapShelf/models"

	"gorm.io/gorm"
)

func invItem(id uint, name string, qty float64, expiry string) models.InventoryItem {
	return models.InventoryItem{
		Model:           gorm.Model{ID: id},
		Name:            name,
		Category:        "Dairy",
		Quantity:        qty,
		Unit:            "pieces",
		StorageLocation: "fridge",
		ExpiryDate:      date(expiry),
	}
}

func TestMergeRowsCombinesCaseAndWhitespaceVariants(t *testing.T) {
	t.Parallel()
	items := []models.InventoryItem{
		invItem(1, "Milk", 1, "2024-01-10"),
		invItem(2, "milk ", 2, "2024-01-10"),
	}
	rows := MergeRows(items, date("2024-01-08"), 3)
	if len(rows) != 1 {
		t.Fatalf("expected one merged row, got %d", len(rows))
	}
	row := rows[0]
	if row.Quantity != 3 {
		t.Fatalf("expected summed quantity 3, got %v", row.Quantity)
	}
	if row.MergedCount != 2 {
		t.Fatalf("expected merged_count 2, got %d", row.MergedCount)
	}
	if len(row.ItemIDs) != 2 || row.ItemIDs[0] != 1 || row.ItemIDs[1] != 2 {
		t.Fatalf("expected constituent ids [1 2], got %v", row.ItemIDs)
	}
	if row.Name != "Milk" {
		t.Fatalf("expected first-seen name to propagate, got %q", row.Name)
	}
}

func TestMergeRowsSeparatesDifferentExpiryDates(t *testing.T) {
	t.Parallel()
	items := []models.InventoryItem{
		invItem(1, "Milk", 1, "2024-01-10"),
		invItem(2, "Milk", 2, "2024-01-12"),
	}
	rows := MergeRows(items, date("2024-01-08"), 3)
	if len(rows) != 2 {
		t.Fatalf("expected two rows for distinct expiry dates, got %d", len(rows))
	}
}

func TestMergeRowsConservesTotalQuantity(t *testing.T) {
	t.Parallel()
	items := []models.InventoryItem{
		invItem(1, "Milk", 1.5, "2024-01-10"),
		invItem(2, "milk", 2, "2024-01-10"),
		invItem(3, "Eggs", 12, "2024-01-15"),
		invItem(4, "Butter", 0.5, "2024-01-20"),
		invItem(5, "eggs", 6, "2024-01-15"),
	}
	var want float64
	for _, it := range items {
		want += it.Quantity
	}
	var got float64
	for _, r := range MergeRows(items, date("2024-01-08"), 3) {
		got += r.Quantity
	}
	if got != want {
		t.Fatalf("merged quantities sum to %v, items sum to %v", got, want)
	}
}

func TestMergeRowsIsOrderIndependent(t *testing.T) {
	t.Parallel()
	items := []models.InventoryItem{
		invItem(1, "Milk", 1, "2024-01-10"),
		invItem(2, "milk", 2, "2024-01-10"),
		invItem(3, "Eggs", 12, "2024-01-15"),
		invItem(4, "Butter", 0.5, "2024-01-20"),
	}
	today := date("2024-01-08")
	want := rowSet(MergeRows(items, today, 3))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.InventoryItem, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := rowSet(MergeRows(shuffled, today, 3))
		for key, qty := range want {
			if got[key] != qty {
				t.Fatalf("shuffle %d: key %q has quantity %v, expected %v", i, key, got[key], qty)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("shuffle %d: expected %d rows, got %d", i, len(want), len(got))
		}
	}
}

func rowSet(rows []MergedRow) map[string]float64 {
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[NormalizeName(r.Name)+"|"+r.ExpiryDate.Format(time.DateOnly)] = r.Quantity
	}
	return out
}

func TestMergeRowsClassifiesEachRow(t *testing.T) {
	t.Parallel()
	items := []models.InventoryItem{
		invItem(1, "Old Cheese", 1, "2024-01-05"),
		invItem(2, "Milk", 1, "2024-01-10"),
		invItem(3, "Frozen Peas", 1, "2024-03-01"),
	}
	rows := MergeRows(items, date("2024-01-08"), 3)
	buckets := map[string]ExpiryBucket{}
	for _, r := range rows {
		buckets[r.Name] = r.Bucket
	}
	if buckets["Old Cheese"] != BucketExpired {
		t.Fatalf("expected Old Cheese expired, got %s", buckets["Old Cheese"])
	}
	if buckets["Milk"] != BucketExpiring {
		t.Fatalf("expected Milk expiring, got %s", buckets["Milk"])
	}
	if buckets["Frozen Peas"] != BucketFresh {
		t.Fatalf("expected Frozen Peas fresh, got %s", buckets["Frozen Peas"])
	}
}
