package services

import (
	"strings"
	"time"

	"github.com/omorros/SnapShelf/models"
)

// MergedRow is a display aggregate of the inventory items sharing a merge
// key (normalized name + expiry date). It is recomputed from the snapshot on
// every read and never written back.
type MergedRow struct {
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	Unit            string       `json:"unit"`
	StorageLocation string       `json:"storage_location"`
	Quantity        float64      `json:"quantity"`
	ExpiryDate      time.Time    `json:"expiry_date"`
	ItemIDs         []uint       `json:"item_ids"`
	MergedCount     int          `json:"merged_count"`
	DaysUntilExpiry int          `json:"days_until_expiry"`
	Bucket          ExpiryBucket `json:"bucket"`
	ExpiryLabel     string       `json:"expiry_label"`
}

// NormalizeName is the name half of the merge key: trimmed and case-folded,
// so "Milk " and "milk" land in the same row.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func mergeKey(item models.InventoryItem) string {
	return NormalizeName(item.Name) + "|" + truncateToDay(item.ExpiryDate).Format("2006-01-02")
}

// MergeRows groups items by merge key, summing quantities and collecting
// constituent ids. Quantity is commutative so input order does not affect the
// resulting set; descriptive fields (category, unit, location) come from the
// first item seen per key and mismatches within a group are not reconciled.
func MergeRows(items []models.InventoryItem, today time.Time, warnDays int) []MergedRow {
	byKey := make(map[string]*MergedRow, len(items))
	order := make([]string, 0, len(items))

	for _, it := range items {
		key := mergeKey(it)
		if row, ok := byKey[key]; ok {
			row.Quantity += it.Quantity
			row.ItemIDs = append(row.ItemIDs, it.ID)
			row.MergedCount++
			continue
		}
		days := DaysUntilExpiry(it.ExpiryDate, today)
		byKey[key] = &MergedRow{
			Name:            it.Name,
			Category:        it.Category,
			Unit:            it.Unit,
			StorageLocation: it.StorageLocation,
			Quantity:        it.Quantity,
			ExpiryDate:      truncateToDay(it.ExpiryDate),
			ItemIDs:         []uint{it.ID},
			MergedCount:     1,
			DaysUntilExpiry: days,
			Bucket:          ClassifyExpiry(days, warnDays),
			ExpiryLabel:     ExpiryLabel(days),
		}
		order = append(order, key)
	}

	rows := make([]MergedRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *byKey[key])
	}
	return rows
}
