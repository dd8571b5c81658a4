package services

import (
	"fmt"
	"sort"
	"strings"
)

// Filters and ordering applied to the merged view. Zero values are identity
// filters; the zero SortKey sorts by expiry.
type ViewOptions struct {
	Query    string // case-insensitive substring of name
	Category string // exact category, "" for all
	Bucket   string // "all" | "expiring" | "expired"
	SortKey  string // "expiry" | "name" | "category"
}

const (
	SortByExpiry   = "expiry"
	SortByName     = "name"
	SortByCategory = "category"

	BucketFilterAll = "all"
)

// ValidateViewOptions rejects unknown bucket filters and sort keys so typos
// do not silently degrade into the defaults.
func ValidateViewOptions(opts ViewOptions) error {
	switch opts.Bucket {
	case "", BucketFilterAll, string(BucketExpiring), string(BucketExpired):
	default:
		return fmt.Errorf("%w: unknown bucket filter %q", ErrValidation, opts.Bucket)
	}
	switch opts.SortKey {
	case "", SortByExpiry, SortByName, SortByCategory:
	default:
		return fmt.Errorf("%w: unknown sort key %q", ErrValidation, opts.SortKey)
	}
	return nil
}

// FilterSortRows applies the independent filters, then one total order.
// Filters commute with each other; an empty result is a valid result.
func FilterSortRows(rows []MergedRow, opts ViewOptions) []MergedRow {
	out := make([]MergedRow, 0, len(rows))
	query := strings.ToLower(strings.TrimSpace(opts.Query))
	for _, r := range rows {
		if query != "" && !strings.Contains(strings.ToLower(r.Name), query) {
			continue
		}
		if opts.Category != "" && !strings.EqualFold(r.Category, opts.Category) {
			continue
		}
		if opts.Bucket != "" && opts.Bucket != BucketFilterAll && string(r.Bucket) != opts.Bucket {
			continue
		}
		out = append(out, r)
	}

	switch opts.SortKey {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return NormalizeName(out[i].Name) < NormalizeName(out[j].Name)
		})
	case SortByCategory:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Category != out[j].Category {
				return out[i].Category < out[j].Category
			}
			return out[i].ExpiryDate.Before(out[j].ExpiryDate)
		})
	default: // expiry
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ExpiryDate.Before(out[j].ExpiryDate)
		})
	}
	return out
}
