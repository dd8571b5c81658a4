package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/omorros/SnapShelf/config"
	"github.com/omorros/SnapShelf/models"

	"gorm.io/gorm"
)

type InventoryService struct{}

func NewInventoryService() *InventoryService {
	return &InventoryService{}
}

// Payload for creating an owned item directly (the atomic path used by
// manual and barcode entry) and for confirming a draft. Direct creation
// requires every field; on confirmation the absent ones fall back to the
// draft before validation.
type ItemPayload struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	StorageLocation string  `json:"storage_location"`
	ExpiryDate      string  `json:"expiry_date"` // "2006-01-02"
}

// ValidateItemPayload enforces the confirmation contract: expiry date and
// category present, quantity positive, vocabulary fields within their closed
// sets. Vocabulary fields are rewritten to the canonical spelling and the
// name is trimmed, so storage never holds two casings of the same value.
// Runs before anything is written.
func ValidateItemPayload(p *ItemPayload) (time.Time, error) {
	if strings.TrimSpace(p.ExpiryDate) == "" {
		return time.Time{}, fmt.Errorf("%w: expiry_date is required", ErrValidation)
	}
	expiry, err := time.Parse("2006-01-02", p.ExpiryDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expiry_date must be YYYY-MM-DD", ErrValidation)
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return time.Time{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(p.Category) == "" {
		return time.Time{}, fmt.Errorf("%w: category is required", ErrValidation)
	}
	category, ok := models.CanonicalCategory(p.Category)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
	}
	p.Category = category
	if p.Quantity <= 0 {
		return time.Time{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	unit, ok := models.CanonicalUnit(p.Unit)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown unit %q", ErrValidation, p.Unit)
	}
	p.Unit = unit
	location, ok := models.CanonicalStorageLocation(p.StorageLocation)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown storage location %q", ErrValidation, p.StorageLocation)
	}
	p.StorageLocation = location
	return expiry, nil
}

// ListItems returns the user's flat inventory snapshot, earliest expiry
// first. Derived views are recomputed from this on every read.
func (s *InventoryService) ListItems(userID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("expiry_date ASC").
		Find(&items).Error
	return items, err
}

// MergedView lists, merges, classifies, filters and orders in one shot.
func (s *InventoryService) MergedView(userID uint, opts ViewOptions) ([]MergedRow, error) {
	if err := ValidateViewOptions(opts); err != nil {
		return nil, err
	}
	items, err := s.ListItems(userID)
	if err != nil {
		return nil, err
	}
	rows := MergeRows(items, time.Now(), ExpiryWarnDays())
	return FilterSortRows(rows, opts), nil
}

// CreateItem is the single-call create-owned-item path, so manual and
// barcode entry do not have to round-trip through a draft.
func (s *InventoryService) CreateItem(userID uint, p ItemPayload) (*models.InventoryItem, error) {
	expiry, err := ValidateItemPayload(&p)
	if err != nil {
		return nil, err
	}
	item := &models.InventoryItem{
		UserID:          userID,
		Name:            p.Name,
		Category:        p.Category,
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		StorageLocation: p.StorageLocation,
		ExpiryDate:      expiry,
		Version:         1,
	}
	if err := config.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Partial update. Nil fields are left alone. ExpectedVersion, when set,
// must match the stored row or the update is rejected — a stale refresh
// cannot clobber a newer mutation.
type ItemUpdate struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Quantity        *float64 `json:"quantity"`
	Unit            *string  `json:"unit"`
	StorageLocation *string  `json:"storage_location"`
	ExpiryDate      *string  `json:"expiry_date"`
	ExpectedVersion *uint    `json:"expected_version"`
}

func (s *InventoryService) getItem(tx *gorm.DB, userID, itemID uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := tx.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: inventory item %d", ErrNotFound, itemID)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *InventoryService) GetItem(userID, itemID uint) (*models.InventoryItem, error) {
	return s.getItem(config.DB, userID, itemID)
}

func (s *InventoryService) UpdateItem(userID, itemID uint, u ItemUpdate) (*models.InventoryItem, error) {
	var updated *models.InventoryItem
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.getItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if u.ExpectedVersion != nil && *u.ExpectedVersion != item.Version {
			return fmt.Errorf("%w: item %d is at version %d, caller had %d",
				ErrConflict, itemID, item.Version, *u.ExpectedVersion)
		}
		if u.Name != nil {
			if strings.TrimSpace(*u.Name) == "" {
				return fmt.Errorf("%w: name cannot be empty", ErrValidation)
			}
			item.Name = strings.TrimSpace(*u.Name)
		}
		if u.Category != nil {
			category, ok := models.CanonicalCategory(*u.Category)
			if !ok {
				return fmt.Errorf("%w: unknown category %q", ErrValidation, *u.Category)
			}
			item.Category = category
		}
		if u.Quantity != nil {
			if *u.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be positive", ErrValidation)
			}
			item.Quantity = *u.Quantity
		}
		if u.Unit != nil {
			unit, ok := models.CanonicalUnit(*u.Unit)
			if !ok {
				return fmt.Errorf("%w: unknown unit %q", ErrValidation, *u.Unit)
			}
			item.Unit = unit
		}
		if u.StorageLocation != nil {
			location, ok := models.CanonicalStorageLocation(*u.StorageLocation)
			if !ok {
				return fmt.Errorf("%w: unknown storage location %q", ErrValidation, *u.StorageLocation)
			}
			item.StorageLocation = location
		}
		if u.ExpiryDate != nil {
			expiry, err := time.Parse("2006-01-02", *u.ExpiryDate)
			if err != nil {
				return fmt.Errorf("%w: expiry_date must be YYYY-MM-DD", ErrValidation)
			}
			item.ExpiryDate = expiry
		}
		item.Version++
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *InventoryService) DeleteItem(userID, itemID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: inventory item %d", ErrNotFound, itemID)
	}
	return nil
}

type ConsumeResult struct {
	Effect    ConsumeEffect         `json:"effect"`
	Remaining float64               `json:"remaining"`
	Item      *models.InventoryItem `json:"item,omitempty"` // nil when removed
}

// Consume applies a consumption amount to one record. When the caller is
// looking at a merged row, the first constituent is the authoritative record;
// consumption is not redistributed across merged batches.
func (s *InventoryService) Consume(userID, itemID uint, amount float64, expectedVersion *uint) (*ConsumeResult, error) {
	var result *ConsumeResult
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.getItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if expectedVersion != nil && *expectedVersion != item.Version {
			return fmt.Errorf("%w: item %d is at version %d, caller had %d",
				ErrConflict, itemID, item.Version, *expectedVersion)
		}
		remaining, effect, err := ApplyConsumption(item.Quantity, amount)
		if err != nil {
			return err
		}
		if effect == EffectRemoved {
			if err := tx.Delete(item).Error; err != nil {
				return err
			}
			result = &ConsumeResult{Effect: EffectRemoved, Remaining: 0}
			return nil
		}
		item.Quantity = remaining
		item.Version++
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		result = &ConsumeResult{Effect: EffectUpdated, Remaining: remaining, Item: item}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
