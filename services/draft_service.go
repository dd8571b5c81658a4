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

type DraftService struct{}

func NewDraftService() *DraftService {
	return &DraftService{}
}

// Fields accepted when creating or editing a draft. Everything except the
// name may be unknown at this stage; the confirmation payload fills the gaps.
type DraftPayload struct {
	Name            string   `json:"name"`
	Quantity        *float64 `json:"quantity"`
	Unit            string   `json:"unit"`
	Category        string   `json:"category"`
	ExpirationDate  *string  `json:"expiration_date"` // "2006-01-02"
	Location        string   `json:"location"`
	Source          string   `json:"source"`
	ConfidenceScore *float64 `json:"confidence_score"`
	Barcode         string   `json:"barcode"`
	Brand           string   `json:"brand"`
	ImageURL        string   `json:"image_url"`
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("%w: expiration_date must be YYYY-MM-DD", ErrValidation)
	}
	return &t, nil
}

func (s *DraftService) CreateDraft(userID uint, p DraftPayload) (*models.DraftItem, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	source := p.Source
	if source == "" {
		source = models.SourceManual
	}
	switch source {
	case models.SourceManual, models.SourceImage, models.SourceBarcode:
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrValidation, source)
	}
	expiry, err := parseOptionalDate(p.ExpirationDate)
	if err != nil {
		return nil, err
	}
	draft := &models.DraftItem{
		UserID:          userID,
		Name:            strings.TrimSpace(p.Name),
		Quantity:        p.Quantity,
		Unit:            p.Unit,
		Category:        p.Category,
		ExpirationDate:  expiry,
		Location:        p.Location,
		Source:          source,
		ConfidenceScore: p.ConfidenceScore,
		Barcode:         p.Barcode,
		Brand:           p.Brand,
		ImageURL:        p.ImageURL,
	}
	if err := config.DB.Create(draft).Error; err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DraftService) ListDrafts(userID uint) ([]models.DraftItem, error) {
	var drafts []models.DraftItem
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&drafts).Error
	return drafts, err
}

func (s *DraftService) getDraft(tx *gorm.DB, userID, draftID uint) (*models.DraftItem, error) {
	var draft models.DraftItem
	err := tx.Where("id = ? AND user_id = ?", draftID, userID).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: draft %d", ErrNotFound, draftID)
	}
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// UpdateDraft patches the provided fields only, for pre-confirmation edits.
func (s *DraftService) UpdateDraft(userID, draftID uint, p DraftPayload) (*models.DraftItem, error) {
	draft, err := s.getDraft(config.DB, userID, draftID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Name) != "" {
		draft.Name = strings.TrimSpace(p.Name)
	}
	if p.Quantity != nil {
		draft.Quantity = p.Quantity
	}
	if p.Unit != "" {
		draft.Unit = p.Unit
	}
	if p.Category != "" {
		draft.Category = p.Category
	}
	if p.Location != "" {
		draft.Location = p.Location
	}
	expiry, err := parseOptionalDate(p.ExpirationDate)
	if err != nil {
		return nil, err
	}
	if expiry != nil {
		draft.ExpirationDate = expiry
	}
	if err := config.DB.Save(draft).Error; err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DraftService) DeleteDraft(userID, draftID uint) error {
	res := config.DB.Where("id = ? AND user_id = ?", draftID, userID).Delete(&models.DraftItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: draft %d", ErrNotFound, draftID)
	}
	return nil
}

// confirmationPayload layers the caller's overrides on top of the draft's
// guesses. Name, quantity, unit and storage location fall back to the draft
// when the payload omits them; expiry date and category must come from the
// payload and are left to validation.
func confirmationPayload(draft *models.DraftItem, p ItemPayload) ItemPayload {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = draft.Name
	}
	if p.Quantity == 0 && draft.Quantity != nil {
		p.Quantity = *draft.Quantity
	}
	if p.Unit == "" {
		p.Unit = draft.Unit
	}
	if p.StorageLocation == "" {
		p.StorageLocation = draft.Location
	}
	return p
}

// ConfirmDraft promotes a draft to an owned inventory item. The payload only
// has to carry what the draft could not guess: expiry date and category are
// required, everything else falls back to the draft's fields unless the
// payload overrides them. The merged result must pass full item validation
// before anything is written. Create and retire happen in one transaction, so
// a confirmed draft can never linger and a failed confirm never leaks an item.
func (s *DraftService) ConfirmDraft(userID, draftID uint, p ItemPayload) (*models.InventoryItem, error) {
	var item *models.InventoryItem
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		draft, err := s.getDraft(tx, userID, draftID)
		if err != nil {
			return err
		}
		merged := confirmationPayload(draft, p)
		expiry, err := ValidateItemPayload(&merged)
		if err != nil {
			return err
		}
		item = &models.InventoryItem{
			UserID:          userID,
			Name:            merged.Name,
			Category:        merged.Category,
			Quantity:        merged.Quantity,
			Unit:            merged.Unit,
			StorageLocation: merged.StorageLocation,
			ExpiryDate:      expiry,
			Version:         1,
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Delete(draft).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
