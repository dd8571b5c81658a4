package models

import (
	"time"

	"gorm.io/gorm"
)

// How a draft came to exist.
const (
	SourceManual  = "manual"
	SourceImage   = "image"
	SourceBarcode = "barcode"
)

// A tentative item awaiting user review. Confirming or deleting a draft
// are terminal: the row is gone either way.
type DraftItem struct {
	gorm.Model
	UserID          uint       `gorm:"index" json:"user_id"`
	Name            string     `gorm:"not null" json:"name"`
	Quantity        *float64   `json:"quantity"`
	Unit            string     `json:"unit"`
	Category        string     `json:"category"`
	ExpirationDate  *time.Time `json:"expiration_date"`
	Location        string     `json:"location"`
	Source          string     `gorm:"size:16;not null" json:"source"` // "manual" | "image" | "barcode"
	ConfidenceScore *float64   `json:"confidence_score"`               // 0–1, detection only
	Barcode         string     `json:"barcode,omitempty"`
	Brand           string     `json:"brand,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
}
