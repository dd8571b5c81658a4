package models

import (
	"time"

	"gorm.io/gorm"
)

// An owned record. Quantity stays strictly positive for as long as the row
// exists; consuming it down to zero deletes the row instead. Version is bumped
// on every mutation so a stale client update can be rejected.
type InventoryItem struct {
	gorm.Model
	UserID          uint      `gorm:"index" json:"user_id"`
	Name            string    `gorm:"not null" json:"name"`
	Category        string    `gorm:"not null" json:"category"`
	Quantity        float64   `gorm:"not null" json:"quantity"`
	Unit            string    `gorm:"not null" json:"unit"`
	StorageLocation string    `gorm:"not null" json:"storage_location"`
	ExpiryDate      time.Time `gorm:"type:date;not null;index" json:"expiry_date"`
	Version         uint      `gorm:"not null;default:1" json:"version"`
}
