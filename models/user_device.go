package models

import "time"

// UserDevice is one app install registered for expiry push alerts. The raw
// FCM token never leaves the registration call; only its hash is kept, so
// re-registering the same device updates the row instead of duplicating it.
type UserDevice struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index"`
	Platform    string    `gorm:"size:16"` // "android" | "ios"
	TokenHash   string    `gorm:"size:64;index"`
	EndpointARN string    `gorm:"size:256"`
	Enabled     bool      `gorm:"default:true"`
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
