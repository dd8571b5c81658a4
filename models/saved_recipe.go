package models

import (
	"time"

	"gorm.io/gorm"
)

// A recipe the user bookmarked. Ingredients and instructions are stored as
// JSON blobs; they are opaque to everything but the recipes API.
type SavedRecipe struct {
	gorm.Model
	UserID             uint   `gorm:"index" json:"user_id"`
	Title              string `gorm:"not null" json:"title"`
	Description        string `gorm:"type:text" json:"description"`
	CookingTimeMinutes int    `json:"cooking_time_minutes"`
	Servings           int    `json:"servings"`
	Difficulty         string `gorm:"size:16" json:"difficulty"` // "easy" | "medium" | "hard"
	Ingredients        string `gorm:"type:text" json:"-"`        // JSON-encoded []RecipeIngredient
	Instructions       string `gorm:"type:text" json:"-"`        // JSON-encoded []string
	Tips               string `gorm:"type:text" json:"tips,omitempty"`
	Reason             string `gorm:"type:text" json:"recommendation_reason,omitempty"`
	SavedAt            time.Time `json:"saved_at"`
}
