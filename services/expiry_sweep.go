package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/omorros/SnapShelf/config"
	"github.com/omorros/SnapShelf/models"
	"github.com/omorros/SnapShelf/utils"
)

// SweepResult summarizes one pass over the inventory.
type SweepResult struct {
	UsersNotified int `json:"users_notified"`
	ItemsExpiring int `json:"items_expiring"`
	ItemsExpired  int `json:"items_expired"`
}

// RunExpirySweep scans every user's inventory, emits an alert per item that
// is expired or inside the warning window, and sends each affected user a
// digest email. Idempotence is the caller's problem: the sweep is meant to
// run once a day.
func RunExpirySweep(mailer *utils.Mailer) (*SweepResult, error) {
	warnDays := ExpiryWarnDays()
	today := time.Now()
	horizon := truncateToDay(today).AddDate(0, 0, warnDays)

	var items []models.InventoryItem
	if err := config.DB.
		Where("expiry_date <= ?", horizon).
		Order("user_id, expiry_date ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	res := &SweepResult{}
	byUser := make(map[uint][]models.InventoryItem)
	for _, it := range items {
		byUser[it.UserID] = append(byUser[it.UserID], it)
	}

	for userID, userItems := range byUser {
		var lines []string
		for _, it := range userItems {
			days := DaysUntilExpiry(it.ExpiryDate, today)
			label := ExpiryLabel(days)
			switch ClassifyExpiry(days, warnDays) {
			case BucketExpired:
				res.ItemsExpired++
				EmitAlert(userID, "expired", fmt.Sprintf("%s has expired", it.Name))
			case BucketExpiring:
				res.ItemsExpiring++
				EmitAlert(userID, "expiring", fmt.Sprintf("%s: %s", it.Name, label))
			}
			lines = append(lines, fmt.Sprintf("- %s (%g %s): %s", it.Name, it.Quantity, it.Unit, label))
		}

		if mailer != nil {
			user, err := findUserByID(userID)
			if err != nil {
				log.Printf("expiry sweep: skipping mail for user %d: %v", userID, err)
				continue
			}
			if err := mailer.SendExpiryDigest(user.Email, strings.Join(lines, "\n")); err != nil {
				log.Printf("expiry sweep: mail to %s failed: %v", user.Email, err)
			}
		}
		res.UsersNotified++
	}
	return res, nil
}

func findUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
