package controllers

import (
	"net/http"

	"github.com/omorros/SnapShelf/config"
	"github.com/omorros/SnapShelf/models"
	"github.com/omorros/SnapShelf/services"
	"github.com/omorros/SnapShelf/utils"

	"github.com/gin-gonic/gin"
)

// GET /alerts
func ListAlerts(c *gin.Context) {
	var alerts []models.Alert
	err := config.DB.
		Where("user_id = ?", c.GetUint("userID")).
		Order("created_at DESC").
		Limit(100).
		Find(&alerts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// POST /admin/expiry-sweep
// Scans for items in or past the warning window and notifies their owners.
// Meant to be hit by a scheduler once a day.
func RunExpirySweep(c *gin.Context) {
	mailer, err := utils.NewMailer()
	if err != nil {
		mailer = nil // alerts still go out without mail
	}
	result, err := services.RunExpirySweep(mailer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
