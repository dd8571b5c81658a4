package controllers

import (
	"net/http"

	"github.com/omorros/SnapShelf/config"
	"github.com/omorros/SnapShelf/services"

	"github.com/gin-gonic/gin"
)

// POST /devices — registers a device token for expiry push notifications.
func RegisterDevice(c *gin.Context) {
	var body services.RegisterDeviceReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ps, err := services.NewPushService(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	dev, err := ps.RegisterDevice(c.GetUint("userID"), body.Platform, body.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dev)
}
