package controllers

import (
	"net/http"
	"strconv"

	"github.com/omorros/SnapShelf/services"

	"github.com/gin-gonic/gin"
)

func draftSvc() *services.DraftService {
	return services.NewDraftService()
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// GET /drafts
func ListDrafts(c *gin.Context) {
	drafts, err := draftSvc().ListDrafts(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drafts)
}

// POST /drafts
func CreateDraft(c *gin.Context) {
	var body services.DraftPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := draftSvc().CreateDraft(c.GetUint("userID"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// PATCH /drafts/:id
func UpdateDraft(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body services.DraftPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := draftSvc().UpdateDraft(c.GetUint("userID"), id, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DELETE /drafts/:id
func DeleteDraft(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := draftSvc().DeleteDraft(c.GetUint("userID"), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /drafts/:id/confirm
func ConfirmDraft(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body services.ItemPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := draftSvc().ConfirmDraft(c.GetUint("userID"), id, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
