package controllers

import (
	"net/http"

	"github.com/omorros/SnapShelf/services"

	"github.com/gin-gonic/gin"
)

func invSvc() *services.InventoryService {
	return services.NewInventoryService()
}

// GET /inventory?q=&category=&bucket=&sort=&raw=
// Default response is the merged, filtered, ordered view; raw=true returns
// the flat snapshot for clients that need individual records.
func ListInventory(c *gin.Context) {
	userID := c.GetUint("userID")

	if c.Query("raw") == "true" {
		items, err := invSvc().ListItems(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	rows, err := invSvc().MergedView(userID, services.ViewOptions{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Bucket:   c.Query("bucket"),
		SortKey:  c.Query("sort"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /inventory — the atomic create-owned-item path.
func CreateInventoryItem(c *gin.Context) {
	var body services.ItemPayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := invSvc().CreateItem(c.GetUint("userID"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PATCH /inventory/:id
func UpdateInventoryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var body services.ItemUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := invSvc().UpdateItem(c.GetUint("userID"), id, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type consumeInput struct {
	// Either item_id or item_ids may be set. A merged row sends its
	// item_ids; consumption lands on the first constituent only.
	ItemID          uint    `json:"item_id"`
	ItemIDs         []uint  `json:"item_ids"`
	Amount          float64 `json:"amount" binding:"required"`
	ExpectedVersion *uint   `json:"expected_version"`
}

// POST /inventory/consume
func ConsumeInventoryItem(c *gin.Context) {
	var body consumeInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	itemID := body.ItemID
	if itemID == 0 && len(body.ItemIDs) > 0 {
		itemID = body.ItemIDs[0]
	}
	if itemID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}
	result, err := invSvc().Consume(c.GetUint("userID"), itemID, body.Amount, body.ExpectedVersion)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DELETE /inventory/:id
func DeleteInventoryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := invSvc().DeleteItem(c.GetUint("userID"), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
