package controllers

import (
	"fmt"
	"net/http"

	"github.com/omorros/SnapShelf/models"
	"github.com/omorros/SnapShelf/services"
	"github.com/omorros/SnapShelf/utils"

	"github.com/gin-gonic/gin"
)

// POST /ingest/image  { "image_base64": "data:image/jpeg;base64,..." }
// Runs detection on the photo and creates one draft per detected item.
// Detections are tentative: nothing reaches the inventory without a confirm.
func IngestImage(c *gin.Context) {
	var req struct {
		ImageBase64     string `json:"image_base64" binding:"required"`
		StorageLocation string `json:"storage_location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	vision, err := services.NewVisionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	detected, err := vision.DetectItems(req.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(detected) == 0 {
		c.JSON(http.StatusOK, gin.H{"drafts": []any{}, "message": "no food items detected"})
		return
	}

	// best effort; drafts are still useful without the capture image
	imageURL, err := utils.UploadCaptureImage(req.ImageBase64)
	if err != nil {
		imageURL = ""
	}

	userID := c.GetUint("userID")
	drafts := make([]any, 0, len(detected))
	svc := draftSvc()
	for _, d := range detected {
		conf := d.Confidence
		draft, err := svc.CreateDraft(userID, services.DraftPayload{
			Name:            d.Name,
			Category:        d.Category,
			Location:        req.StorageLocation,
			Source:          models.SourceImage,
			ConfidenceScore: &conf,
			ImageURL:        imageURL,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		drafts = append(drafts, draft)
	}
	c.JSON(http.StatusCreated, gin.H{"drafts": drafts})
}

// POST /ingest/barcode  { "barcode": "3017620422003" }
// The client decodes the barcode on-device; the backend looks the product up
// and creates a draft. A barcode missing from the database still produces a
// draft shell for manual completion.
func IngestBarcode(c *gin.Context) {
	var req struct {
		Barcode         string `json:"barcode" binding:"required"`
		StorageLocation string `json:"storage_location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	product, err := services.NewOpenFoodFactsService().LookupProduct(req.Barcode)
	if err != nil {
		respondError(c, err)
		return
	}

	payload := services.DraftPayload{
		Source:   models.SourceBarcode,
		Barcode:  req.Barcode,
		Location: req.StorageLocation,
	}
	var message string
	if product != nil {
		payload.Name = product.Name
		payload.Category = product.Category
		payload.Brand = product.Brand
		payload.ImageURL = product.ImageURL
	} else {
		payload.Name = fmt.Sprintf("Product %s", req.Barcode)
		message = fmt.Sprintf("Barcode %s not found in database. Please enter product details manually.", req.Barcode)
	}

	draft, err := draftSvc().CreateDraft(c.GetUint("userID"), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"draft": draft, "message": message})
}
