package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/omorros/SnapShelf/services"

	"github.com/gin-gonic/gin"
)

func recipeSvc() *services.RecipeService {
	return services.NewRecipeService(invSvc())
}

// POST /recipes/generate
func GenerateRecipes(c *gin.Context) {
	var body services.GenerationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := recipeSvc().GenerateRecipes(c.GetUint("userID"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /recipes/expiring-ingredients?days=N
// Server-side equivalent of auto-mode priority selection.
func ExpiringIngredients(c *gin.Context) {
	days := services.RecipePriorityDays()
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
			return
		}
		days = n
	}

	items, err := invSvc().ListItems(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.SelectExpiring(items, time.Now(), days))
}

// POST /recipes/saved
func SaveRecipe(c *gin.Context) {
	var body services.SaveRecipeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := recipeSvc().SaveRecipe(c.GetUint("userID"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GET /recipes/saved
func ListSavedRecipes(c *gin.Context) {
	recipes, err := recipeSvc().ListSavedRecipes(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// DELETE /recipes/saved/:id
func DeleteSavedRecipe(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := recipeSvc().DeleteSavedRecipe(c.GetUint("userID"), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
