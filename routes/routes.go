package routes

import (
	"github.com/omorros/SnapShelf/controllers"
	"github.com/omorros/SnapShelf/middlewares"
	"github.com/omorros/SnapShelf/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything else requires a bearer token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)

		drafts := api.Group("/drafts")
		{
			drafts.GET("", controllers.ListDrafts)
			drafts.POST("", controllers.CreateDraft)
			drafts.PATCH("/:id", controllers.UpdateDraft)
			drafts.DELETE("/:id", controllers.DeleteDraft)
			drafts.POST("/:id/confirm", controllers.ConfirmDraft)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", controllers.ListInventory)
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.PATCH("/:id", controllers.UpdateInventoryItem)
			inventory.DELETE("/:id", controllers.DeleteInventoryItem)
			inventory.POST("/consume", controllers.ConsumeInventoryItem)
		}

		ingest := api.Group("/ingest")
		{
			ingest.POST("/image", controllers.IngestImage)
			ingest.POST("/barcode", controllers.IngestBarcode)
		}

		recipes := api.Group("/recipes")
		{
			recipes.POST("/generate", controllers.GenerateRecipes)
			recipes.GET("/expiring-ingredients", controllers.ExpiringIngredients)
			recipes.POST("/saved", controllers.SaveRecipe)
			recipes.GET("/saved", controllers.ListSavedRecipes)
			recipes.DELETE("/saved/:id", controllers.DeleteSavedRecipe)
		}

		api.GET("/alerts", controllers.ListAlerts)
		api.POST("/devices", controllers.RegisterDevice)
		api.POST("/admin/expiry-sweep", controllers.RunExpirySweep)

		rc := controllers.NewRealtimeController(rt)
		api.GET("/ws/alerts", rc.AlertsWS)
	}

	return r
}
