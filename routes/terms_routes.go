package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/controllers"
)

// Read endpoints live on the public group (see SetupRoutes); only the
// administrative mutations require authentication.
func SetupTermsRoutes(protected *gin.RouterGroup, termsController *controllers.TermsController) {
	terms := protected.Group("/terms")
	{
		terms.POST("", termsController.CreateNewVersion)
		terms.PATCH("/:id/toggle-delete", termsController.ToggleSoftDelete)
		terms.DELETE("/:id", termsController.HardDeleteVersion)
	}
}
