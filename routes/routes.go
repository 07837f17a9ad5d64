package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/config"
	"github.com/petcare-hub/api-go/controllers"
	"github.com/petcare-hub/api-go/middleware"
	"github.com/petcare-hub/api-go/services"
	"github.com/petcare-hub/api-go/storage"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	images := storage.NewS3Store(config.GetStorageConfig())

	// Initialize controllers
	galleryController := controllers.NewGalleryController(services.NewGalleryService(db, images))
	interactionController := controllers.NewInteractionController(services.NewInteractionService(db))
	reviewController := controllers.NewReviewController(services.NewReviewService(db, images))
	termsController := controllers.NewTermsController(services.NewTermsService(db))
	hospitalController := controllers.NewHospitalController(services.NewHospitalService(db, images))

	// Public routes
	public := r.Group("/api")
	{
		public.GET("/terms/current", termsController.GetCurrentTerms)
		public.GET("/terms/versions", termsController.GetVersionHistory)
		public.GET("/terms/versions/:version", termsController.GetVersion)
		public.GET("/terms/effective", termsController.GetEffectiveTerms)
		public.GET("/terms/compare", termsController.CompareVersions)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupGalleryRoutes(protected, galleryController, interactionController)
		SetupReviewRoutes(protected, reviewController, hospitalController)
		SetupTermsRoutes(protected, termsController)
	}
}
