package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/controllers"
)

func SetupReviewRoutes(protected *gin.RouterGroup, reviewController *controllers.ReviewController, hospitalController *controllers.HospitalController) {
	hospitals := protected.Group("/hospitals")
	{
		hospitals.GET("/:hospitalId", hospitalController.GetHospital)
		hospitals.POST("/:hospitalId/reviews", reviewController.CreateReview)
		hospitals.GET("/:hospitalId/reviews", reviewController.GetHospitalReviews)
		hospitals.GET("/:hospitalId/stats", reviewController.GetHospitalStats)
		hospitals.GET("/:hospitalId/can-review", reviewController.CanUserReview)
		hospitals.POST("/:hospitalId/images", hospitalController.AddImages)
		hospitals.GET("/:hospitalId/images", hospitalController.ListImages)
	}

	reviews := protected.Group("/reviews")
	{
		reviews.GET("", reviewController.GetReviews)
		reviews.GET("/:id", reviewController.GetReviewByID)
		reviews.PATCH("/:id", reviewController.UpdateReview)
		reviews.DELETE("/:id", reviewController.DeleteReview)
		reviews.DELETE("/:id/hard", reviewController.HardDeleteReview)
		reviews.POST("/:id/report", reviewController.ReportReview)
		reviews.PATCH("/:id/toggle-delete", reviewController.ToggleSoftDelete)
	}

	users := protected.Group("/users")
	{
		users.GET("/me/reviews", reviewController.GetUserReviews)
	}

	protected.DELETE("/hospital-images/:id", hospitalController.DeleteImage)
}
