package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/petcare-hub/api-go/controllers"
)

func SetupGalleryRoutes(protected *gin.RouterGroup, galleryController *controllers.GalleryController, interactionController *controllers.InteractionController) {
	posts := protected.Group("/posts")
	{
		posts.POST("", galleryController.CreatePost)
		posts.GET("", galleryController.GetPosts)
		posts.GET("/:id", galleryController.GetPostDetail)
		posts.PATCH("/:id", galleryController.UpdatePost)
		posts.DELETE("/:id", galleryController.DeletePost)
		posts.POST("/:id/like", interactionController.ToggleLike)
		posts.POST("/:id/comments", galleryController.AddComment)
		posts.GET("/:id/comments", galleryController.GetPostComments)
	}

	comments := protected.Group("/comments")
	{
		comments.GET("/:id/replies", interactionController.GetCommentReplies)
		comments.DELETE("/:id", galleryController.DeleteComment)
		comments.POST("/:id/report", interactionController.ReportComment)
	}
}
