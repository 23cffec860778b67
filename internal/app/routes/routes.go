package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arnab/campusgate/internal/app/controllers"
	"github.com/arnab/campusgate/internal/app/models/dto"
	"github.com/arnab/campusgate/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	applicationController *controllers.ApplicationController,
	collegeController *controllers.CollegeController,
	noticeController *controllers.NoticeController,
	contactController *controllers.ContactController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	v1.POST("/signup", authController.Signup)
	v1.POST("/login", authController.Login)
	v1.POST("/logout", authController.Logout)

	// --- Public catalog and inquiry routes ---
	v1.GET("/colleges", collegeController.List)

	contacts := v1.Group("/contacts")
	{
		contacts.POST("", contactController.Submit)
		contacts.GET("", contactController.List)
	}

	// Notice list works without a token; a valid admin token widens the
	// result to include drafts
	v1.GET("/notice", authMiddleware.OptionalJWTAuth(), noticeController.List)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		apply := authenticated.Group("/apply")
		{
			apply.POST("", applicationController.Submit)
			apply.DELETE("", applicationController.Delete)
			apply.POST("/:id/documents", applicationController.AttachDocuments)

			// Admin-only full listing
			applyAdmin := apply.Group("")
			applyAdmin.Use(authMiddleware.AdminRequired())
			{
				applyAdmin.GET("", applicationController.ListAll)
			}
		}

		authenticated.GET("/application/:userId", applicationController.ListByUser)

		// Admin-only catalog and notice management
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.POST("/colleges", collegeController.Create)
			admin.PUT("/colleges", collegeController.Update)
			admin.DELETE("/colleges", collegeController.Delete)

			admin.POST("/notice", noticeController.Create)
			admin.PUT("/notice", noticeController.Update)
			admin.DELETE("/notice", noticeController.Delete)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
