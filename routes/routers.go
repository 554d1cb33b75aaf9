package routes

import (
	"github.com/gin-gonic/gin"

	"eldercare/controllers"
	"eldercare/middleware"
)

// SetupRoutes mounts every API endpoint on the router
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(middleware.SessionMiddleware())

	// rooms: public reads, admin mutations
	api.GET("/rooms", controllers.GetAllRooms)
	api.POST("/rooms/compare", controllers.CompareRooms)
	api.GET("/rooms/search", controllers.SearchRooms)
	api.GET("/rooms/suggest-city", controllers.SuggestCity)
	api.GET("/rooms/:id", controllers.GetRoomDetail)
	api.POST("/rooms", middleware.AdminAuthMiddleware(), controllers.CreateRoom)
	api.PUT("/rooms/:id", middleware.AdminAuthMiddleware(), controllers.UpdateRoom)
	api.PUT("/rooms/:id/status", middleware.AdminAuthMiddleware(), controllers.ChangeRoomStatus)
	api.POST("/rooms/seed", controllers.SeedRooms)

	// blogs
	api.GET("/blogs", controllers.GetAllBlogs)
	api.GET("/blogs/slug/:slug", controllers.GetBlogBySlug)
	api.GET("/blogs/:id", controllers.GetBlogByID)
	api.GET("/blogs/admin/my-blogs", middleware.AdminAuthMiddleware(), controllers.GetMyBlogs)
	api.POST("/blogs", middleware.AdminAuthMiddleware(), controllers.CreateBlog)
	api.POST("/blogs/upload", middleware.AdminAuthMiddleware(), controllers.UploadBlogImage)
	api.PUT("/blogs/:id", middleware.AdminAuthMiddleware(), controllers.UpdateBlog)
	api.DELETE("/blogs/:id", middleware.AdminAuthMiddleware(), controllers.DeleteBlog)

	// contacts
	api.POST("/contacts/submit", controllers.SubmitContact)
	api.GET("/contacts/test-email", middleware.AdminAuthMiddleware(), controllers.TestEmail)

	// payments
	api.POST("/payments/submit", controllers.SubmitPayment)
	api.GET("/payments/transaction/:transactionId", controllers.GetPaymentByTransaction)
	api.GET("/payments/:id", controllers.GetPaymentByID)

	// auth and user accounts
	api.POST("/auth/register", controllers.Register)
	api.POST("/auth/login", controllers.Login)
	api.POST("/auth/google", controllers.GoogleAuth)
	api.GET("/users/profile", middleware.AuthMiddleware(), controllers.GetProfile)
	api.PUT("/users/profile", middleware.AuthMiddleware(), controllers.UpdateProfile)
	api.DELETE("/users/profile", middleware.AuthMiddleware(), controllers.DeactivateAccount)
	api.PUT("/users/shortlist", middleware.AuthMiddleware(), controllers.SaveShortlist)
	api.GET("/users/shortlist", middleware.AuthMiddleware(), controllers.GetShortlist)

	// back office
	api.POST("/admin/login", controllers.AdminLogin)
	admin := api.Group("/admin", middleware.AdminAuthMiddleware())
	admin.GET("/profile", controllers.GetAdminProfile)
	admin.GET("/dashboard", controllers.GetDashboard)
	admin.GET("/contacts", controllers.GetAllContacts)
	admin.PUT("/contacts/:id/status", controllers.UpdateContactStatus)
	admin.DELETE("/contacts/:id", controllers.DeleteContact)
	admin.GET("/payments", controllers.GetAllPayments)
	admin.PUT("/payments/:id/status", controllers.UpdatePaymentStatus)
	admin.GET("/users", controllers.GetAllUsers)
}
