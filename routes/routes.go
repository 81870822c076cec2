package routes

import (
	"time"

	"integrators-backend/handlers"
	"integrators-backend/middleware"
	"integrators-backend/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store storage.Client) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	catalogHandler := &handlers.CatalogHandler{DB: db}
	orderHandler := &handlers.OrderHandler{DB: db}
	wishlistHandler := &handlers.WishlistHandler{DB: db}
	serviceRequestHandler := &handlers.ServiceRequestHandler{DB: db}
	notificationHandler := &handlers.NotificationHandler{DB: db}
	adminHandler := &handlers.AdminHandler{DB: db, Storage: store}
	seedHandler := &handlers.SeedHandler{DB: db}
	salesHandler := &handlers.SalesHandler{DB: db}

	// Locally stored uploads are served straight from disk.
	if local, ok := store.(*storage.LocalClient); ok {
		r.Static(storage.PublicPathPrefix, local.Dir())
	}

	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/sales/login", authHandler.SalesLogin)
		auth.POST("/admin/login", authHandler.AdminLogin)

		// Catalog hierarchy
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/services/:serviceId/categories", catalogHandler.ListCategories)
		api.GET("/categories/:categoryId/brands", catalogHandler.ListBrands)
		api.GET("/brands/:brandId/models", catalogHandler.ListModels)
		api.GET("/models/:modelId/product", catalogHandler.GetProductByModel)

		// Flattened product views
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/search", catalogHandler.SearchProducts)
		api.GET("/products/deals", catalogHandler.ListDeals)
		api.GET("/products/new-arrivals", catalogHandler.ListNewArrivals)
		api.GET("/products/popular", catalogHandler.ListPopular)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/me", authHandler.Me)

		// Order routes
		protected.POST("/orders", orderHandler.CreateOrder)
		protected.GET("/orders", orderHandler.ListOrders)
		protected.GET("/orders/:id", orderHandler.GetOrder)

		// Wishlist routes
		protected.GET("/wishlist", wishlistHandler.ListWishlist)
		protected.GET("/wishlist/contains", wishlistHandler.Contains)
		protected.POST("/wishlist", wishlistHandler.AddToWishlist)
		protected.DELETE("/wishlist/:productId", wishlistHandler.RemoveFromWishlist)

		// Service request routes
		protected.GET("/service-requests", serviceRequestHandler.ListServiceRequests)
		protected.GET("/service-requests/:id", serviceRequestHandler.GetServiceRequest)
		protected.POST("/service-requests", serviceRequestHandler.CreateServiceRequest)
		protected.PUT("/service-requests/:id/status", serviceRequestHandler.UpdateStatus)

		// Notification routes
		protected.GET("/notifications", notificationHandler.ListNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllRead)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Service management
		admin.POST("/services", adminHandler.CreateService)
		admin.PUT("/services/:id", adminHandler.UpdateService)
		admin.DELETE("/services/:id", adminHandler.DeleteService)

		// Category management
		admin.POST("/categories", adminHandler.CreateCategory)
		admin.PUT("/categories/:id", adminHandler.UpdateCategory)
		admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

		// Brand management
		admin.POST("/brands", adminHandler.CreateBrand)
		admin.PUT("/brands/:id", adminHandler.UpdateBrand)
		admin.DELETE("/brands/:id", adminHandler.DeleteBrand)

		// Model management
		admin.POST("/models", adminHandler.CreateModel)
		admin.PUT("/models/:id", adminHandler.UpdateModel)
		admin.DELETE("/models/:id", adminHandler.DeleteModel)

		// Product management
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)

		// Image upload
		admin.POST("/upload-image", adminHandler.UploadImage)

		// Catalog reseeding
		admin.POST("/seed", seedHandler.StartSeed)
		admin.GET("/seed/:id", seedHandler.GetSeedJob)
	}

	// Sales routes (SALES or ADMIN)
	sales := api.Group("/sales")
	sales.Use(middleware.AuthMiddleware())
	sales.Use(middleware.SalesMiddleware())
	{
		sales.GET("/dashboard/stats", salesHandler.DashboardStats)
		sales.GET("/dashboard/revenue-chart", salesHandler.RevenueChart)
		sales.GET("/dashboard/orders-chart", salesHandler.OrdersChart)
		sales.GET("/dashboard/service-requests-chart", salesHandler.ServiceRequestsChart)

		sales.GET("/orders", salesHandler.ListAllOrders)
		sales.PUT("/orders/:id/status", salesHandler.UpdateOrderStatus)
		sales.GET("/service-requests", salesHandler.ListAllServiceRequests)
		sales.PUT("/service-requests/:id/status", salesHandler.UpdateServiceRequestStatus)
	}
}
