// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/atelierkado/boutique-backend/internal/config"
	"github.com/atelierkado/boutique-backend/internal/handlers"
	"github.com/atelierkado/boutique-backend/internal/middleware"
	"github.com/atelierkado/boutique-backend/internal/services"
	"github.com/atelierkado/boutique-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	catalogService := services.NewCatalogService(db, storageService, cfg)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(catalogService)
	variantHandler := handlers.NewVariantHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// User routes
		users := v1.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.ListProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)

			// Authenticated routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", middleware.UploadRateLimit(), productHandler.CreateProduct)
				protected.PUT("/:id", middleware.UploadRateLimit(), productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Variant routes
		tshirts := v1.Group("/tshirts")
		{
			tshirts.GET("", variantHandler.ListTShirts)
			tshirts.POST("", middleware.AuthRequired(), variantHandler.CreateTShirt)
			tshirts.PUT("/:id", middleware.AuthRequired(), variantHandler.CustomizeTShirt)
		}

		mugs := v1.Group("/mugs")
		{
			mugs.GET("", variantHandler.ListMugs)
			mugs.POST("", middleware.AuthRequired(), variantHandler.CreateMug)
			mugs.PUT("/:id", middleware.AuthRequired(), variantHandler.CustomizeMug)
		}

		jewelry := v1.Group("/jewelry")
		{
			jewelry.GET("", variantHandler.ListJewelry)
			jewelry.POST("", middleware.AuthRequired(), variantHandler.CreateJewelry)
			jewelry.PUT("/:id", middleware.AuthRequired(), variantHandler.CustomizeJewelry)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.UpdateOrderStatus)
		}
	}

	// Static file serving for locally stored images
	if cfg.AWS.AccessKeyID == "" {
		r.Static("/uploads", cfg.Upload.Dir)
	}

	return r, nil
}
