package routes

import (
	"ecommerce-api/controllers"
	"ecommerce-api/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	categoryCtrl := controllers.NewCategoryController()
	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController()
	reviewCtrl := controllers.NewReviewController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/categories/:slug", categoryCtrl.GetCategoryBySlug)
	router.GET("/products", productCtrl.GetProducts)
	router.GET("/products/:slug", productCtrl.GetProductBySlug)

	router.POST("/carts", cartCtrl.CreateCart)
	router.GET("/carts/:code", cartCtrl.GetCart)
	router.DELETE("/carts/:code", cartCtrl.DeleteCart)
	router.POST("/carts/:code/clear", cartCtrl.ClearCart)
	router.POST("/carts/:code/items", cartCtrl.AddItem)
	router.PATCH("/carts/:code/items/:id", cartCtrl.UpdateItem)
	router.DELETE("/carts/:code/items/:id", cartCtrl.RemoveItem)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.POST("/reviews", reviewCtrl.CreateReview)
	}

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:slug", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:slug", categoryCtrl.DeleteCategory)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:slug", productCtrl.UpdateProduct)
		admin.DELETE("/products/:slug", productCtrl.DeleteProduct)
	}

	router.Static("/uploads", "./uploads")
}
