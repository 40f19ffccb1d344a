package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/roycode360/theglamstore-sub001/controllers"
	"github.com/roycode360/theglamstore-sub001/database"
	"github.com/roycode360/theglamstore-sub001/middleware"
	"github.com/roycode360/theglamstore-sub001/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}
	//seeding admin user
	ctx := context.Background()
	usersCol := database.OpenCollection("users")
	if err := utils.SeedAdminUser(ctx, usersCol); err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	v := utils.NewImageValidator()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.POST("/auth/login", controllers.Login())
	r.POST("/auth/register", controllers.Register())
	r.POST("/auth/refresh", controllers.Refresh())
	r.POST("/auth/logout", controllers.Logout())

	r.GET("/products", controllers.GetProducts())
	r.GET("/products/featured", controllers.GetFeaturedProducts())
	r.GET("/products/slug/:slug", controllers.GetProductBySlug())
	r.GET("/products/:id/reviews", controllers.GetProductReviews())
	r.POST("/products/:id/reviews", controllers.CreateProductReview())

	r.GET("/categories", controllers.GetCategories())
	r.GET("/categories/tree", controllers.GetCategoryTree())
	r.GET("/categories/:id", controllers.GetCategory())
	r.GET("/categories/slug/:slug", controllers.GetCategory())

	r.POST("/coupons/validate", controllers.ValidateCoupon())
	r.POST("/analytics/events", controllers.RecordEvent())

	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/cart", controllers.GetCart())
		me.POST("/cart", controllers.AddToCart())
		me.PATCH("/cart/:id", controllers.UpdateCartItem())
		me.DELETE("/cart/:id", controllers.RemoveCartItem())
		me.DELETE("/cart", controllers.ClearCart())

		me.GET("/wishlist", controllers.GetWishlist())
		me.POST("/wishlist", controllers.AddToWishlist())
		me.DELETE("/wishlist/:productId", controllers.RemoveFromWishlist())

		me.POST("/orders", controllers.CreateOrder())
		me.GET("/orders", controllers.GetMyOrders())
		me.GET("/orders/:id", controllers.GetMyOrder())
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		admin.POST("/products/add", controllers.AddProduct(v))
		admin.PATCH("/products/update/:id", controllers.UpdateProduct(v))
		admin.DELETE("/products/:id", controllers.DeleteProduct())

		admin.POST("/categories", controllers.AddCategory())
		admin.PATCH("/categories/:id", controllers.UpdateCategory())
		admin.DELETE("/categories/:id", controllers.DeleteCategory())

		admin.GET("/orders", controllers.AdminGetOrders())
		admin.GET("/orders/:id", controllers.AdminGetOrder())
		admin.PATCH("/orders/:id/status", controllers.AdminUpdateOrderStatus())

		admin.POST("/coupons", controllers.AdminCreateCoupon())
		admin.GET("/coupons", controllers.AdminGetCoupons())
		admin.PATCH("/coupons/:id", controllers.AdminUpdateCoupon())
		admin.DELETE("/coupons/:id", controllers.AdminDeleteCoupon())

		admin.GET("/reviews", controllers.AdminGetReviews())
		admin.PATCH("/reviews/:id/status", controllers.AdminModerateReview())
		admin.DELETE("/reviews/:id", controllers.AdminDeleteReview())

		admin.GET("/analytics/summary", controllers.AdminGetAnalyticsSummary())

		admin.POST("/users", controllers.CreateUser())
		admin.POST("/users/me/password", controllers.ChangeMyPassword())
	}
	// Start server on port 8080 (default)
	r.Run()
}
