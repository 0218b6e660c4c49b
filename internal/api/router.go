package api

import (
	"net/http"
	"time"

	"github.com/EasWay/bina-mobile/internal/handler"
	"github.com/EasWay/bina-mobile/internal/middleware"
	"github.com/EasWay/bina-mobile/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter wires stores, handlers, and middleware onto a Gin engine.
func NewRouter(db *gorm.DB, logger *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	userStore := store.NewUserStore(db)
	productStore := store.NewProductStore(db)
	saleStore := store.NewSaleStore(db)
	customerStore := store.NewCustomerStore(db)

	authHandler := handler.NewAuthHandler(userStore, logger)
	productHandler := handler.NewProductHandler(productStore, logger)
	saleHandler := handler.NewSaleHandler(saleStore, logger)
	customerHandler := handler.NewCustomerHandler(customerStore, logger)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bina Business Tracker API is running!"})
	})

	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(userStore))
	{
		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/products", productHandler.List)
		protected.POST("/products", productHandler.Create)
		protected.PUT("/products/:id", productHandler.Update)
		protected.DELETE("/products/:id", productHandler.Delete)

		protected.GET("/sales", saleHandler.List)
		protected.POST("/sales", saleHandler.Create)
		protected.GET("/sales/analytics", saleHandler.Analytics)

		protected.GET("/customers", customerHandler.List)
		protected.POST("/customers", customerHandler.Create)
		protected.DELETE("/customers/:id", customerHandler.Delete)
	}

	return r
}
