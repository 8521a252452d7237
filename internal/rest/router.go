package rest

import (
	"time"

	"shopease-be/internal/logger"
	"shopease-be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the full HTTP surface under /api.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestID())
	r.Use(logger.RequestLogger())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if h.Cfg.CORSOrigin != "" {
		corsCfg.AllowOrigins = []string{h.Cfg.CORSOrigin}
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	api.Use(middleware.RateLimit())

	api.GET("/status", h.Status)
	api.GET("/products", h.ListProducts)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/user/register", h.RegisterUser)
		authGroup.POST("/user/login", h.LoginUser)
		authGroup.POST("/admin/register", h.RegisterAdmin)
		authGroup.POST("/admin/login", h.LoginAdmin)
		authGroup.GET("/admin/check", h.CheckAdmin)
	}

	cartGroup := api.Group("/cart", middleware.RequireUser())
	{
		cartGroup.GET("", h.GetCart)
		cartGroup.POST("/add", h.AddToCart)
		cartGroup.PUT("/update", h.UpdateCart)
		cartGroup.DELETE("/remove/:productId", h.RemoveFromCart)
	}

	orderGroup := api.Group("/order")
	{
		orderGroup.POST("/checkout", middleware.RequireUser(), h.Checkout)
		orderGroup.GET("/admin/recent-orders", middleware.RequireAdmin(), h.RecentOrders)
		orderGroup.GET("/admin/orders", middleware.RequireAdmin(), h.AllOrders)
	}

	adminGroup := api.Group("/admin", middleware.RequireAdmin())
	{
		adminGroup.POST("/product", h.CreateProduct)
		adminGroup.DELETE("/product/:id", h.DeleteProduct)
		adminGroup.DELETE("/order/:id", h.DeleteOrder)
		adminGroup.PUT("/order/:id/deliver", h.DeliverOrder)
		adminGroup.GET("/notifications", h.ListNotifications)
		adminGroup.PUT("/notifications/:id/read", h.MarkNotificationRead)
	}

	return r
}
