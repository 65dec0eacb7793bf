package routes

import (
	"github.com/ameerhamza-malik/ItemManagement/controllers"
	"github.com/ameerhamza-malik/ItemManagement/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the public and authenticated route groups onto r.
func SetupRouter(r *gin.Engine, h *controllers.Handler) {
	// Public routes
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/items", h.ListItems)
	r.GET("/items/:id", h.GetItem)

	// Protected routes
	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(h.DB, h.Cfg.SecretKey, h.UserCache, h.Log))
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/profile", h.GetProfile)

		// Mutating routes additionally pass the anti-forgery guard.
		mutating := auth.Group("/")
		mutating.Use(middleware.RequireCSRF(h.Cfg.SecretKey, h.Log))
		{
			mutating.POST("/items", h.CreateItem)
			mutating.PUT("/items/:id", h.UpdateItem)
			mutating.DELETE("/items/:id", h.DeleteItem)
		}
	}
}
