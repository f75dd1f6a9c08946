package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "gmao/internal/interfaces/http/handlers/user"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
	}
}
