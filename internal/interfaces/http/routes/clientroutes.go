package routes

import (
	"github.com/gin-gonic/gin"

	clienthandlers "gmao/internal/interfaces/http/handlers/client"
	contracthandlers "gmao/internal/interfaces/http/handlers/contract"
	equipmenthandlers "gmao/internal/interfaces/http/handlers/equipment"
	sitehandlers "gmao/internal/interfaces/http/handlers/site"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/shared/authorization"
)

type ClientRouteConfig struct {
	ClientHandler    *clienthandlers.ClientHandler
	SiteHandler      *sitehandlers.SiteHandler
	EquipmentHandler *equipmenthandlers.EquipmentHandler
	ContractHandler  *contracthandlers.ContractHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupClientRoutes(engine *gin.Engine, config *ClientRouteConfig) {
	clients := engine.Group("/clients")
	clients.Use(config.AuthMiddleware.RequireAuth())
	{
		clients.POST("",
			authorization.RequireWriter(),
			config.ClientHandler.CreateClient)
		clients.GET("",
			config.ClientHandler.ListClients)

		// /data feeds the ticket form: equipment and sites as id/label pairs.
		clients.GET("/:id/data",
			config.ClientHandler.GetClientData)

		clients.GET("/:id/sites",
			config.SiteHandler.ListSites)
		clients.POST("/:id/sites",
			authorization.RequireWriter(),
			config.SiteHandler.CreateSite)

		clients.GET("/:id/equipment",
			config.EquipmentHandler.ListEquipment)
		clients.POST("/:id/equipment",
			authorization.RequireWriter(),
			config.EquipmentHandler.CreateEquipment)

		clients.GET("/:id/contracts",
			config.ContractHandler.ListContracts)
		clients.POST("/:id/contracts",
			authorization.RequireAdmin(),
			config.ContractHandler.CreateContract)

		clients.GET("/:id",
			config.ClientHandler.GetClient)
		clients.PUT("/:id",
			authorization.RequireWriter(),
			config.ClientHandler.UpdateClient)
	}

	equipment := engine.Group("/equipment")
	equipment.Use(config.AuthMiddleware.RequireAuth())
	{
		equipment.GET("/:id", config.EquipmentHandler.GetEquipment)
		equipment.PUT("/:id",
			authorization.RequireWriter(),
			config.EquipmentHandler.UpdateEquipment)
	}

	contracts := engine.Group("/contracts")
	contracts.Use(config.AuthMiddleware.RequireAuth())
	{
		contracts.POST("/:id/cancel",
			authorization.RequireAdmin(),
			config.ContractHandler.CancelContract)
	}
}
