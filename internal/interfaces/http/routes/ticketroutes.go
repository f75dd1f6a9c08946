package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "gmao/internal/interfaces/http/handlers/ticket"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			authorization.RequireWriter(),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints come before the generic /:id routes.
		// Terminal statuses only go through /close, which runs the contract
		// charge; /status handles the non-terminal moves and reopening.
		tickets.POST("/:id/close",
			authorization.RequireWriter(),
			config.TicketHandler.CloseTicket)
		tickets.PATCH("/:id/status",
			authorization.RequireWriter(),
			config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/comments",
			authorization.RequireWriter(),
			config.TicketHandler.AddComment)
		// No writer gate here: a read_only author may still edit their own
		// comment, and the use case decides silently either way.
		tickets.PATCH("/:id/comments/:comment_id",
			config.TicketHandler.EditComment)

		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			authorization.RequireWriter(),
			config.TicketHandler.UpdateTicket)
	}
}
