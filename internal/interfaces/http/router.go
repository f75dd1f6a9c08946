package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "gmao/internal/application/auth/usecases"
	clientusecases "gmao/internal/application/client/usecases"
	contractusecases "gmao/internal/application/contract/usecases"
	equipmentusecases "gmao/internal/application/equipment/usecases"
	siteusecases "gmao/internal/application/site/usecases"
	ticketusecases "gmao/internal/application/ticket/usecases"
	userusecases "gmao/internal/application/user/usecases"
	"gmao/internal/infrastructure/auth"
	"gmao/internal/infrastructure/config"
	"gmao/internal/infrastructure/ratelimit"
	"gmao/internal/infrastructure/repository"
	authhandlers "gmao/internal/interfaces/http/handlers/auth"
	clienthandlers "gmao/internal/interfaces/http/handlers/client"
	contracthandlers "gmao/internal/interfaces/http/handlers/contract"
	equipmenthandlers "gmao/internal/interfaces/http/handlers/equipment"
	sitehandlers "gmao/internal/interfaces/http/handlers/site"
	tickethandlers "gmao/internal/interfaces/http/handlers/ticket"
	userhandlers "gmao/internal/interfaces/http/handlers/user"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/interfaces/http/routes"
	"gmao/internal/shared/db"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/services/renderer"
	"gmao/internal/shared/utils"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine           *gin.Engine
	authHandler      *authhandlers.AuthHandler
	ticketHandler    *tickethandlers.TicketHandler
	clientHandler    *clienthandlers.ClientHandler
	siteHandler      *sitehandlers.SiteHandler
	equipmentHandler *equipmenthandlers.EquipmentHandler
	contractHandler  *contracthandlers.ContractHandler
	userHandler      *userhandlers.UserHandler
	authMiddleware   *middleware.AuthMiddleware
	cfg              *config.Config
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	clientRepo := repository.NewClientRepository(database)
	siteRepo := repository.NewSiteRepository(database)
	equipmentRepo := repository.NewEquipmentRepository(database)
	ledgerRepo := repository.NewLedgerRepository(database)
	contractRepo := repository.NewContractRepository(database)
	userRepo := repository.NewUserRepository(database)

	txManager := db.NewTransactionManager(database)
	markdown := renderer.NewMarkdownRenderer()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var loginLimiter authusecases.RateLimiter
	if redisClient != nil {
		loginLimiter = ratelimit.NewLoginRateLimiter(redisClient, 10, time.Minute)
	}

	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, loginLimiter, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, clientRepo, equipmentRepo, siteRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, equipmentRepo, siteRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, commentRepo, clientRepo, ledgerRepo, markdown, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, log)
	closeTicketUC := ticketusecases.NewCloseTicketUseCase(txManager, ticketRepo, clientRepo, ledgerRepo, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, log)
	editCommentUC := ticketusecases.NewEditCommentUseCase(commentRepo, log)

	createClientUC := clientusecases.NewCreateClientUseCase(clientRepo, log)
	updateClientUC := clientusecases.NewUpdateClientUseCase(clientRepo, log)
	getClientUC := clientusecases.NewGetClientUseCase(clientRepo, ticketRepo, equipmentRepo, siteRepo, ledgerRepo, log)
	listClientsUC := clientusecases.NewListClientsUseCase(clientRepo, log)
	getClientDataUC := clientusecases.NewGetClientDataUseCase(clientRepo, equipmentRepo, siteRepo, log)

	createSiteUC := siteusecases.NewCreateSiteUseCase(siteRepo, clientRepo, log)
	listSitesUC := siteusecases.NewListSitesUseCase(siteRepo, log)

	createEquipmentUC := equipmentusecases.NewCreateEquipmentUseCase(equipmentRepo, clientRepo, log)
	updateEquipmentUC := equipmentusecases.NewUpdateEquipmentUseCase(equipmentRepo, log)
	getEquipmentUC := equipmentusecases.NewGetEquipmentUseCase(equipmentRepo, log)
	listEquipmentUC := equipmentusecases.NewListEquipmentUseCase(equipmentRepo, log)

	createContractUC := contractusecases.NewCreateContractUseCase(contractRepo, clientRepo, log)
	cancelContractUC := contractusecases.NewCancelContractUseCase(contractRepo, log)
	listContractsUC := contractusecases.NewListContractsUseCase(contractRepo, log)

	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)

	return &Router{
		engine:      engine,
		authHandler: authhandlers.NewAuthHandler(loginUC),
		ticketHandler: tickethandlers.NewTicketHandler(
			createTicketUC,
			updateTicketUC,
			getTicketUC,
			listTicketsUC,
			changeStatusUC,
			closeTicketUC,
			addCommentUC,
			editCommentUC,
		),
		clientHandler: clienthandlers.NewClientHandler(
			createClientUC,
			updateClientUC,
			getClientUC,
			listClientsUC,
			getClientDataUC,
		),
		siteHandler:      sitehandlers.NewSiteHandler(createSiteUC, listSitesUC),
		equipmentHandler: equipmenthandlers.NewEquipmentHandler(createEquipmentUC, updateEquipmentUC, getEquipmentUC, listEquipmentUC),
		contractHandler:  contracthandlers.NewContractHandler(createContractUC, cancelContractUC, listContractsUC),
		userHandler:      userhandlers.NewUserHandler(createUserUC, listUsersUC),
		authMiddleware:   middleware.NewAuthMiddleware(jwtService, log),
		cfg:              cfg,
	}
}

// Setup configures middleware and registers all routes
func (r *Router) Setup(log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupClientRoutes(r.engine, &routes.ClientRouteConfig{
		ClientHandler:    r.clientHandler,
		SiteHandler:      r.siteHandler,
		EquipmentHandler: r.equipmentHandler,
		ContractHandler:  r.contractHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
