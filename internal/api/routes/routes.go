package routes

import (
	"fmt"

	"callcenter-gamification-backend/internal/api/handlers"
	"callcenter-gamification-backend/internal/api/middleware"
	"callcenter-gamification-backend/internal/auth"
	"callcenter-gamification-backend/internal/cache"
	"callcenter-gamification-backend/internal/config"
	"callcenter-gamification-backend/internal/database/models"
	"callcenter-gamification-backend/internal/repository"
	"callcenter-gamification-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Application carries the router together with the services the process
// needs outside of request handling
type Application struct {
	Router      *gin.Engine
	AuthService *auth.AuthService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, c cache.Cache) (*Application, error) {
	if c == nil {
		c = cache.NewNoop()
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize services
	missionService := service.NewMissionService(repos)
	callService := service.NewCallService(repos, missionService, validate)
	achievementService := service.NewAchievementService(repos)
	storeService := service.NewStoreService(repos, validate)
	rankingService := service.NewRankingService(repos, c, cfg)
	dashboardService := service.NewDashboardService(repos)
	goalService := service.NewGoalService(repos, validate)
	operatorService := service.NewOperatorService(repos, validate)

	// Initialize auth configuration and services
	authConfig, err := auth.NewAuthConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig, repos.Sessions, repos.Operators, repos.Managers, validate)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, c)
	callHandler := handlers.NewCallHandler(callService)
	gamificationHandler := handlers.NewGamificationHandler(missionService, achievementService, rankingService, dashboardService)
	storeHandler := handlers.NewStoreHandler(storeService)
	managerHandler := handlers.NewManagerHandler(dashboardService, rankingService)
	goalHandler := handlers.NewGoalHandler(goalService)
	operatorHandler := handlers.NewOperatorHandler(operatorService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Everything below requires a valid session
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())

	operator := protected.Group("")
	operator.Use(authMiddleware.RequireRole(models.RoleOperator))
	{
		calls := operator.Group("/chamadas")
		{
			calls.POST("/iniciar", callHandler.StartCall)
			calls.POST("/finalizar", callHandler.FinalizeCall)
			calls.GET("/ativa", callHandler.GetActiveCall)
			calls.GET("", callHandler.ListCalls)
		}

		gamification := operator.Group("/gamificacao")
		{
			gamification.GET("/missoes", gamificationHandler.ListMissions)
			gamification.GET("/conquistas", gamificationHandler.ListAchievements)
			gamification.POST("/verificar-conquistas", gamificationHandler.CheckAchievements)
			gamification.GET("/estatisticas", gamificationHandler.GetStatistics)
			gamification.GET("/dashboard", gamificationHandler.GetDashboard)
		}

		rewards := operator.Group("/recompensas")
		{
			rewards.POST("/comprar", storeHandler.Purchase)
			rewards.GET("/compras", storeHandler.ListPurchases)
		}

		operators := operator.Group("/operadores")
		{
			operators.GET("/perfil", operatorHandler.GetProfile)
			operators.PUT("/status", operatorHandler.UpdateStatus)
		}

		operator.GET("/metas", goalHandler.ListOperatorGoals)
	}

	// Ranking and catalog are readable by both roles
	protected.GET("/gamificacao/ranking", gamificationHandler.GetRanking)
	protected.GET("/recompensas", storeHandler.ListRewards)

	manager := protected.Group("/gestor")
	manager.Use(authMiddleware.RequireRole(models.RoleManager))
	{
		manager.GET("/dashboard", managerHandler.GetDashboard)
		manager.GET("/operadores", managerHandler.ListOperators)
		manager.POST("/ranking/recalcular", managerHandler.RecalculateRanking)

		goals := manager.Group("/metas")
		{
			goals.POST("", goalHandler.CreateGoal)
			goals.GET("", goalHandler.ListManagerGoals)
			goals.PUT("/:id/progresso", goalHandler.UpdateProgress)
			goals.DELETE("/:id", goalHandler.DeactivateGoal)
		}
	}

	return &Application{Router: router, AuthService: authService}, nil
}
