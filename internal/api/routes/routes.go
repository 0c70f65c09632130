package routes

import (
	"outing-board-backend/internal/api/handlers"
	"outing-board-backend/internal/api/middleware"
	"outing-board-backend/internal/auth"
	"outing-board-backend/internal/config"
	"outing-board-backend/internal/repository"
	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(board *service.Board, store repository.KeyValueRepositoryInterface, cfg *config.Config) *gin.Engine {
	router := gin.New()
	// handlers pass *gin.Context as context.Context; cancellation follows the request
	router.ContextWithFallback = true

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	gate := auth.NewGateMiddleware(board.Session)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, board.Suggestions, cfg.KVBackend)
	sessionHandler := handlers.NewSessionHandler(board.Session)
	outingHandler := handlers.NewOutingHandler(board.Roster)
	changeLogHandler := handlers.NewChangeLogHandler(board.ChangeLog)
	themeHandler := handlers.NewThemeHandler(board.Theme)
	announcementHandler := handlers.NewAnnouncementHandler(board.Announcement)
	suggestionHandler := handlers.NewSuggestionHandler(board.Suggestions, board.Panel)
	boardHandler := handlers.NewBoardHandler(board)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		session := v1.Group("/session")
		{
			session.GET("", sessionHandler.GetSession)
			session.POST("/login", sessionHandler.Login)
			session.POST("/editor", gate.RequireViewer(), sessionHandler.UnlockEditor)
			session.DELETE("/editor", gate.RequireViewer(), gate.RequireEditor(), sessionHandler.LockEditor)
		}

		// Everything below requires the board gate
		viewer := v1.Group("", gate.RequireViewer(), gate.OptionalEditor())
		{
			viewer.GET("/outings", outingHandler.ListOutings)
			viewer.GET("/outings/:id", outingHandler.GetOuting)
			viewer.GET("/changelog", changeLogHandler.ListEntries)
			viewer.GET("/theme", themeHandler.GetTheme)
			viewer.GET("/announcement", announcementHandler.GetAnnouncement)
			viewer.GET("/suggestions/categories", suggestionHandler.ListCategories)
			viewer.GET("/suggestions", suggestionHandler.GetSuggestions)
			viewer.GET("/suggestions/panel", suggestionHandler.GetPanel)
			viewer.POST("/suggestions/panel", suggestionHandler.UpdatePanel)
		}

		// Mutations require an editor token
		editor := v1.Group("", gate.RequireViewer(), gate.RequireEditor())
		{
			editor.POST("/outings", outingHandler.CreateOuting)
			editor.PATCH("/outings/:id", outingHandler.UpdateOuting)
			editor.POST("/outings/:id/commit", outingHandler.CommitOuting)
			editor.DELETE("/outings/:id", outingHandler.DeleteOuting)
			editor.PUT("/theme", themeHandler.UpdateTheme)
			editor.POST("/theme/rotate", themeHandler.RotateImage)
			editor.POST("/announcement", announcementHandler.PublishAnnouncement)
			editor.PUT("/announcement/duration", announcementHandler.SetDuration)
			editor.DELETE("/announcement", announcementHandler.HideAnnouncement)
			editor.POST("/save", boardHandler.Save)
		}
	}

	return router
}
