package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/talleres-esperanza/comedor/internal/server/http/handlers"
	"github.com/talleres-esperanza/comedor/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ComedorFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	rosterHandler := handlers.NewRosterHandler(facade)
	sessionHandler := handlers.NewSessionHandler(facade)
	historyHandler := handlers.NewHistoryHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Status)
	api.GET("/people", rosterHandler.List)

	session := api.Group("/session")
	session.PUT("/orders/:personID", sessionHandler.Upsert)
	session.POST("/orders/:personID/no-meal", sessionHandler.NoMeal)
	session.GET("/summary", sessionHandler.Summary)
	session.POST("/commit", sessionHandler.Commit)
	session.GET("/export", sessionHandler.Export)

	api.GET("/history", historyHandler.List)
	api.GET("/history/export", historyHandler.Export)
	api.GET("/reports", historyHandler.Reports)

	return engine
}
