package handlers

import (
	"dehydrate_monitor/internal/logger"
	"dehydrate_monitor/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options toggles optional parts of the HTTP surface.
type Options struct {
	// AuthEnabled puts /api/v1 behind bearer tokens.
	AuthEnabled bool
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(dashboardTemplate)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Read-only views stay public when auth is on. Commands live under /api/v1.
	router.GET("/health", h.health)
	router.GET("/", h.dashboard)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Snapshot stream, same port. Public: browsers cannot set headers on the upgrade.
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	if h.opts.AuthEnabled {
		api.Use(h.operatorMiddleware)
	}
	{
		h.registerPlaybackRoutes(api)
		h.registerDatasetRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerPlaybackRoutes(api *gin.RouterGroup) {
	playback := api.Group("/playback")
	{
		playback.POST("/play", h.play)
		playback.POST("/pause", h.pause)
		playback.POST("/toggle", h.toggle)
		playback.POST("/reset", h.reset)
		playback.GET("/state", h.getState)
	}
}

func (h *Handler) registerDatasetRoutes(api *gin.RouterGroup) {
	dataset := api.Group("/dataset")
	{
		dataset.GET("", h.getDataset)
		dataset.GET("/readings", h.getReadings)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
