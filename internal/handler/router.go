package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trainhub/internal/domain/user"
	"trainhub/internal/handler/api"
	"trainhub/internal/handler/middleware"
	"trainhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Bundle      *api.BundleHandler
	Review      *api.ReviewHandler
	Component   *api.ComponentHandler
	Publication *api.PublicationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bundles := apiGroup.Group("/bundles")
		bundles.Use(authMiddleware.RequireAuth())
		{
			trainerOnly := authMiddleware.RequireRole(user.RoleTrainer)
			managerOnly := authMiddleware.RequireRole(user.RoleManager)
			integrationOnly := authMiddleware.RequireRole(user.RoleIntegration)

			addRoutes(bundles, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Bundle.Create, Mw: []gin.HandlerFunc{trainerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Bundle.ListMine, Mw: []gin.HandlerFunc{trainerOnly}},
				{Method: http.MethodGet, Path: "/review-queue", Handler: h.Bundle.ReviewQueue, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Bundle.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Bundle.Update, Mw: []gin.HandlerFunc{trainerOnly}},
				{Method: http.MethodGet, Path: "/:id/decisions", Handler: h.Bundle.ListDecisions},
				{Method: http.MethodGet, Path: "/:id/activity", Handler: h.Bundle.ListActivity},

				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Review.Submit, Mw: []gin.HandlerFunc{trainerOnly}},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Review.Approve, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Review.Reject, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPost, Path: "/:id/request-changes", Handler: h.Review.RequestChanges, Mw: []gin.HandlerFunc{managerOnly}},

				{Method: http.MethodGet, Path: "/:id/publication", Handler: h.Publication.Get},
				{Method: http.MethodGet, Path: "/:id/publication/history", Handler: h.Publication.History},

				{Method: http.MethodPost, Path: "/:id/components", Handler: h.Component.Add, Mw: []gin.HandlerFunc{integrationOnly}},
				{Method: http.MethodPut, Path: "/:id/components/:ref", Handler: h.Component.SetQuantity, Mw: []gin.HandlerFunc{integrationOnly}},
				{Method: http.MethodDelete, Path: "/:id/components/:ref", Handler: h.Component.Remove, Mw: []gin.HandlerFunc{integrationOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
