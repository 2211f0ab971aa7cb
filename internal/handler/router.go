package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/handler/api"
	"closeout-market/internal/handler/middleware"
	"closeout-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Listing     *api.ListingHandler
	Store       *api.StoreHandler
	Reservation *api.ReservationHandler
	Channel     *api.ChannelHandler
	Stream      *api.StreamHandler
	Auth        *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	sellerOnly := []gin.HandlerFunc{h.Auth.RequireRoleAtLeast(user.RoleSeller)}

	apiGroup := engine.Group("/api")
	{
		listings := apiGroup.Group("/listings")
		listings.Use(h.Auth.OptionalAuth())
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Listing.InViewport},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Listing.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Listing.Create, Mw: sellerOnly},
			})
		}

		stores := apiGroup.Group("/stores")
		stores.Use(h.Auth.RequireAuth())
		{
			addRoutes(stores, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Store.Register, Mw: sellerOnly},
				{Method: http.MethodPost, Path: "/:id/verify", Handler: h.Store.Verify, Mw: sellerOnly},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(h.Auth.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			})
		}

		channels := apiGroup.Group("/channels")
		channels.Use(h.Auth.RequireAuth())
		{
			addRoutes(channels, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Channel.Open},
				{Method: http.MethodGet, Path: "", Handler: h.Channel.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Channel.Get},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: h.Channel.History},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: h.Channel.Post},
				{Method: http.MethodGet, Path: "/:id/stream", Handler: h.Stream.Stream},
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
