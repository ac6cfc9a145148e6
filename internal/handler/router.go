package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bounce-booking/internal/handler/api"
	"bounce-booking/internal/handler/middleware"
	"bounce-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	publicHandler *api.PublicBookingHandler,
	merchantHandler *api.MerchantBookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, publicHandler, merchantHandler, authMiddleware, limiter)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute)
}

func setupRoutes(
	engine *gin.Engine,
	publicHandler *api.PublicBookingHandler,
	merchantHandler *api.MerchantBookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		throttled := []gin.HandlerFunc{limiter.Middleware()}

		businesses := apiGroup.Group("/businesses/:businessId")
		addRoutes(businesses, []route{
			{Method: http.MethodPost, Path: "/holds", Handler: publicHandler.CreateHold, Mw: throttled},
			{Method: http.MethodPost, Path: "/checkout", Handler: publicHandler.FinalizeCheckout, Mw: throttled},
			{Method: http.MethodGet, Path: "/availability", Handler: publicHandler.Availability, Mw: throttled},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: publicHandler.GetBooking, Mw: throttled},
		})

		merchant := apiGroup.Group("/merchant/bookings")
		merchant.Use(authMiddleware.RequireMerchant())
		{
			addRoutes(merchant, []route{
				{Method: http.MethodGet, Path: "", Handler: merchantHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: merchantHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: merchantHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/invoice", Handler: merchantHandler.IssueInvoice},
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
