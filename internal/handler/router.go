package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wheel-promo-api/internal/domain/user"
	"wheel-promo-api/internal/handler/api"
	"wheel-promo-api/internal/handler/middleware"
	"wheel-promo-api/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	wheelHandler *api.WheelHandler,
	couponHandler *api.CouponHandler,
	adminSegmentHandler *api.AdminSegmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, wheelHandler, couponHandler, adminSegmentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.WheelSession())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	wheelHandler *api.WheelHandler,
	couponHandler *api.CouponHandler,
	adminSegmentHandler *api.AdminSegmentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		wheel := apiGroup.Group("/wheel")
		wheel.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(wheel, []route{
				{Method: http.MethodGet, Path: "/segments", Handler: wheelHandler.ListSegments},
				{Method: http.MethodGet, Path: "/eligibility", Handler: wheelHandler.Eligibility},
				{Method: http.MethodGet, Path: "/flow", Handler: wheelHandler.Flow},
				{Method: http.MethodGet, Path: "/pending", Handler: wheelHandler.Pending},
				{Method: http.MethodPost, Path: "/spin", Handler: wheelHandler.Spin},
				{Method: http.MethodPost, Path: "/dismiss", Handler: wheelHandler.Dismiss},
			})

			claimRequired := wheel.Group("")
			claimRequired.Use(authMiddleware.RequireAuth())
			addRoutes(claimRequired, []route{
				{Method: http.MethodPost, Path: "/claim", Handler: wheelHandler.Claim},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodPost, Path: "/:code/redeem", Handler: couponHandler.Redeem},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			segments := admin.Group("/wheel/segments")
			addRoutes(segments, []route{
				{Method: http.MethodGet, Path: "", Handler: adminSegmentHandler.List},
				{Method: http.MethodPost, Path: "", Handler: adminSegmentHandler.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: adminSegmentHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: adminSegmentHandler.Delete},
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
