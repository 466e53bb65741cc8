package router

import (
	"net/http"
	"time"

	docs "github.com/card-ledger/backend/api"
	"github.com/card-ledger/backend/internal/auth"
	"github.com/card-ledger/backend/internal/config"
	"github.com/card-ledger/backend/internal/controllers/healthz"
	"github.com/card-ledger/backend/internal/controllers/root"
	v1 "github.com/card-ledger/backend/internal/controllers/v1"
	"github.com/card-ledger/backend/internal/controllers/version"
	"github.com/card-ledger/backend/internal/httperror"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var appVersion = "0.0.0"

// Config configures the gin engine with all middlewares.
//
// The returned teardown function must be called when the engine is not
// used anymore. It unregisters the Prometheus metrics.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	teardown := func() {
		unregisterPrometheusMetrics()
	}

	gin.SetMode(cfg.GinMode)

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.NewFromString("this HTTP method is not allowed for this endpoint"))
	})

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(cfg.CORSOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "Card Ledger"
	docs.SwaggerInfo.Version = appVersion
	docs.SwaggerInfo.Description = "The backend for Card Ledger, tracking credit card expenses, installments and incomes."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows to attach the routes at a sub path.
func AttachRoutes(cfg config.Config, group *gin.RouterGroup) {
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Register metrics
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	root.RegisterRoutes(group)
	version.RegisterRoutes(group.Group("/version"), appVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	// API v1 setup
	g := group.Group("/v1")
	{
		g.GET("", v1.Get)
		g.OPTIONS("", v1.Options)
	}

	v1.RegisterUserRoutes(g.Group("/users"), issuer)

	// All other resources belong to a user
	authenticated := g.Group("", issuer.Middleware())
	v1.RegisterCardRoutes(authenticated.Group("/cards"))
	v1.RegisterExpenseRoutes(authenticated.Group("/expenses"))
	v1.RegisterIncomeRoutes(authenticated.Group("/incomes"))
	v1.RegisterReportRoutes(authenticated.Group("/reports"))
}
