package app

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog"

	"github.com/ChamithuRuberu/fitpro/internal/config"
	httpx "github.com/ChamithuRuberu/fitpro/internal/http"
	"github.com/ChamithuRuberu/fitpro/internal/http/handlers"
	"github.com/ChamithuRuberu/fitpro/internal/http/middleware"
	"github.com/ChamithuRuberu/fitpro/internal/infrastructure/auth"
	"github.com/ChamithuRuberu/fitpro/internal/infrastructure/backend"
	"github.com/ChamithuRuberu/fitpro/internal/infrastructure/database"
	"github.com/ChamithuRuberu/fitpro/internal/infrastructure/repositories"
	"github.com/ChamithuRuberu/fitpro/internal/services"
)

func Run(cfg *config.Config) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "fitpro").Logger()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService()
	if err != nil {
		return err
	}

	// Infrastructure
	codec := auth.NewCookieCodec(cfg.SessionCookieName, cfg.SessionSecret)
	inspector := auth.NewJWTInspector()
	gateway := backend.NewClient(cfg.BackendBaseURL, &http.Client{Timeout: cfg.BackendTimeout}, logger)
	sessionRepo := repositories.NewSessionRepository(rdb.Client, cfg.SessionTTL)

	// Services
	inflight := services.NewInflightGuard(rdb.Client, cfg.InflightTTL)
	authSvc := services.NewAuthService(gateway, sessionRepo, inflight, inspector, cfg.SessionTTL, logger)
	dashSvc := services.NewDashboardService(gateway, logger)

	// HTTP
	sessionMgr := middleware.NewSessionManager(sessionRepo, codec, cfg.SessionCookieName, cfg.SessionTTL, cfg.SecureCookies, logger)
	guard := middleware.NewGuard(sessionMgr, cas)
	authH := handlers.NewAuthHandlers(authSvc, sessionMgr, logger)
	dashH := handlers.NewDashboardHandlers(dashSvc, sessionMgr, logger)

	middleware.InitMetrics()
	r := httpx.BuildRouter(authH, dashH, sessionMgr, guard, middleware.RequestLogger(logger), httpx.RouterConfig{
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	protect := csrf.Protect(
		[]byte(cfg.CSRFKey),
		csrf.Secure(cfg.SecureCookies),
		csrf.Path("/"),
		csrf.RequestHeader("X-CSRF-Token"),
	)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, protect(r))
}
