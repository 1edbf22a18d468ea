package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ChamithuRuberu/fitpro/internal/http/handlers"
	"github.com/ChamithuRuberu/fitpro/internal/http/middleware"
)

// RouterConfig carries rate-limit settings into BuildRouter.
type RouterConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func BuildRouter(ah *handlers.AuthHandlers, dh *handlers.DashboardHandlers, sm *middleware.SessionManager, guard *middleware.Guard, logmw gin.HandlerFunc, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logmw, middleware.Metrics(), sm.Load())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	auth.GET("/csrf", func(c *gin.Context) {
		c.JSON(200, gin.H{"data": gin.H{"csrf_token": csrf.Token(c.Request)}})
	})
	auth.POST("/register/init", ah.RegisterInit)
	auth.POST("/register/verify", ah.VerifyOTP)
	auth.POST("/register/profile/user", ah.CompleteUserProfile)
	auth.POST("/register/profile/trainer", ah.CompleteTrainerProfile)
	auth.POST("/login", ah.Login)
	auth.POST("/trainer/login", ah.TrainerLogin)
	auth.POST("/logout", ah.Logout)
	auth.GET("/session", ah.Session)

	dash := r.Group("/dashboard")
	dash.Use(guard.RequireLogin(), guard.EnforceRole())
	dash.GET("/client", dh.Client)
	dash.GET("/trainer", dh.Trainer)
	dash.GET("/gym-admin", dh.GymAdmin)
	dash.GET("/super-admin", dh.SuperAdmin)

	return r
}
