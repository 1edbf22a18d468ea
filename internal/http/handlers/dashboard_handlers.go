package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ChamithuRuberu/fitpro/domain"
	"github.com/ChamithuRuberu/fitpro/internal/http/middleware"
)

// DashboardHandlers serves the role-scoped dashboard reads.
type DashboardHandlers struct {
	dashSvc  domain.DashboardService
	sessions *middleware.SessionManager
	logger   zerolog.Logger
}

// NewDashboardHandlers creates new dashboard handlers.
func NewDashboardHandlers(dashSvc domain.DashboardService, sessions *middleware.SessionManager, logger zerolog.Logger) *DashboardHandlers {
	return &DashboardHandlers{
		dashSvc:  dashSvc,
		sessions: sessions,
		logger:   logger.With().Str("component", "dashboard_handlers").Logger(),
	}
}

// respondDashboardError maps backend failures on dashboard reads. A 401/403
// from the core API means the token went stale: the session is cleared and
// the client is sent back to login. A missing trainer profile is reported as
// profile_incomplete, distinct from an auth failure.
func (h *DashboardHandlers) respondError(c *gin.Context, err error) {
	switch err {
	case domain.ErrNotAuthenticated:
		h.sessions.Clear(c, h.sessions.Current(c))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired", "redirect": "/login"})
	case domain.ErrProfileIncomplete:
		c.JSON(http.StatusConflict, gin.H{"error": "profile incomplete", "redirect": "/trainer-profile"})
	default:
		if be, ok := domain.AsBackendError(err); ok {
			c.JSON(http.StatusBadGateway, gin.H{"error": be.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch data"})
	}
}

// Client handles GET /dashboard/client.
func (h *DashboardHandlers) Client(c *gin.Context) {
	sess := h.sessions.Current(c)
	dashboard, err := h.dashSvc.ClientDashboard(c.Request.Context(), sess)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dashboard})
}

// Trainer handles GET /dashboard/trainer.
func (h *DashboardHandlers) Trainer(c *gin.Context) {
	sess := h.sessions.Current(c)
	dashboard, err := h.dashSvc.TrainerDashboard(c.Request.Context(), sess)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dashboard})
}

// GymAdmin handles GET /dashboard/gym-admin.
func (h *DashboardHandlers) GymAdmin(c *gin.Context) {
	sess := h.sessions.Current(c)
	stats, err := h.dashSvc.GymAdminDashboard(c.Request.Context(), sess)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// SuperAdmin handles GET /dashboard/super-admin.
func (h *DashboardHandlers) SuperAdmin(c *gin.Context) {
	sess := h.sessions.Current(c)
	stats, err := h.dashSvc.SuperAdminDashboard(c.Request.Context(), sess)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}
