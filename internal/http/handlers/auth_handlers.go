package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ChamithuRuberu/fitpro/domain"
	"github.com/ChamithuRuberu/fitpro/internal/http/middleware"
)

// Name fields accept letters, spaces and periods only.
var nameRE = regexp.MustCompile(`^[A-Za-z][A-Za-z .]*$`)

// AuthHandlers handles the registration, verification and login routes.
type AuthHandlers struct {
	authSvc  domain.AuthService
	sessions *middleware.SessionManager
	logger   zerolog.Logger
}

// NewAuthHandlers creates new auth handlers.
func NewAuthHandlers(authSvc domain.AuthService, sessions *middleware.SessionManager, logger zerolog.Logger) *AuthHandlers {
	return &AuthHandlers{
		authSvc:  authSvc,
		sessions: sessions,
		logger:   logger.With().Str("component", "auth_handlers").Logger(),
	}
}

// RegisterInitRequest represents a registration initiation request.
type RegisterInitRequest struct {
	NIC       string `json:"nic" binding:"required"`
	Mobile    string `json:"mobile" binding:"required,e164"`
	Email     string `json:"email" binding:"required,email"`
	IsTrainer bool   `json:"is_trainer"`
}

// VerifyOTPRequest represents an OTP verification request. The code is
// re-validated server side: exactly six digits.
type VerifyOTPRequest struct {
	Username string `json:"username" binding:"required"`
	OTP      string `json:"otp" binding:"required,len=6,numeric"`
}

// UserProfileRequest represents the user profile completion payload.
type UserProfileRequest struct {
	Username      string `json:"username" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	FullName      string `json:"full_name" binding:"required"`
	BirthDate     string `json:"birth_of_date"`
	AddressNo     string `json:"address_no"`
	AddressStreet string `json:"address_street"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Weight        string `json:"weight"`
	Height        string `json:"height"`
	Injuries      string `json:"injuries"`
}

// TrainerProfileRequest represents the trainer profile completion payload.
type TrainerProfileRequest struct {
	UserProfileRequest
	ServicePeriod string `json:"service_period" binding:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r UserProfileRequest) input() domain.UserProfileInput {
	return domain.UserProfileInput{
		Username:      r.Username,
		Password:      r.Password,
		FullName:      r.FullName,
		BirthDate:     r.BirthDate,
		AddressNo:     r.AddressNo,
		AddressStreet: r.AddressStreet,
		City:          r.City,
		PostalCode:    r.PostalCode,
		Weight:        r.Weight,
		Height:        r.Height,
		Injuries:      r.Injuries,
	}
}

// respondAuthError converts service failures into HTTP responses: backend
// rejections surface the backend message verbatim, transport failures get
// the fixed generic message for the operation.
func respondAuthError(c *gin.Context, err error, generic string) {
	switch {
	case err == domain.ErrOperationInFlight:
		c.JSON(http.StatusConflict, gin.H{"error": "operation already in progress"})
	case err == domain.ErrNotAuthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": generic})
	default:
		if be, ok := domain.AsBackendError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": be.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": generic})
	}
}

// RegisterInit handles POST /auth/register/init.
func (h *AuthHandlers) RegisterInit(c *gin.Context) {
	var req RegisterInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.sessions.Begin(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	role := domain.RoleUser
	if req.IsTrainer {
		role = domain.RoleTrainer
	}

	result, err := h.authSvc.InitiateRegistration(c.Request.Context(), sess, domain.RegisterInitInput{
		NationalID: req.NIC,
		Mobile:     req.Mobile,
		Email:      req.Email,
		RoleIntent: role,
	})
	if err != nil {
		respondAuthError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"app_user_id": result.AppUserID,
			"next":        "/verify?username=" + result.AppUserID,
		},
	})
}

// VerifyOTP handles POST /auth/register/verify. The response carries the
// next profile-completion step: trainer accounts route to trainer-profile,
// everyone else to user-profile.
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.sessions.Begin(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), sess, req.Username, req.OTP)
	if err != nil {
		respondAuthError(c, err, "Verification failed")
		return
	}

	next := "/user-profile"
	if result.TrainerID != "" {
		next = "/trainer-profile"
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id": result.UserID,
			"next":    next,
		},
	})
}

// CompleteUserProfile handles POST /auth/register/profile/user.
func (h *AuthHandlers) CompleteUserProfile(c *gin.Context) {
	var req UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !nameRE.MatchString(req.FullName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full name may contain letters, spaces and periods only"})
		return
	}

	sess, err := h.sessions.Begin(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	if err := h.authSvc.CompleteUserProfile(c.Request.Context(), sess, req.input()); err != nil {
		respondAuthError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"role":   sess.Role,
			"status": sess.Status,
			"next":   "/dashboard/client",
		},
	})
}

// CompleteTrainerProfile handles POST /auth/register/profile/trainer.
func (h *AuthHandlers) CompleteTrainerProfile(c *gin.Context) {
	var req TrainerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !nameRE.MatchString(req.FullName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full name may contain letters, spaces and periods only"})
		return
	}

	sess, err := h.sessions.Begin(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	input := domain.TrainerProfileInput{
		UserProfileInput: req.input(),
		ServicePeriod:    req.ServicePeriod,
	}
	if err := h.authSvc.CompleteTrainerProfile(c.Request.Context(), sess, input); err != nil {
		respondAuthError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"role":   sess.Role,
			"status": sess.Status,
			"next":   "/dashboard/trainer",
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.sessions.Begin(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	if err := h.authSvc.Login(c.Request.Context(), sess, req.Username, req.Password); err != nil {
		if be, ok := domain.AsBackendError(err); ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": be.Message})
			return
		}
		respondAuthError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id": sess.UserID,
			"role":    sess.Role,
			"next":    dashboardFor(sess.Role),
		},
	})
}

// TrainerLogin handles POST /auth/trainer/login. When the trainer has not
// completed their profile yet the session stays logged in and the response
// routes to profile completion.
func (h *AuthHandlers) TrainerLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.sessions.Begin(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	profileComplete, err := h.authSvc.TrainerLogin(c.Request.Context(), sess, req.Username, req.Password)
	if err != nil {
		if be, ok := domain.AsBackendError(err); ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": be.Message})
			return
		}
		respondAuthError(c, err, "Login failed")
		return
	}

	next := "/dashboard/trainer"
	if !profileComplete {
		next = "/trainer-profile"
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id":          sess.UserID,
			"role":             sess.Role,
			"profile_complete": profileComplete,
			"next":             next,
		},
	})
}

// Logout handles POST /auth/logout. The session is cleared unconditionally.
func (h *AuthHandlers) Logout(c *gin.Context) {
	sess := h.sessions.Current(c)
	if sess == nil {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "logged out"}})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sess); err != nil {
		h.logger.Warn().Err(err).Msg("logout cleanup failed")
	}
	h.sessions.Clear(c, sess)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "logged out"}})
}

// Session handles GET /auth/session: the read-only session accessor used by
// dashboard pages. The token value itself is never exposed.
func (h *AuthHandlers) Session(c *gin.Context) {
	sess := h.sessions.Current(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session", "redirect": "/login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id":      sess.UserID,
			"email":        sess.Email,
			"full_name":    sess.FullName,
			"role":         sess.Role,
			"status":       sess.Status,
			"city":         sess.City,
			"trainer_id":   sess.TrainerID,
			"is_logged_in": sess.IsLoggedIn,
		},
	})
}

func dashboardFor(role string) string {
	switch role {
	case domain.RoleTrainer:
		return "/dashboard/trainer"
	case domain.RoleGymAdmin:
		return "/dashboard/gym-admin"
	case domain.RoleSuperAdmin:
		return "/dashboard/super-admin"
	default:
		return "/dashboard/client"
	}
}
