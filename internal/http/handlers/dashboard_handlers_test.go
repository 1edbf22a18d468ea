package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChamithuRuberu/fitpro/domain"
	infraauth "github.com/ChamithuRuberu/fitpro/internal/infrastructure/auth"
	"github.com/ChamithuRuberu/fitpro/internal/http/middleware"
	"github.com/ChamithuRuberu/fitpro/internal/mocks"
)

type dashTestEnv struct {
	router *gin.Engine
	svc    *mocks.MockDashboardService
	store  *mocks.MockSessionStore
	codec  domain.CookieCodec
}

func newDashTestEnv(t *testing.T) *dashTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := mocks.NewMockSessionStore()
	codec := infraauth.NewCookieCodec(testCookieName, "test-secret")
	sm := middleware.NewSessionManager(store, codec, testCookieName, time.Hour, false, zerolog.Nop())

	enforcer, err := infraauth.NewCasbinService()
	require.NoError(t, err)
	guard := middleware.NewGuard(sm, enforcer)

	svc := mocks.NewMockDashboardService()
	h := NewDashboardHandlers(svc, sm, zerolog.Nop())

	r := gin.New()
	r.Use(sm.Load())
	dash := r.Group("/dashboard")
	dash.Use(guard.RequireLogin(), guard.EnforceRole())
	dash.GET("/client", h.Client)
	dash.GET("/trainer", h.Trainer)
	dash.GET("/gym-admin", h.GymAdmin)
	dash.GET("/super-admin", h.SuperAdmin)

	return &dashTestEnv{router: r, svc: svc, store: store, codec: codec}
}

func (e *dashTestEnv) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *dashTestEnv) loggedInCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()
	sess := &domain.Session{
		ID:         "s1",
		UserID:     "u1",
		Role:       role,
		Token:      "tok",
		IsLoggedIn: true,
		Status:     domain.StatusActive,
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, e.store.Create(context.Background(), sess))
	value, err := e.codec.Encode(sess.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: value}
}

func TestDashboard_NoCookie(t *testing.T) {
	env := newDashTestEnv(t)

	w := env.get(t, "/dashboard/client", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/login")
	assert.Empty(t, env.svc.Calls, "no data fetch for unauthenticated requests")
}

func TestDashboard_ForgedCookie(t *testing.T) {
	env := newDashTestEnv(t)

	w := env.get(t, "/dashboard/client", &http.Cookie{Name: testCookieName, Value: "forged"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.svc.Calls)
}

func TestDashboard_NotLoggedInSession(t *testing.T) {
	env := newDashTestEnv(t)

	// A mid-registration session exists but has never logged in.
	sess := &domain.Session{ID: "s1", Status: domain.StatusVerified, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, env.store.Create(context.Background(), sess))
	value, err := env.codec.Encode(sess.ID)
	require.NoError(t, err)

	w := env.get(t, "/dashboard/client", &http.Cookie{Name: testCookieName, Value: value})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.svc.Calls)
}

func TestDashboard_RoleScoping(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		path   string
		status int
	}{
		{"user reaches client dashboard", domain.RoleUser, "/dashboard/client", http.StatusOK},
		{"user blocked from trainer dashboard", domain.RoleUser, "/dashboard/trainer", http.StatusForbidden},
		{"trainer reaches trainer dashboard", domain.RoleTrainer, "/dashboard/trainer", http.StatusOK},
		{"trainer blocked from gym admin dashboard", domain.RoleTrainer, "/dashboard/gym-admin", http.StatusForbidden},
		{"gym admin reaches gym admin dashboard", domain.RoleGymAdmin, "/dashboard/gym-admin", http.StatusOK},
		{"super admin reaches super admin dashboard", domain.RoleSuperAdmin, "/dashboard/super-admin", http.StatusOK},
		{"super admin reaches gym admin dashboard", domain.RoleSuperAdmin, "/dashboard/gym-admin", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newDashTestEnv(t)
			w := env.get(t, tt.path, env.loggedInCookie(t, tt.role))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestDashboard_ClientPayload(t *testing.T) {
	env := newDashTestEnv(t)
	env.svc.ClientDashboardFunc = func(ctx context.Context, sess *domain.Session) (*domain.ClientDashboard, error) {
		assert.Equal(t, "tok", sess.Token)
		return &domain.ClientDashboard{
			Schedule: []domain.ScheduleDay{{ID: 1, Day: "Monday"}},
			Program:  &domain.WorkoutProgram{Name: "Strength Foundation"},
		}, nil
	}

	w := env.get(t, "/dashboard/client", env.loggedInCookie(t, domain.RoleUser))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Strength Foundation")
}

func TestDashboard_StaleTokenClearsSession(t *testing.T) {
	env := newDashTestEnv(t)
	env.svc.ClientDashboardFunc = func(ctx context.Context, sess *domain.Session) (*domain.ClientDashboard, error) {
		return nil, domain.ErrNotAuthenticated
	}

	w := env.get(t, "/dashboard/client", env.loggedInCookie(t, domain.RoleUser))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/login")

	// The dead session record was removed.
	_, ok := env.store.Stored("s1")
	assert.False(t, ok)
}

func TestDashboard_TrainerProfileIncomplete(t *testing.T) {
	env := newDashTestEnv(t)
	env.svc.TrainerDashboardFunc = func(ctx context.Context, sess *domain.Session) (*domain.TrainerDashboard, error) {
		return nil, domain.ErrProfileIncomplete
	}

	w := env.get(t, "/dashboard/trainer", env.loggedInCookie(t, domain.RoleTrainer))

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "/trainer-profile")
}

func TestDashboard_BackendDown(t *testing.T) {
	env := newDashTestEnv(t)
	env.svc.ClientDashboardFunc = func(ctx context.Context, sess *domain.Session) (*domain.ClientDashboard, error) {
		return nil, domain.ErrBackendUnavailable
	}

	w := env.get(t, "/dashboard/client", env.loggedInCookie(t, domain.RoleUser))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
