package domain

import (
	"context"
	"time"
)

// SessionStore defines session persistence operations.
type SessionStore interface {
	Create(ctx context.Context, session *Session) error
	Find(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// CookieCodec signs and verifies the session id carried by the browser.
type CookieCodec interface {
	Encode(sessionID string) (string, error)
	Decode(value string) (string, error)
}

// BackendGateway is the client for the core fitness API. All business logic
// and persistence live behind it; this layer only orchestrates calls.
type BackendGateway interface {
	RegisterInit(ctx context.Context, in RegisterInitInput) (*RegisterInitResult, error)
	VerifyOTP(ctx context.Context, username, otp string) (*VerifyResult, error)
	RegisterUserProfile(ctx context.Context, in UserProfileInput) (*AuthResult, error)
	RegisterTrainerProfile(ctx context.Context, in TrainerProfileInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	TrainerLogin(ctx context.Context, email, password string) (*AuthResult, error)
	TrainerProfile(ctx context.Context, token string) (*TrainerProfile, error)
	Logout(ctx context.Context, token string) error

	Schedule(ctx context.Context, token string) ([]ScheduleDay, error)
	Supplements(ctx context.Context, token string) ([]Supplement, error)
	WorkoutProgram(ctx context.Context, token string) (*WorkoutProgram, error)
	TrainerClients(ctx context.Context, token string) ([]ClientSummary, error)
	GymStats(ctx context.Context, token string) (*DashboardStats, error)
	PlatformStats(ctx context.Context, token string) (*DashboardStats, error)
}

// AuthService orchestrates the registration, verification and login flows.
// Implementations mutate the passed session only after the backend accepts
// the operation, and persist it atomically.
type AuthService interface {
	InitiateRegistration(ctx context.Context, sess *Session, in RegisterInitInput) (*RegisterInitResult, error)
	VerifyOTP(ctx context.Context, sess *Session, username, otp string) (*VerifyResult, error)
	CompleteUserProfile(ctx context.Context, sess *Session, in UserProfileInput) error
	CompleteTrainerProfile(ctx context.Context, sess *Session, in TrainerProfileInput) error
	Login(ctx context.Context, sess *Session, username, password string) error
	TrainerLogin(ctx context.Context, sess *Session, email, password string) (profileComplete bool, err error)
	Logout(ctx context.Context, sess *Session) error
}

// DashboardService fetches role-scoped collections for dashboard views.
type DashboardService interface {
	ClientDashboard(ctx context.Context, sess *Session) (*ClientDashboard, error)
	TrainerDashboard(ctx context.Context, sess *Session) (*TrainerDashboard, error)
	GymAdminDashboard(ctx context.Context, sess *Session) (*DashboardStats, error)
	SuperAdminDashboard(ctx context.Context, sess *Session) (*DashboardStats, error)
}

// RoleEnforcer answers whether a role may reach a route.
type RoleEnforcer interface {
	Allowed(role, path, method string) (bool, error)
}

// TokenInspector reads claims off backend-issued bearer tokens.
type TokenInspector interface {
	ExpiresAt(token string) (time.Time, bool)
}
