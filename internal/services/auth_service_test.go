package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChamithuRuberu/fitpro/domain"
	"github.com/ChamithuRuberu/fitpro/internal/mocks"
)

// stubInspector is a fixed-answer TokenInspector for service tests.
type stubInspector struct {
	exp time.Time
	ok  bool
}

func (s stubInspector) ExpiresAt(token string) (time.Time, bool) { return s.exp, s.ok }

type authFixture struct {
	svc     domain.AuthService
	backend *mocks.MockBackendGateway
	store   *mocks.MockSessionStore
	guard   *InflightGuard
}

func newAuthFixture(t *testing.T, inspector domain.TokenInspector) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	backend := mocks.NewMockBackendGateway()
	store := mocks.NewMockSessionStore()
	guard := NewInflightGuard(client, 10*time.Second)
	svc := NewAuthService(backend, store, guard, inspector, 24*time.Hour, zerolog.Nop())
	return &authFixture{svc: svc, backend: backend, store: store, guard: guard}
}

func freshSession(id string) *domain.Session {
	now := time.Now()
	return &domain.Session{ID: id, CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour)}
}

func TestInitiateRegistration_User(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.RegisterInitFunc = func(ctx context.Context, in domain.RegisterInitInput) (*domain.RegisterInitResult, error) {
		assert.Equal(t, domain.RoleUser, in.RoleIntent)
		assert.Zero(t, in.TrainerID)
		return &domain.RegisterInitResult{AppUserID: "u1", Mobile: in.Mobile}, nil
	}

	sess := freshSession("s1")
	result, err := f.svc.InitiateRegistration(context.Background(), sess, domain.RegisterInitInput{
		NationalID: "991234567V",
		Mobile:     "+94771234567",
		Email:      "jane@example.com",
		RoleIntent: domain.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", result.AppUserID)

	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, domain.StatusPending, sess.Status)
	assert.False(t, sess.IsLoggedIn)
	assert.Empty(t, sess.TrainerID)

	stored, ok := f.store.Stored("s1")
	require.True(t, ok)
	assert.Equal(t, *sess, stored)
}

func TestInitiateRegistration_TrainerGetsCorrelationID(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	var sentID int
	f.backend.RegisterInitFunc = func(ctx context.Context, in domain.RegisterInitInput) (*domain.RegisterInitResult, error) {
		sentID = in.TrainerID
		return &domain.RegisterInitResult{AppUserID: "t1"}, nil
	}

	sess := freshSession("s1")
	_, err := f.svc.InitiateRegistration(context.Background(), sess, domain.RegisterInitInput{
		NationalID: "991234567V",
		Mobile:     "+94771234567",
		Email:      "coach@example.com",
		RoleIntent: domain.RoleTrainer,
	})
	require.NoError(t, err)

	// Six digits, and the session remembers it.
	assert.GreaterOrEqual(t, sentID, 100000)
	assert.LessOrEqual(t, sentID, 999999)
	assert.NotEmpty(t, sess.TrainerID)
}

func TestInitiateRegistration_BackendRejectionLeavesSessionUntouched(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.RegisterInitFunc = func(ctx context.Context, in domain.RegisterInitInput) (*domain.RegisterInitResult, error) {
		return nil, &domain.BackendError{Code: "1010", Message: "Mobile number already registered"}
	}

	sess := freshSession("s1")
	before := *sess
	_, err := f.svc.InitiateRegistration(context.Background(), sess, domain.RegisterInitInput{
		Email:      "jane@example.com",
		RoleIntent: domain.RoleUser,
	})
	require.Error(t, err)

	assert.Equal(t, before, *sess)
	_, stored := f.store.Stored("s1")
	assert.False(t, stored, "failed operation must not persist anything")
}

func TestVerifyOTP_NeverLogsIn(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.VerifyOTPFunc = func(ctx context.Context, username, otp string) (*domain.VerifyResult, error) {
		return &domain.VerifyResult{UserID: "u1"}, nil
	}

	sess := freshSession("s1")
	sess.Status = domain.StatusPending
	result, err := f.svc.VerifyOTP(context.Background(), sess, "u1", "123456")
	require.NoError(t, err)
	assert.Equal(t, "u1", result.UserID)

	assert.Equal(t, domain.StatusVerified, sess.Status)
	assert.False(t, sess.IsLoggedIn)
	assert.Empty(t, sess.Token)
}

func TestVerifyOTP_BackendTrainerIDWins(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.VerifyOTPFunc = func(ctx context.Context, username, otp string) (*domain.VerifyResult, error) {
		return &domain.VerifyResult{UserID: "t1", TrainerID: "654321"}, nil
	}

	sess := freshSession("s1")
	sess.TrainerID = "123456"
	_, err := f.svc.VerifyOTP(context.Background(), sess, "t1", "123456")
	require.NoError(t, err)

	assert.Equal(t, "654321", sess.TrainerID)
}

func TestVerifyOTP_RedundantSuccessIsIdempotent(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.VerifyOTPFunc = func(ctx context.Context, username, otp string) (*domain.VerifyResult, error) {
		return &domain.VerifyResult{UserID: "u1"}, nil
	}

	sess := freshSession("s1")
	_, err := f.svc.VerifyOTP(context.Background(), sess, "u1", "123456")
	require.NoError(t, err)
	after := *sess

	_, err = f.svc.VerifyOTP(context.Background(), sess, "u1", "123456")
	require.NoError(t, err)
	assert.Equal(t, after, *sess)
}

func TestCompleteUserProfile_LogsIn(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.RegisterUserProfileFunc = func(ctx context.Context, in domain.UserProfileInput) (*domain.AuthResult, error) {
		return &domain.AuthResult{
			UserID:   "u1",
			Email:    in.Username,
			FullName: in.FullName,
			Role:     domain.RoleUser,
			Token:    "tok",
			City:     in.City,
			Status:   domain.StatusActive,
		}, nil
	}

	sess := freshSession("s1")
	sess.Status = domain.StatusVerified
	err := f.svc.CompleteUserProfile(context.Background(), sess, domain.UserProfileInput{
		Username: "jane@example.com",
		Password: "secret",
		FullName: "Jane Silva",
		City:     "Colombo",
	})
	require.NoError(t, err)

	assert.True(t, sess.IsLoggedIn)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, domain.StatusActive, sess.Status)
	assert.Equal(t, domain.RoleUser, sess.Role)
	assert.Equal(t, "Jane Silva", sess.FullName)
}

func TestCompleteProfile_EmptyTokenNeverPersistsLoggedIn(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.RegisterUserProfileFunc = func(ctx context.Context, in domain.UserProfileInput) (*domain.AuthResult, error) {
		return &domain.AuthResult{UserID: "u1", Role: domain.RoleUser, Status: domain.StatusActive}, nil
	}

	sess := freshSession("s1")
	err := f.svc.CompleteUserProfile(context.Background(), sess, domain.UserProfileInput{})
	require.Error(t, err)

	// The invariant write was rejected and the in-memory session kept intact.
	assert.False(t, sess.IsLoggedIn)
	assert.Empty(t, sess.Token)
}

func TestLogin_SetsSessionAndCapsExpiryByToken(t *testing.T) {
	tokenExp := time.Now().Add(time.Hour).Truncate(time.Second)
	f := newAuthFixture(t, stubInspector{exp: tokenExp, ok: true})
	f.backend.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
		return &domain.AuthResult{UserID: "u1", Role: domain.RoleUser, Token: "tok"}, nil
	}

	sess := freshSession("s1")
	require.NoError(t, f.svc.Login(context.Background(), sess, "jane@example.com", "secret"))

	assert.True(t, sess.IsLoggedIn)
	assert.Equal(t, "jane@example.com", sess.Email)
	assert.Equal(t, tokenExp.Unix(), sess.ExpiresAt.Unix())
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.LoginFunc = func(ctx context.Context, username, password string) (*domain.AuthResult, error) {
		return nil, &domain.BackendError{Code: "1001", Message: "Invalid credentials"}
	}

	sess := freshSession("s1")
	before := *sess
	err := f.svc.Login(context.Background(), sess, "jane@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, before, *sess)
}

func TestTrainerLogin_ProfileIncomplete(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.TrainerLoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
		return &domain.AuthResult{UserID: "t1", Role: domain.RoleTrainer, Token: "tok"}, nil
	}
	f.backend.TrainerProfileFunc = func(ctx context.Context, token string) (*domain.TrainerProfile, error) {
		return nil, domain.ErrProfileIncomplete
	}

	sess := freshSession("s1")
	complete, err := f.svc.TrainerLogin(context.Background(), sess, "coach@example.com", "secret")
	require.NoError(t, err)

	// Missing profile is not an auth failure: the session stays logged in.
	assert.False(t, complete)
	assert.True(t, sess.IsLoggedIn)
	assert.Equal(t, domain.RoleTrainer, sess.Role)
}

func TestTrainerLogin_ProfileComplete(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})

	sess := freshSession("s1")
	complete, err := f.svc.TrainerLogin(context.Background(), sess, "coach@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, complete)
	assert.True(t, sess.IsLoggedIn)
}

func TestLogout_ClearsSessionEvenWhenBackendFails(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})
	f.backend.LogoutFunc = func(ctx context.Context, token string) error {
		return domain.ErrBackendUnavailable
	}

	sess := freshSession("s1")
	sess.Token = "tok"
	sess.IsLoggedIn = true
	sess.UserID = "u1"
	require.NoError(t, f.store.Create(context.Background(), sess))

	require.NoError(t, f.svc.Logout(context.Background(), sess))

	assert.False(t, sess.IsLoggedIn)
	assert.Empty(t, sess.Token)
	assert.Equal(t, "s1", sess.ID)
	_, stored := f.store.Stored("s1")
	assert.False(t, stored)
}

func TestLogout_AnonymousSessionSkipsBackend(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})

	sess := freshSession("s1")
	require.NoError(t, f.svc.Logout(context.Background(), sess))
	assert.NotContains(t, f.backend.Calls, "Logout")
}

func TestConcurrentOperationRejected(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})

	// First submission still settling.
	release, err := f.guard.Acquire(context.Background(), "s1", "login")
	require.NoError(t, err)
	defer release()

	sess := freshSession("s1")
	err = f.svc.Login(context.Background(), sess, "jane@example.com", "secret")
	assert.Equal(t, domain.ErrOperationInFlight, err)
	assert.Empty(t, f.backend.Calls, "no backend call while the slot is claimed")
}

func TestDistinctOperationsDoNotConflict(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})

	release, err := f.guard.Acquire(context.Background(), "s1", "register-init")
	require.NoError(t, err)
	defer release()

	sess := freshSession("s1")
	require.NoError(t, f.svc.Login(context.Background(), sess, "jane@example.com", "secret"))
}

func TestGuardReleaseFreesSlot(t *testing.T) {
	f := newAuthFixture(t, stubInspector{})

	sess := freshSession("s1")
	require.NoError(t, f.svc.Login(context.Background(), sess, "jane@example.com", "secret"))

	// The first login settled, a second submission may proceed.
	require.NoError(t, f.svc.Login(context.Background(), sess, "jane@example.com", "secret"))
}
