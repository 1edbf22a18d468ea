package mocks

import (
	"context"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// MockAuthService implements domain.AuthService for testing.
type MockAuthService struct {
	InitiateRegistrationFunc   func(ctx context.Context, sess *domain.Session, in domain.RegisterInitInput) (*domain.RegisterInitResult, error)
	VerifyOTPFunc              func(ctx context.Context, sess *domain.Session, username, otp string) (*domain.VerifyResult, error)
	CompleteUserProfileFunc    func(ctx context.Context, sess *domain.Session, in domain.UserProfileInput) error
	CompleteTrainerProfileFunc func(ctx context.Context, sess *domain.Session, in domain.TrainerProfileInput) error
	LoginFunc                  func(ctx context.Context, sess *domain.Session, username, password string) error
	TrainerLoginFunc           func(ctx context.Context, sess *domain.Session, email, password string) (bool, error)
	LogoutFunc                 func(ctx context.Context, sess *domain.Session) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors.
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) InitiateRegistration(ctx context.Context, sess *domain.Session, in domain.RegisterInitInput) (*domain.RegisterInitResult, error) {
	if m.InitiateRegistrationFunc != nil {
		return m.InitiateRegistrationFunc(ctx, sess, in)
	}
	return &domain.RegisterInitResult{AppUserID: "u1"}, nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, sess *domain.Session, username, otp string) (*domain.VerifyResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, sess, username, otp)
	}
	return &domain.VerifyResult{UserID: username}, nil
}

func (m *MockAuthService) CompleteUserProfile(ctx context.Context, sess *domain.Session, in domain.UserProfileInput) error {
	if m.CompleteUserProfileFunc != nil {
		return m.CompleteUserProfileFunc(ctx, sess, in)
	}
	return nil
}

func (m *MockAuthService) CompleteTrainerProfile(ctx context.Context, sess *domain.Session, in domain.TrainerProfileInput) error {
	if m.CompleteTrainerProfileFunc != nil {
		return m.CompleteTrainerProfileFunc(ctx, sess, in)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, sess *domain.Session, username, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, sess, username, password)
	}
	return nil
}

func (m *MockAuthService) TrainerLogin(ctx context.Context, sess *domain.Session, email, password string) (bool, error) {
	if m.TrainerLoginFunc != nil {
		return m.TrainerLoginFunc(ctx, sess, email, password)
	}
	return true, nil
}

func (m *MockAuthService) Logout(ctx context.Context, sess *domain.Session) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sess)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
