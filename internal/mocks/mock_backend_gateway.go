package mocks

import (
	"context"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// MockBackendGateway implements domain.BackendGateway for testing.
type MockBackendGateway struct {
	RegisterInitFunc           func(ctx context.Context, in domain.RegisterInitInput) (*domain.RegisterInitResult, error)
	VerifyOTPFunc              func(ctx context.Context, username, otp string) (*domain.VerifyResult, error)
	RegisterUserProfileFunc    func(ctx context.Context, in domain.UserProfileInput) (*domain.AuthResult, error)
	RegisterTrainerProfileFunc func(ctx context.Context, in domain.TrainerProfileInput) (*domain.AuthResult, error)
	LoginFunc                  func(ctx context.Context, username, password string) (*domain.AuthResult, error)
	TrainerLoginFunc           func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	TrainerProfileFunc         func(ctx context.Context, token string) (*domain.TrainerProfile, error)
	LogoutFunc                 func(ctx context.Context, token string) error
	ScheduleFunc               func(ctx context.Context, token string) ([]domain.ScheduleDay, error)
	SupplementsFunc            func(ctx context.Context, token string) ([]domain.Supplement, error)
	WorkoutProgramFunc         func(ctx context.Context, token string) (*domain.WorkoutProgram, error)
	TrainerClientsFunc         func(ctx context.Context, token string) ([]domain.ClientSummary, error)
	GymStatsFunc               func(ctx context.Context, token string) (*domain.DashboardStats, error)
	PlatformStatsFunc          func(ctx context.Context, token string) (*domain.DashboardStats, error)

	Calls []string
}

// NewMockBackendGateway creates a new MockBackendGateway with default behaviors.
func NewMockBackendGateway() *MockBackendGateway {
	return &MockBackendGateway{}
}

func (m *MockBackendGateway) record(name string) {
	m.Calls = append(m.Calls, name)
}

func (m *MockBackendGateway) RegisterInit(ctx context.Context, in domain.RegisterInitInput) (*domain.RegisterInitResult, error) {
	m.record("RegisterInit")
	if m.RegisterInitFunc != nil {
		return m.RegisterInitFunc(ctx, in)
	}
	return &domain.RegisterInitResult{AppUserID: "u1"}, nil
}

func (m *MockBackendGateway) VerifyOTP(ctx context.Context, username, otp string) (*domain.VerifyResult, error) {
	m.record("VerifyOTP")
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, username, otp)
	}
	return &domain.VerifyResult{UserID: username}, nil
}

func (m *MockBackendGateway) RegisterUserProfile(ctx context.Context, in domain.UserProfileInput) (*domain.AuthResult, error) {
	m.record("RegisterUserProfile")
	if m.RegisterUserProfileFunc != nil {
		return m.RegisterUserProfileFunc(ctx, in)
	}
	return &domain.AuthResult{Role: domain.RoleUser, Token: "token", Status: domain.StatusActive}, nil
}

func (m *MockBackendGateway) RegisterTrainerProfile(ctx context.Context, in domain.TrainerProfileInput) (*domain.AuthResult, error) {
	m.record("RegisterTrainerProfile")
	if m.RegisterTrainerProfileFunc != nil {
		return m.RegisterTrainerProfileFunc(ctx, in)
	}
	return &domain.AuthResult{Role: domain.RoleTrainer, Token: "token", Status: domain.StatusActive}, nil
}

func (m *MockBackendGateway) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	m.record("Login")
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return &domain.AuthResult{UserID: "u1", Role: domain.RoleUser, Token: "token"}, nil
}

func (m *MockBackendGateway) TrainerLogin(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	m.record("TrainerLogin")
	if m.TrainerLoginFunc != nil {
		return m.TrainerLoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{UserID: "t1", Role: domain.RoleTrainer, Token: "token"}, nil
}

func (m *MockBackendGateway) TrainerProfile(ctx context.Context, token string) (*domain.TrainerProfile, error) {
	m.record("TrainerProfile")
	if m.TrainerProfileFunc != nil {
		return m.TrainerProfileFunc(ctx, token)
	}
	return &domain.TrainerProfile{ID: "t1"}, nil
}

func (m *MockBackendGateway) Logout(ctx context.Context, token string) error {
	m.record("Logout")
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

func (m *MockBackendGateway) Schedule(ctx context.Context, token string) ([]domain.ScheduleDay, error) {
	m.record("Schedule")
	if m.ScheduleFunc != nil {
		return m.ScheduleFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockBackendGateway) Supplements(ctx context.Context, token string) ([]domain.Supplement, error) {
	m.record("Supplements")
	if m.SupplementsFunc != nil {
		return m.SupplementsFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockBackendGateway) WorkoutProgram(ctx context.Context, token string) (*domain.WorkoutProgram, error) {
	m.record("WorkoutProgram")
	if m.WorkoutProgramFunc != nil {
		return m.WorkoutProgramFunc(ctx, token)
	}
	return &domain.WorkoutProgram{}, nil
}

func (m *MockBackendGateway) TrainerClients(ctx context.Context, token string) ([]domain.ClientSummary, error) {
	m.record("TrainerClients")
	if m.TrainerClientsFunc != nil {
		return m.TrainerClientsFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockBackendGateway) GymStats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	m.record("GymStats")
	if m.GymStatsFunc != nil {
		return m.GymStatsFunc(ctx, token)
	}
	return &domain.DashboardStats{}, nil
}

func (m *MockBackendGateway) PlatformStats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	m.record("PlatformStats")
	if m.PlatformStatsFunc != nil {
		return m.PlatformStatsFunc(ctx, token)
	}
	return &domain.DashboardStats{}, nil
}

// Compile-time interface compliance verification
var _ domain.BackendGateway = (*MockBackendGateway)(nil)
