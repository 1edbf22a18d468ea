package mocks

import (
	"context"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// MockDashboardService implements domain.DashboardService for testing.
type MockDashboardService struct {
	ClientDashboardFunc    func(ctx context.Context, sess *domain.Session) (*domain.ClientDashboard, error)
	TrainerDashboardFunc   func(ctx context.Context, sess *domain.Session) (*domain.TrainerDashboard, error)
	GymAdminDashboardFunc  func(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error)
	SuperAdminDashboardFunc func(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error)

	Calls []string
}

// NewMockDashboardService creates a new MockDashboardService with default behaviors.
func NewMockDashboardService() *MockDashboardService {
	return &MockDashboardService{}
}

func (m *MockDashboardService) ClientDashboard(ctx context.Context, sess *domain.Session) (*domain.ClientDashboard, error) {
	m.Calls = append(m.Calls, "ClientDashboard")
	if m.ClientDashboardFunc != nil {
		return m.ClientDashboardFunc(ctx, sess)
	}
	return &domain.ClientDashboard{}, nil
}

func (m *MockDashboardService) TrainerDashboard(ctx context.Context, sess *domain.Session) (*domain.TrainerDashboard, error) {
	m.Calls = append(m.Calls, "TrainerDashboard")
	if m.TrainerDashboardFunc != nil {
		return m.TrainerDashboardFunc(ctx, sess)
	}
	return &domain.TrainerDashboard{}, nil
}

func (m *MockDashboardService) GymAdminDashboard(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error) {
	m.Calls = append(m.Calls, "GymAdminDashboard")
	if m.GymAdminDashboardFunc != nil {
		return m.GymAdminDashboardFunc(ctx, sess)
	}
	return &domain.DashboardStats{}, nil
}

func (m *MockDashboardService) SuperAdminDashboard(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error) {
	m.Calls = append(m.Calls, "SuperAdminDashboard")
	if m.SuperAdminDashboardFunc != nil {
		return m.SuperAdminDashboardFunc(ctx, sess)
	}
	return &domain.DashboardStats{}, nil
}

// Compile-time interface compliance verification
var _ domain.DashboardService = (*MockDashboardService)(nil)
