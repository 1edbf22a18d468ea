package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// DashboardServiceImpl implements domain.DashboardService. Dashboards are
// read-only: each call fans out to the role-scoped collection endpoints with
// the session's bearer token and aggregates the results.
type DashboardServiceImpl struct {
	backend domain.BackendGateway
	logger  zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(backend domain.BackendGateway, logger zerolog.Logger) domain.DashboardService {
	return &DashboardServiceImpl{
		backend: backend,
		logger:  logger.With().Str("component", "dashboard").Logger(),
	}
}

// ClientDashboard implements domain.DashboardService.
func (s *DashboardServiceImpl) ClientDashboard(ctx context.Context, sess *domain.Session) (*domain.ClientDashboard, error) {
	schedule, err := s.backend.Schedule(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	supplements, err := s.backend.Supplements(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	program, err := s.backend.WorkoutProgram(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	return &domain.ClientDashboard{
		Schedule:    schedule,
		Supplements: supplements,
		Program:     program,
	}, nil
}

// TrainerDashboard implements domain.DashboardService. A missing trainer
// profile propagates as ErrProfileIncomplete so the handler can route to
// profile completion rather than treating it as an auth failure.
func (s *DashboardServiceImpl) TrainerDashboard(ctx context.Context, sess *domain.Session) (*domain.TrainerDashboard, error) {
	profile, err := s.backend.TrainerProfile(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	clients, err := s.backend.TrainerClients(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	return &domain.TrainerDashboard{Profile: profile, Clients: clients}, nil
}

// GymAdminDashboard implements domain.DashboardService.
func (s *DashboardServiceImpl) GymAdminDashboard(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error) {
	return s.backend.GymStats(ctx, sess.Token)
}

// SuperAdminDashboard implements domain.DashboardService.
func (s *DashboardServiceImpl) SuperAdminDashboard(ctx context.Context, sess *domain.Session) (*domain.DashboardStats, error) {
	return s.backend.PlatformStats(ctx, sess.Token)
}
