package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// AuthServiceImpl implements domain.AuthService. It owns the registration
// state machine (PENDING -> VERIFIED -> ACTIVE) and the rule that a failed
// backend call leaves the session exactly as it was: every operation mutates
// a copy and assigns it back only after the store accepted the write.
type AuthServiceImpl struct {
	backend    domain.BackendGateway
	sessions   domain.SessionStore
	guard      *InflightGuard
	tokens     domain.TokenInspector
	sessionTTL time.Duration
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	backend domain.BackendGateway,
	sessions domain.SessionStore,
	guard *InflightGuard,
	tokens domain.TokenInspector,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		backend:    backend,
		sessions:   sessions,
		guard:      guard,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		logger:     logger.With().Str("component", "auth").Logger(),
	}
}

// persist writes next and, only on success, copies it into sess.
func (s *AuthServiceImpl) persist(ctx context.Context, sess *domain.Session, next domain.Session) error {
	if err := s.sessions.Save(ctx, &next); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	*sess = next
	return nil
}

// loginExpiry bounds the session lifetime by the bearer token's own expiry
// when the token carries one.
func (s *AuthServiceImpl) loginExpiry(token string) time.Time {
	expiry := time.Now().Add(s.sessionTTL)
	if exp, ok := s.tokens.ExpiresAt(token); ok && exp.Before(expiry) {
		expiry = exp
	}
	return expiry
}

// correlationID synthesizes the 6-digit trainer correlation id used to link
// a trainer sign-up to its later verification step.
func correlationID() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, fmt.Errorf("failed to generate correlation id: %w", err)
	}
	return int(n.Int64()) + 100000, nil
}

// InitiateRegistration implements domain.AuthService.
func (s *AuthServiceImpl) InitiateRegistration(ctx context.Context, sess *domain.Session, in domain.RegisterInitInput) (*domain.RegisterInitResult, error) {
	release, err := s.guard.Acquire(ctx, sess.ID, "register-init")
	if err != nil {
		return nil, err
	}
	defer release()

	if in.RoleIntent == domain.RoleTrainer && in.TrainerID == 0 {
		id, err := correlationID()
		if err != nil {
			return nil, err
		}
		in.TrainerID = id
	}

	result, err := s.backend.RegisterInit(ctx, in)
	if err != nil {
		return nil, err
	}

	next := *sess
	next.UserID = result.AppUserID
	next.Email = in.Email
	next.Role = in.RoleIntent
	next.Status = domain.StatusPending
	next.IsLoggedIn = false
	if result.TrainerID != "" {
		next.TrainerID = result.TrainerID
	} else if in.TrainerID != 0 {
		next.TrainerID = fmt.Sprintf("%d", in.TrainerID)
	}
	if err := s.persist(ctx, sess, next); err != nil {
		return nil, err
	}

	s.logger.Info().Str("app_user_id", result.AppUserID).Str("role", in.RoleIntent).Msg("registration initiated")
	return result, nil
}

// VerifyOTP implements domain.AuthService. Verification never logs the
// session in; a redundant second success re-establishes the same state.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, sess *domain.Session, username, otp string) (*domain.VerifyResult, error) {
	release, err := s.guard.Acquire(ctx, sess.ID, "register-verify")
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := s.backend.VerifyOTP(ctx, username, otp)
	if err != nil {
		return nil, err
	}

	next := *sess
	next.UserID = result.UserID
	next.Status = domain.StatusVerified
	next.IsLoggedIn = false
	if result.TrainerID != "" {
		// Backend-issued trainer id wins over the client-synthesized one.
		next.TrainerID = result.TrainerID
	}
	if err := s.persist(ctx, sess, next); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", result.UserID).Bool("trainer", result.TrainerID != "").Msg("otp verified")
	return result, nil
}

func (s *AuthServiceImpl) completeProfile(ctx context.Context, sess *domain.Session, result *domain.AuthResult) error {
	next := *sess
	if result.UserID != "" {
		next.UserID = result.UserID
	}
	next.Email = result.Email
	next.FullName = result.FullName
	next.Role = result.Role
	next.Token = result.Token
	next.City = result.City
	next.Status = domain.StatusActive
	next.IsLoggedIn = true
	next.ExpiresAt = s.loginExpiry(result.Token)
	return s.persist(ctx, sess, next)
}

// CompleteUserProfile implements domain.AuthService.
func (s *AuthServiceImpl) CompleteUserProfile(ctx context.Context, sess *domain.Session, in domain.UserProfileInput) error {
	release, err := s.guard.Acquire(ctx, sess.ID, "profile-user")
	if err != nil {
		return err
	}
	defer release()

	result, err := s.backend.RegisterUserProfile(ctx, in)
	if err != nil {
		return err
	}
	if err := s.completeProfile(ctx, sess, result); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", sess.UserID).Msg("user profile completed")
	return nil
}

// CompleteTrainerProfile implements domain.AuthService.
func (s *AuthServiceImpl) CompleteTrainerProfile(ctx context.Context, sess *domain.Session, in domain.TrainerProfileInput) error {
	release, err := s.guard.Acquire(ctx, sess.ID, "profile-trainer")
	if err != nil {
		return err
	}
	defer release()

	result, err := s.backend.RegisterTrainerProfile(ctx, in)
	if err != nil {
		return err
	}
	if err := s.completeProfile(ctx, sess, result); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", sess.UserID).Msg("trainer profile completed")
	return nil
}

// Login implements domain.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, sess *domain.Session, username, password string) error {
	release, err := s.guard.Acquire(ctx, sess.ID, "login")
	if err != nil {
		return err
	}
	defer release()

	result, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if result.Token == "" {
		return domain.ErrNotAuthenticated
	}

	next := *sess
	next.UserID = result.UserID
	next.Email = username
	next.Role = result.Role
	next.Token = result.Token
	next.Status = domain.StatusActive
	next.IsLoggedIn = true
	next.ExpiresAt = s.loginExpiry(result.Token)
	if err := s.persist(ctx, sess, next); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", result.UserID).Str("role", result.Role).Msg("login")
	return nil
}

// TrainerLogin implements domain.AuthService. After a successful login the
// trainer profile is fetched once: a missing profile (404) reports
// profileComplete=false while the session stays logged in, so the caller can
// route to profile completion.
func (s *AuthServiceImpl) TrainerLogin(ctx context.Context, sess *domain.Session, email, password string) (bool, error) {
	release, err := s.guard.Acquire(ctx, sess.ID, "trainer-login")
	if err != nil {
		return false, err
	}
	defer release()

	result, err := s.backend.TrainerLogin(ctx, email, password)
	if err != nil {
		return false, err
	}
	if result.Token == "" {
		return false, domain.ErrNotAuthenticated
	}

	next := *sess
	next.UserID = result.UserID
	next.Email = email
	next.FullName = result.FullName
	next.Role = domain.RoleTrainer
	next.Token = result.Token
	next.City = result.City
	next.Status = domain.StatusActive
	next.IsLoggedIn = true
	next.ExpiresAt = s.loginExpiry(result.Token)
	if err := s.persist(ctx, sess, next); err != nil {
		return false, err
	}

	if _, err := s.backend.TrainerProfile(ctx, sess.Token); err != nil {
		if err == domain.ErrProfileIncomplete {
			s.logger.Info().Str("user_id", sess.UserID).Msg("trainer login, profile incomplete")
			return false, nil
		}
		return false, err
	}
	s.logger.Info().Str("user_id", sess.UserID).Msg("trainer login")
	return true, nil
}

// Logout implements domain.AuthService. The backend invalidation is best
// effort; the local session is destroyed regardless of its outcome.
func (s *AuthServiceImpl) Logout(ctx context.Context, sess *domain.Session) error {
	if sess.Token != "" {
		if err := s.backend.Logout(ctx, sess.Token); err != nil {
			s.logger.Warn().Err(err).Str("user_id", sess.UserID).Msg("backend logout failed, clearing session anyway")
		}
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	*sess = domain.Session{ID: sess.ID}
	return nil
}
