package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ChamithuRuberu/fitpro/domain"
)

// CodeSuccess is the core API's sentinel success code. The backend signals
// business-level success through it, independent of the HTTP status.
const CodeSuccess = "0000"

// envelope is the core API's uniform response shape.
type envelope struct {
	Code    string          `json:"code"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client implements domain.BackendGateway over the core REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a gateway for the core API rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger.With().Str("component", "backend").Logger(),
	}
}

var _ domain.BackendGateway = (*Client)(nil)

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("backend call failed")
		return fmt.Errorf("%s: %w", path, domain.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrNotAuthenticated
	case http.StatusNotFound:
		return domain.ErrProfileIncomplete
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("backend response undecodable")
		return fmt.Errorf("%s: %w", path, domain.ErrBackendUnavailable)
	}

	if env.Code != CodeSuccess {
		return &domain.BackendError{Code: env.Code, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode %s data: %w", path, err)
		}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

type registerInitRequest struct {
	NIC       string `json:"nic"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	RoleType  string `json:"role_type"`
	TrainerID *int   `json:"trainer_id,omitempty"`
}

type registerInitData struct {
	AppUserID string `json:"app_user_id"`
	Mobile    string `json:"mobile"`
	TrainerID *int64 `json:"trainer_id"`
}

// RegisterInit implements domain.BackendGateway.
func (c *Client) RegisterInit(ctx context.Context, in domain.RegisterInitInput) (*domain.RegisterInitResult, error) {
	req := registerInitRequest{
		NIC:      in.NationalID,
		Mobile:   in.Mobile,
		Email:    in.Email,
		RoleType: in.RoleIntent,
	}
	if in.TrainerID != 0 {
		req.TrainerID = &in.TrainerID
	}

	var data registerInitData
	if err := c.post(ctx, "/user/register-init", "", req, &data); err != nil {
		return nil, err
	}

	result := &domain.RegisterInitResult{AppUserID: data.AppUserID, Mobile: data.Mobile}
	if data.TrainerID != nil {
		result.TrainerID = strconv.FormatInt(*data.TrainerID, 10)
	}
	return result, nil
}

type verifyRequest struct {
	Username string `json:"username"`
	OTP      string `json:"otp"`
}

type verifyData struct {
	UserID    string `json:"user_id"`
	TrainerID *int64 `json:"trainer_id"`
}

// VerifyOTP implements domain.BackendGateway.
func (c *Client) VerifyOTP(ctx context.Context, username, otp string) (*domain.VerifyResult, error) {
	var data verifyData
	if err := c.post(ctx, "/user/register-verify", "", verifyRequest{Username: username, OTP: otp}, &data); err != nil {
		return nil, err
	}

	result := &domain.VerifyResult{UserID: data.UserID}
	if data.TrainerID != nil {
		result.TrainerID = strconv.FormatInt(*data.TrainerID, 10)
	}
	return result, nil
}

type profileRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	FullName      string `json:"full_name"`
	BirthOfDate   string `json:"birth_of_date"`
	AddressNo     string `json:"address_no"`
	AddressStreet string `json:"address_street"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Weight        string `json:"weight"`
	Height        string `json:"height"`
	Injuries      string `json:"injuries"`
	RoleType      string `json:"role_type"`
	ServicePeriod string `json:"servicePeriod,omitempty"`
}

type profileUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	City     string `json:"city"`
	Status   string `json:"status"`
	Mobile   string `json:"mobile"`
	FullName string `json:"full_name"`
}

type profileData struct {
	Token string      `json:"token"`
	User  profileUser `json:"user"`
}

func profileRequestFrom(in domain.UserProfileInput, roleType, servicePeriod string) profileRequest {
	return profileRequest{
		Username:      in.Username,
		Password:      in.Password,
		FullName:      in.FullName,
		BirthOfDate:   in.BirthDate,
		AddressNo:     in.AddressNo,
		AddressStreet: in.AddressStreet,
		City:          in.City,
		PostalCode:    in.PostalCode,
		Weight:        in.Weight,
		Height:        in.Height,
		Injuries:      in.Injuries,
		RoleType:      roleType,
		ServicePeriod: servicePeriod,
	}
}

func (d profileData) authResult(role string) *domain.AuthResult {
	return &domain.AuthResult{
		UserID:   d.User.ID,
		Email:    d.User.Email,
		FullName: d.User.FullName,
		Role:     role,
		Token:    d.Token,
		City:     d.User.City,
		Status:   d.User.Status,
		Mobile:   d.User.Mobile,
	}
}

// RegisterUserProfile implements domain.BackendGateway.
func (c *Client) RegisterUserProfile(ctx context.Context, in domain.UserProfileInput) (*domain.AuthResult, error) {
	var data profileData
	req := profileRequestFrom(in, domain.RoleUser, "")
	if err := c.post(ctx, "/user/app-user/register", "", req, &data); err != nil {
		return nil, err
	}
	return data.authResult(domain.RoleUser), nil
}

// RegisterTrainerProfile implements domain.BackendGateway.
func (c *Client) RegisterTrainerProfile(ctx context.Context, in domain.TrainerProfileInput) (*domain.AuthResult, error) {
	var data profileData
	req := profileRequestFrom(in.UserProfileInput, domain.RoleTrainer, in.ServicePeriod)
	if err := c.post(ctx, "/user/app-user/register", "", req, &data); err != nil {
		return nil, err
	}
	return data.authResult(domain.RoleTrainer), nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginData struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
	Role   string `json:"role"`
}

// Login implements domain.BackendGateway.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	var data loginData
	if err := c.post(ctx, "/auth/login", "", loginRequest{Username: username, Password: password}, &data); err != nil {
		return nil, err
	}
	return &domain.AuthResult{
		UserID: data.UserID,
		Email:  username,
		Role:   data.Role,
		Token:  data.Token,
		Status: domain.StatusActive,
	}, nil
}

type trainerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleType string `json:"role_type"`
}

// TrainerLogin implements domain.BackendGateway. The role discriminator is
// fixed to ROLE_TRAINER on this endpoint.
func (c *Client) TrainerLogin(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	var data profileData
	req := trainerLoginRequest{Email: email, Password: password, RoleType: domain.RoleTrainer}
	if err := c.post(ctx, "/user/login", "", req, &data); err != nil {
		return nil, err
	}
	return data.authResult(domain.RoleTrainer), nil
}

// TrainerProfile implements domain.BackendGateway. A 404 from the core API
// maps to ErrProfileIncomplete, 401/403 to ErrNotAuthenticated.
func (c *Client) TrainerProfile(ctx context.Context, token string) (*domain.TrainerProfile, error) {
	var profile domain.TrainerProfile
	if err := c.get(ctx, "/trainer/profile", token, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Logout implements domain.BackendGateway.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.post(ctx, "/auth/logout", token, nil, nil)
}

// Schedule implements domain.BackendGateway.
func (c *Client) Schedule(ctx context.Context, token string) ([]domain.ScheduleDay, error) {
	var days []domain.ScheduleDay
	if err := c.get(ctx, "/client/schedule", token, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// Supplements implements domain.BackendGateway.
func (c *Client) Supplements(ctx context.Context, token string) ([]domain.Supplement, error) {
	var supplements []domain.Supplement
	if err := c.get(ctx, "/client/supplements", token, &supplements); err != nil {
		return nil, err
	}
	return supplements, nil
}

// WorkoutProgram implements domain.BackendGateway.
func (c *Client) WorkoutProgram(ctx context.Context, token string) (*domain.WorkoutProgram, error) {
	var program domain.WorkoutProgram
	if err := c.get(ctx, "/client/workout-program", token, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// TrainerClients implements domain.BackendGateway.
func (c *Client) TrainerClients(ctx context.Context, token string) ([]domain.ClientSummary, error) {
	var clients []domain.ClientSummary
	if err := c.get(ctx, "/trainer/clients", token, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GymStats implements domain.BackendGateway.
func (c *Client) GymStats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.get(ctx, "/admin/gym/stats", token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// PlatformStats implements domain.BackendGateway.
func (c *Client) PlatformStats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.get(ctx, "/admin/platform/stats", token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
