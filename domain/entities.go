package domain

import "time"

// Role values issued by the core API.
const (
	RoleUser       = "ROLE_USER"
	RoleTrainer    = "ROLE_TRAINER"
	RoleGymAdmin   = "ROLE_GYM_ADMIN"
	RoleSuperAdmin = "ROLE_SUPER_ADMIN"
)

// Account status as it moves through the registration flow.
const (
	StatusPending  = "PENDING"
	StatusVerified = "VERIFIED"
	StatusActive   = "ACTIVE"
)

// Session is the server-side record of a browser session. The browser only
// carries the signed session id; everything else lives in Redis.
//
// IsLoggedIn must never be true while Token is empty. The session repository
// rejects writes that violate this.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	FullName   string    `json:"full_name,omitempty"`
	Role       string    `json:"role,omitempty"`
	Token      string    `json:"token,omitempty"`
	IsLoggedIn bool      `json:"is_logged_in"`
	TrainerID  string    `json:"trainer_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	City       string    `json:"city,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// RegisterInitInput holds the identity fields collected at sign-up.
// TrainerID is the client-synthesized correlation id for trainer sign-ups;
// zero means none.
type RegisterInitInput struct {
	NationalID string
	Mobile     string
	Email      string
	RoleIntent string
	TrainerID  int
}

// RegisterInitResult is the backend's answer to a registration initiation.
type RegisterInitResult struct {
	AppUserID string
	Mobile    string
	TrainerID string
}

// VerifyResult is the backend's answer to an OTP verification. TrainerID is
// empty for regular users; when present it is authoritative over any
// client-synthesized correlation id.
type VerifyResult struct {
	UserID    string
	TrainerID string
}

// UserProfileInput is the attribute bag submitted at profile completion.
type UserProfileInput struct {
	Username      string
	Password      string
	FullName      string
	BirthDate     string
	AddressNo     string
	AddressStreet string
	City          string
	PostalCode    string
	Weight        string
	Height        string
	Injuries      string
}

// TrainerProfileInput extends the user bag with trainer credentials.
type TrainerProfileInput struct {
	UserProfileInput
	ServicePeriod string
}

// AuthResult captures the outcome of a login or profile completion.
type AuthResult struct {
	UserID   string
	Email    string
	FullName string
	Role     string
	Token    string
	City     string
	Status   string
	Mobile   string
}

// TrainerProfile is the trainer's public profile as served by the core API.
type TrainerProfile struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	City          string  `json:"city"`
	Mobile        string  `json:"mobile"`
	ServicePeriod string  `json:"service_period"`
	Rating        float64 `json:"rating"`
	ClientCount   int     `json:"client_count"`
}

// Workout is one scheduled slot in a client's weekly schedule.
type Workout struct {
	Time     string `json:"time"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
}

// ScheduleDay groups a day's scheduled workouts.
type ScheduleDay struct {
	ID       int       `json:"id"`
	Day      string    `json:"day"`
	Workouts []Workout `json:"workouts"`
}

// Supplement is a supplement recommendation shown on the client dashboard.
type Supplement struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Timing      string   `json:"timing"`
	Dosage      string   `json:"dosage"`
	Benefits    []string `json:"benefits"`
	Recommended bool     `json:"recommended"`
}

// Exercise is a single exercise prescription within a workout day.
type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   int    `json:"reps"`
	Weight string `json:"weight"`
}

// WorkoutDay groups the exercises prescribed for one day.
type WorkoutDay struct {
	Day       string     `json:"day"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutWeek is one week of a workout program.
type WorkoutWeek struct {
	WeekNumber int          `json:"week_number"`
	Workouts   []WorkoutDay `json:"workouts"`
}

// WorkoutProgram is a client's assigned training program.
type WorkoutProgram struct {
	Name  string        `json:"name"`
	Weeks []WorkoutWeek `json:"weeks"`
}

// ClientSummary is one row of a trainer's client roster.
type ClientSummary struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Program     string `json:"program"`
	Progress    int    `json:"progress"`
	Attendance  int    `json:"attendance"`
	NextSession string `json:"next_session"`
}

// DashboardStats are the aggregate figures shown on admin dashboards.
type DashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	ActiveMembers  int     `json:"active_members"`
	TotalTrainers  int     `json:"total_trainers"`
	TotalGyms      int     `json:"total_gyms"`
	ActivePrograms int     `json:"active_programs"`
	AverageRating  float64 `json:"average_rating"`
}

// ClientDashboard bundles the collections rendered on the client dashboard.
type ClientDashboard struct {
	Schedule    []ScheduleDay   `json:"schedule"`
	Supplements []Supplement    `json:"supplements"`
	Program     *WorkoutProgram `json:"program"`
}

// TrainerDashboard bundles the trainer's profile with their roster.
type TrainerDashboard struct {
	Profile *TrainerProfile `json:"profile"`
	Clients []ClientSummary `json:"clients"`
}
