package domain

import "errors"

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrTokenMissing    = errors.New("logged-in session requires a token")
)

// Auth errors
var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrRoleMismatch      = errors.New("insufficient role permissions")
	ErrProfileIncomplete = errors.New("trainer profile incomplete")
)

// Flow errors
var (
	ErrOperationInFlight  = errors.New("operation already in progress")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// BackendError carries a core API rejection: a sentinel code other than the
// success code, plus the backend's message, surfaced verbatim to the caller.
type BackendError struct {
	Code    string
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "backend rejected request with code " + e.Code
}

// AsBackendError unwraps err into a BackendError if it is one.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
