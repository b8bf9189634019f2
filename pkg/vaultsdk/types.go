package vaultsdk

import "time"

// ============================================================================
// Common Envelopes
// ============================================================================

// Ack is the acknowledgement returned by commands without a payload.
type Ack struct {
	// StatusCode is always "OK" on success
	StatusCode string `json:"statusCode"`

	// Msg is a human-readable confirmation
	Msg string `json:"msg"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// ============================================================================
// Auth Types
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ConfirmEmailRequest struct {
	ID string `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CurrentUser is the public projection of a user.
type CurrentUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// LoginResponse is returned by POST /api/auth/login. The tokens are only
// present for extension clients; browsers receive the access token as a
// cookie instead.
type LoginResponse struct {
	StatusCode   string      `json:"statusCode"`
	Msg          string      `json:"msg"`
	AccessToken  string      `json:"accessToken,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	CurrentUser  CurrentUser `json:"currentUser"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPair is returned by POST /api/auth/refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ============================================================================
// Account Types
// ============================================================================

type AccountRequest struct {
	Domain   string `json:"domain"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Account is a stored credential. Password is the plaintext value.
type Account struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Domain    string     `json:"domain"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

type StoreAccountResponse struct {
	StatusCode string  `json:"statusCode"`
	Msg        string  `json:"msg"`
	Account    Account `json:"account"`
}

// ============================================================================
// Workspace Types
// ============================================================================

// WorkspaceRequest creates or updates a workspace. Accounts lists the ids of
// the caller's accounts to share.
type WorkspaceRequest struct {
	Name     string   `json:"name"`
	Accounts []string `json:"accounts"`
}

type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	Accounts  []string  `json:"accounts"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type WorkspaceAccount struct {
	ID       string `json:"id"`
	Domain   string `json:"domain"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// WorkspaceView is one entry of GET /api/workspaces.
type WorkspaceView struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Owner    UserRef            `json:"owner"`
	Members  []UserRef          `json:"members"`
	Accounts []WorkspaceAccount `json:"accounts"`
}

// ============================================================================
// Sharing Types
// ============================================================================

type InvitationRequest struct {
	WorkspaceID string   `json:"workspaceId"`
	Emails      []string `json:"emails"`
}

type Invitation struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	WorkspaceID string    `json:"workspaceId"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ConfirmInvitationRequest struct {
	InviteID string `json:"inviteId"`
}

// ============================================================================
// Admin Types
// ============================================================================

type UserSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	AccountsCount   int    `json:"accountsCount"`
}

// UsersPage is one page of GET /api/users.
type UsersPage struct {
	ListUsers   []UserSummary `json:"listUsers"`
	TotalItems  int           `json:"totalItems"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Value int    `json:"value"`
}

// RegistrationStats is returned by GET /api/dashboard/user-registrations.
type RegistrationStats struct {
	Years []int          `json:"years"`
	Data  []MonthlyCount `json:"data"`
}

// DomainCount is one bucket of GET /api/dashboard/accounts-of-users.
type DomainCount struct {
	Domain string `json:"domain"`
	Value  int    `json:"value"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status string `json:"status"`

	// Uptime is the process uptime (e.g. "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the build version
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	// Database reports the store connectivity
	Database string `json:"database"`
}
