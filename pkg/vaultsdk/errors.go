package vaultsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
)

// Error codes returned by the API.
const (
	ErrorCodeMissingInput           = "MISSING_INPUT"
	ErrorCodeEmailAlreadyRegistered = "EMAIL_ALREADY_REGISTERED"
	ErrorCodeEmailNotAuthenticated  = "EMAIL_NO_AUTHENTICATED"
	ErrorCodeIncorrectPassword      = "INCORRECT_PASSWORD"
	ErrorCodeUserNotFound           = "USER_NOT_FOUND"
	ErrorCodeAccountNotFound        = "ACCOUNT_NOT_FOUND"
	ErrorCodeWorkspaceNotFound      = "WORKSPACE_NOT_FOUND"
	ErrorCodeInvitationNotFound     = "INVITATION_NOT_FOUND"
	ErrorCodeOTPInvalid             = "OTP_INVALID"
	ErrorCodeTokenInvalid           = "TOKEN_INVALID"
	ErrorCodeUnauthenticated        = httpx.CodeUnauthenticated
	ErrorCodeForbidden              = httpx.CodeForbidden
	ErrorCodeRateLimited            = httpx.CodeRateLimited
	ErrorCodeServerError            = "SERVER_ERROR"
)

// APIError is a failed API call. The server writes it with WriteError and
// the client decodes it back from the response body.
type APIError struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.ErrorCode, e.Status, e.Message)
}

// Is matches on ErrorCode so callers can use errors.Is against the
// predefined values below.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.ErrorCode == e.ErrorCode
}

// WriteError writes the error as the standard JSON error body.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.Status, e.ErrorCode, e.Message)
}

// Predefined API errors. Messages are the ones shown to end users.
var (
	ErrMissingInput = &APIError{
		Status: http.StatusNotAcceptable, ErrorCode: ErrorCodeMissingInput,
		Message: "Missing input!",
	}
	ErrEmailAlreadyRegistered = &APIError{
		Status: http.StatusConflict, ErrorCode: ErrorCodeEmailAlreadyRegistered,
		Message: "Email is already registered!",
	}
	ErrEmailNotAuthenticated = &APIError{
		Status: http.StatusConflict, ErrorCode: ErrorCodeEmailNotAuthenticated,
		Message: "Email has not been authenticated!",
	}
	ErrIncorrectPassword = &APIError{
		Status: http.StatusUnauthorized, ErrorCode: ErrorCodeIncorrectPassword,
		Message: "Incorrect password!",
	}
	ErrUserNotFound = &APIError{
		Status: http.StatusNotFound, ErrorCode: ErrorCodeUserNotFound,
		Message: "User not found!",
	}
	ErrAccountNotFound = &APIError{
		Status: http.StatusNotFound, ErrorCode: ErrorCodeAccountNotFound,
		Message: "Account not found!",
	}
	ErrWorkspaceNotFound = &APIError{
		Status: http.StatusNotFound, ErrorCode: ErrorCodeWorkspaceNotFound,
		Message: "Workspace not found!",
	}
	ErrInvitationNotFound = &APIError{
		Status: http.StatusNotFound, ErrorCode: ErrorCodeInvitationNotFound,
		Message: "Invitation not found!",
	}
	ErrOTPInvalid = &APIError{
		Status: http.StatusConflict, ErrorCode: ErrorCodeOTPInvalid,
		Message: "OTP is expired or invalid!",
	}
	ErrTokenInvalid = &APIError{
		Status: http.StatusUnauthorized, ErrorCode: ErrorCodeTokenInvalid,
		Message: "Token is invalid or expired!",
	}
	ErrUnauthenticated = &APIError{
		Status: http.StatusUnauthorized, ErrorCode: ErrorCodeUnauthenticated,
		Message: "Authentication required!",
	}
	ErrForbidden = &APIError{
		Status: http.StatusForbidden, ErrorCode: ErrorCodeForbidden,
		Message: "Forbidden resource!",
	}
	ErrRateLimited = &APIError{
		Status: http.StatusTooManyRequests, ErrorCode: ErrorCodeRateLimited,
		Message: "Too many requests. Please try again later.",
	}
	ErrServer = &APIError{
		Status: http.StatusInternalServerError, ErrorCode: ErrorCodeServerError,
		Message: "Internal server error",
	}
)

// ErrNoRefreshToken is returned when a session needs to refresh but holds
// no refresh token.
var ErrNoRefreshToken = errors.New("vaultsdk: no refresh token available")

// parseErrorResponse turns a non-success response into an *APIError. Bodies
// that are not in the standard shape still produce an APIError carrying the
// HTTP status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.ErrorCode != "" {
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		return &apiErr
	}

	return &APIError{
		Status:    resp.StatusCode,
		ErrorCode: http.StatusText(resp.StatusCode),
		Message:   string(body),
	}
}
