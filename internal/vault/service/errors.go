package service

import "errors"

// Error kinds surfaced to API callers. The text of each error is the stable
// errorCode written in HTTP responses.
var (
	ErrMissingInput           = errors.New("MISSING_INPUT")
	ErrEmailAlreadyRegistered = errors.New("EMAIL_ALREADY_REGISTERED")
	ErrEmailNotAuthenticated  = errors.New("EMAIL_NO_AUTHENTICATED")
	ErrIncorrectPassword      = errors.New("INCORRECT_PASSWORD")
	ErrUserNotFound           = errors.New("USER_NOT_FOUND")
	ErrAccountNotFound        = errors.New("ACCOUNT_NOT_FOUND")
	ErrWorkspaceNotFound      = errors.New("WORKSPACE_NOT_FOUND")
	ErrInvitationNotFound     = errors.New("INVITATION_NOT_FOUND")
	ErrOTPInvalid             = errors.New("OTP_INVALID")
	ErrTokenInvalid           = errors.New("TOKEN_INVALID")
)

// ErrTokenGeneration wraps signing failures. It is not an API error kind and
// degrades to SERVER_ERROR.
var ErrTokenGeneration = errors.New("token generation failed")
