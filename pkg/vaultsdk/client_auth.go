package vaultsdk

import (
	"context"
	"net/http"
)

// Register creates a pending user and triggers the verification email.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Ack, error) {
	return c.postAck(ctx, "/api/auth/register", req)
}

// ConfirmEmail activates the user with the given id.
func (c *SDKClient) ConfirmEmail(ctx context.Context, userID string) (*Ack, error) {
	return c.postAck(ctx, "/api/auth/confirm", ConfirmEmailRequest{ID: userID})
}

// Login exchanges credentials for a token pair.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword emails a one-time code to the user.
func (c *SDKClient) ForgotPassword(ctx context.Context, email string) (*Ack, error) {
	return c.postAck(ctx, "/api/auth/forgot-password", ForgotPasswordRequest{Email: email})
}

// VerifyOTP checks a one-time code. A code verifies at most once.
func (c *SDKClient) VerifyOTP(ctx context.Context, email, otp string) (*Ack, error) {
	return c.postAck(ctx, "/api/auth/verify-otp", VerifyOTPRequest{Email: email, OTP: otp})
}

// ResetPassword sets a new password for an active user.
func (c *SDKClient) ResetPassword(ctx context.Context, email, password string) (*Ack, error) {
	return c.postAck(ctx, "/api/auth/reset-password", ResetPasswordRequest{Email: email, Password: password})
}

// RefreshTokens trades a refresh token for a new pair.
func (c *SDKClient) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/refresh", RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := decodeJSON(resp, &pair, http.StatusOK); err != nil {
		return nil, err
	}
	return &pair, nil
}

// ConfirmInvitation accepts a workspace invitation. No session is needed;
// the invitation id is the credential.
func (c *SDKClient) ConfirmInvitation(ctx context.Context, inviteID string) (*Ack, error) {
	return c.postAck(ctx, "/api/sharing-workspace/confirm-invitation", ConfirmInvitationRequest{InviteID: inviteID})
}

func (c *SDKClient) postAck(ctx context.Context, path string, payload any) (*Ack, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}

	var ack Ack
	if err := decodeJSON(resp, &ack, http.StatusOK); err != nil {
		return nil, err
	}
	return &ack, nil
}
