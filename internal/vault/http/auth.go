package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

// extensionOriginPrefix marks browser-extension clients, which cannot rely
// on cookies and receive their tokens in the login body.
const extensionOriginPrefix = "chrome-extension://"

type AuthHandler struct {
	UserService *service.UserService
	Cookie      httpx.CookieOptions
	Now         func() time.Time
}

// HandleRegister godoc
//
//	@Summary		Register a new user
//	@Description	Creates a pending user and emails a confirmation link.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.RegisterRequest	true	"Registration"
//	@Success		200		{object}	vaultsdk.Ack
//	@Failure		406		{object}	vaultsdk.ErrorResponse	"MISSING_INPUT"
//	@Failure		409		{object}	vaultsdk.ErrorResponse	"EMAIL_ALREADY_REGISTERED"
//	@Failure		429		{object}	vaultsdk.ErrorResponse	"RATE_LIMITED"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.UserService.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteAck(w, "Register successfully! Check and confirm your email")
}

// HandleConfirm godoc
//
//	@Summary	Confirm an email address
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.ConfirmEmailRequest	true	"User id from the confirmation link"
//	@Success	200		{object}	vaultsdk.Ack
//	@Failure	404		{object}	vaultsdk.ErrorResponse	"USER_NOT_FOUND"
//	@Failure	406		{object}	vaultsdk.ErrorResponse	"MISSING_INPUT"
//	@Router		/api/auth/confirm [post]
func (h *AuthHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.ConfirmEmailRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.UserService.ConfirmEmail(r.Context(), req.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteAck(w, "Confirm email successfully!!")
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Browser clients receive the access token in the access_token cookie.
//	@Description	Clients with a chrome-extension:// Origin receive both tokens in the body instead.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	vaultsdk.LoginResponse
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"INCORRECT_PASSWORD"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"USER_NOT_FOUND"
//	@Failure		409		{object}	vaultsdk.ErrorResponse	"EMAIL_NO_AUTHENTICATED"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := vaultsdk.LoginResponse{
		StatusCode:  "OK",
		Msg:         "Login successfully!",
		CurrentUser: toCurrentUser(res.User),
	}
	if strings.HasPrefix(r.Header.Get("Origin"), extensionOriginPrefix) {
		out.AccessToken = res.Tokens.AccessToken
		out.RefreshToken = res.Tokens.RefreshToken
	} else {
		httpx.SetAccessTokenCookie(w, res.Tokens.AccessToken, h.Cookie, h.now())
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleLogout godoc
//
//	@Summary	Log out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	vaultsdk.Ack
//	@Router		/api/auth/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearAccessTokenCookie(w, h.Cookie)
	httpx.WriteAck(w, "Logout successfully!")
}

// HandleForgotPassword godoc
//
//	@Summary	Request a password reset code
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.ForgotPasswordRequest	true	"Email"
//	@Success	200		{object}	vaultsdk.Ack
//	@Failure	404		{object}	vaultsdk.ErrorResponse	"USER_NOT_FOUND"
//	@Failure	409		{object}	vaultsdk.ErrorResponse	"EMAIL_NO_AUTHENTICATED"
//	@Router		/api/auth/forgot-password [post]
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.ForgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.UserService.ForgotPassword(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteAck(w, "Please check your email to confirm forget")
}

// HandleVerifyOTP godoc
//
//	@Summary	Verify a password reset code
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.VerifyOTPRequest	true	"Email and code"
//	@Success	200		{object}	vaultsdk.Ack
//	@Failure	409		{object}	vaultsdk.ErrorResponse	"OTP_INVALID"
//	@Router		/api/auth/verify-otp [post]
func (h *AuthHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.VerifyOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.UserService.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteAck(w, "OTP is verified")
}

// HandleResetPassword godoc
//
//	@Summary	Set a new password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.ResetPasswordRequest	true	"Email and new password"
//	@Success	200		{object}	vaultsdk.Ack
//	@Failure	404		{object}	vaultsdk.ErrorResponse	"USER_NOT_FOUND"
//	@Failure	409		{object}	vaultsdk.ErrorResponse	"EMAIL_NO_AUTHENTICATED"
//	@Router		/api/auth/reset-password [post]
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.UserService.ResetPassword(r.Context(), req.Email, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteAck(w, "Reset password successfully")
}

// HandleRefresh godoc
//
//	@Summary	Refresh the token pair
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.RefreshRequest	true	"Refresh token"
//	@Success	200		{object}	vaultsdk.TokenPair
//	@Failure	401		{object}	vaultsdk.ErrorResponse	"TOKEN_INVALID"
//	@Router		/api/auth/refresh [post]
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pair, err := h.UserService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, vaultsdk.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
