package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

// serviceErrors maps each service error kind to its API error.
var serviceErrors = []struct {
	kind error
	api  *vaultsdk.APIError
}{
	{service.ErrMissingInput, vaultsdk.ErrMissingInput},
	{service.ErrEmailAlreadyRegistered, vaultsdk.ErrEmailAlreadyRegistered},
	{service.ErrEmailNotAuthenticated, vaultsdk.ErrEmailNotAuthenticated},
	{service.ErrIncorrectPassword, vaultsdk.ErrIncorrectPassword},
	{service.ErrUserNotFound, vaultsdk.ErrUserNotFound},
	{service.ErrAccountNotFound, vaultsdk.ErrAccountNotFound},
	{service.ErrWorkspaceNotFound, vaultsdk.ErrWorkspaceNotFound},
	{service.ErrInvitationNotFound, vaultsdk.ErrInvitationNotFound},
	{service.ErrOTPInvalid, vaultsdk.ErrOTPInvalid},
	{service.ErrTokenInvalid, vaultsdk.ErrTokenInvalid},
}

// writeServiceError writes the API error for err. Anything that is not a
// known kind is logged and reported as SERVER_ERROR.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.kind) {
			m.api.WriteError(w)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	vaultsdk.ErrServer.WriteError(w)
}

// decodeBody decodes the JSON request body. A missing or malformed body is
// reported as MISSING_INPUT.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(r, v); err != nil {
		slogx.FromContext(r.Context()).Debug("invalid request body", "err", err)
		vaultsdk.ErrMissingInput.WriteError(w)
		return false
	}
	return true
}
