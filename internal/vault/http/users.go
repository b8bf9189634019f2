package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
)

type UsersHandler struct {
	UserService  *service.UserService
	AdminService *service.AdminService
}

// HandleMe godoc
//
//	@Summary	Current user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	vaultsdk.CurrentUser
//	@Failure	401	{object}	vaultsdk.ErrorResponse	"UNAUTHENTICATED"
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"USER_NOT_FOUND"
//	@Router		/api/users/me [get]
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	u, err := h.UserService.CurrentUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCurrentUser(u))
}

// HandleList godoc
//
//	@Summary		List users
//	@Description	Regular users with their account counts, newest first. Admin only.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number (default 1)"
//	@Param			limit	query		int	false	"Page size (default 10, max 100)"
//	@Success		200		{object}	vaultsdk.UsersPage
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"UNAUTHENTICATED"
//	@Failure		403		{object}	vaultsdk.ErrorResponse	"FORBIDDEN"
//	@Router			/api/users [get]
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	p, err := h.AdminService.ListUsers(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUsersPage(p))
}

// queryInt returns the integer query parameter, or 0 when absent or invalid.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
