package http

import (
	"net/http"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
)

type DashboardHandler struct {
	AdminService *service.AdminService
}

// HandleUserRegistrations godoc
//
//	@Summary		Monthly registrations
//	@Description	Registrations of regular users per month. Years are newest first, months ascend within a year.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	vaultsdk.RegistrationStats
//	@Failure		403	{object}	vaultsdk.ErrorResponse	"FORBIDDEN"
//	@Router			/api/dashboard/user-registrations [get]
func (h *DashboardHandler) HandleUserRegistrations(w http.ResponseWriter, r *http.Request) {
	stats, err := h.AdminService.UserRegistrations(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRegistrationStats(stats))
}

// HandleAccountsByDomain godoc
//
//	@Summary		Stored accounts per domain
//	@Description	Buckets: gmail.com, facebook.com, outlook.com, edu.vn and others.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		vaultsdk.DomainCount
//	@Failure		403	{object}	vaultsdk.ErrorResponse	"FORBIDDEN"
//	@Router			/api/dashboard/accounts-of-users [get]
func (h *DashboardHandler) HandleAccountsByDomain(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.AdminService.AccountsByDomain(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDomainCounts(buckets))
}
