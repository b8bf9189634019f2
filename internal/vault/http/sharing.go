package http

import (
	"net/http"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

type SharingHandler struct {
	SharingService *service.SharingService
}

// HandleCreate godoc
//
//	@Summary		Invite users to a workspace
//	@Description	Creates one pending invitation per email, in order, and emails each invitee.
//	@Description	A failure part way keeps the invitations created before it.
//	@Tags			Sharing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.InvitationRequest	true	"Workspace and emails"
//	@Success		201		{array}		vaultsdk.Invitation
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"WORKSPACE_NOT_FOUND"
//	@Failure		406		{object}	vaultsdk.ErrorResponse	"MISSING_INPUT"
//	@Router			/api/sharing-workspace/create [post]
func (h *SharingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.InvitationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, _ := httpx.UserIDFromContext(r.Context())

	invites, err := h.SharingService.CreateInvitations(r.Context(), userID, req.WorkspaceID, req.Emails)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitations(invites))
}

// HandleConfirm godoc
//
//	@Summary	Accept a workspace invitation
//	@Tags		Sharing
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.ConfirmInvitationRequest	true	"Invitation id"
//	@Success	200		{object}	vaultsdk.Ack
//	@Failure	404		{object}	vaultsdk.ErrorResponse	"INVITATION_NOT_FOUND or USER_NOT_FOUND"
//	@Router		/api/sharing-workspace/confirm-invitation [post]
func (h *SharingHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.ConfirmInvitationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.SharingService.ConfirmInvitation(r.Context(), req.InviteID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteAck(w, "Invitation accepted successfully")
}
