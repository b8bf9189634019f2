package http

import (
	"net/http"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

type WorkspacesHandler struct {
	WorkspaceService *service.WorkspaceService
}

// HandleCreate godoc
//
//	@Summary		Create a workspace
//	@Description	Links the listed accounts of the caller. Unknown or foreign ids are ignored.
//	@Tags			Workspaces
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.WorkspaceRequest	true	"Workspace"
//	@Success		201		{object}	vaultsdk.Workspace
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"USER_NOT_FOUND"
//	@Failure		406		{object}	vaultsdk.ErrorResponse	"MISSING_INPUT"
//	@Router			/api/workspaces/create [post]
func (h *WorkspacesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.WorkspaceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, _ := httpx.UserIDFromContext(r.Context())

	ws, err := h.WorkspaceService.Create(r.Context(), userID, req.Name, req.Accounts)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWorkspace(ws))
}

// HandleList godoc
//
//	@Summary		List workspaces
//	@Description	Workspaces the caller owns or is a member of, with decrypted account passwords.
//	@Tags			Workspaces
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	vaultsdk.WorkspaceView
//	@Router			/api/workspaces [get]
func (h *WorkspacesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	views, err := h.WorkspaceService.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toWorkspaceViews(views))
}

// HandleUpdate godoc
//
//	@Summary		Update a workspace
//	@Description	Renames the workspace and replaces its account set.
//	@Tags			Workspaces
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string						true	"Workspace id"
//	@Param			request		body		vaultsdk.WorkspaceRequest	true	"Workspace"
//	@Success		200			{object}	vaultsdk.Workspace
//	@Failure		404			{object}	vaultsdk.ErrorResponse	"WORKSPACE_NOT_FOUND"
//	@Failure		406			{object}	vaultsdk.ErrorResponse	"MISSING_INPUT"
//	@Router			/api/workspaces/update/{workspaceId} [put]
func (h *WorkspacesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.WorkspaceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, _ := httpx.UserIDFromContext(r.Context())

	ws, err := h.WorkspaceService.Update(r.Context(), userID, r.PathValue("workspaceId"), req.Name, req.Accounts)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWorkspace(ws))
}

// HandleDelete godoc
//
//	@Summary	Soft-delete a workspace
//	@Tags		Workspaces
//	@Security	BearerAuth
//	@Param		workspaceId	path	string	true	"Workspace id"
//	@Success	204
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"WORKSPACE_NOT_FOUND"
//	@Router		/api/workspaces/soft-delete/{workspaceId} [delete]
func (h *WorkspacesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	if err := h.WorkspaceService.SoftDelete(r.Context(), userID, r.PathValue("workspaceId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRestore godoc
//
//	@Summary	Restore a soft-deleted workspace
//	@Tags		Workspaces
//	@Security	BearerAuth
//	@Produce	json
//	@Param		workspaceId	path		string	true	"Workspace id"
//	@Success	200			{object}	vaultsdk.Ack
//	@Failure	403			{object}	vaultsdk.ErrorResponse	"FORBIDDEN"
//	@Failure	404			{object}	vaultsdk.ErrorResponse	"WORKSPACE_NOT_FOUND"
//	@Router		/api/workspaces/restore/{workspaceId} [patch]
func (h *WorkspacesHandler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	if err := h.WorkspaceService.Restore(r.Context(), r.PathValue("workspaceId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteAck(w, "Restore workspace successfully!")
}
