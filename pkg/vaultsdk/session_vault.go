package vaultsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ============================================================================
// Accounts
// ============================================================================

// StoreAccount saves a new credential.
func (s *Session) StoreAccount(ctx context.Context, req AccountRequest) (*Account, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/accounts/store", req)
	if err != nil {
		return nil, err
	}

	var out StoreAccountResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

// ListAccounts returns the caller's live accounts, newest first.
func (s *Session) ListAccounts(ctx context.Context) ([]Account, error) {
	var out []Account
	if err := s.getJSON(ctx, "/api/accounts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetAccount(ctx context.Context, id string) (*Account, error) {
	var out Account
	if err := s.getJSON(ctx, "/api/accounts/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateAccount(ctx context.Context, id string, req AccountRequest) (*Account, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/accounts/update/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out Account
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteAccount(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/accounts/delete/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RestoreAccount undoes a soft delete. Admin only.
func (s *Session) RestoreAccount(ctx context.Context, id string) (*Ack, error) {
	return s.patchAck(ctx, "/api/accounts/restore/"+url.PathEscape(id))
}

// ============================================================================
// Workspaces
// ============================================================================

func (s *Session) CreateWorkspace(ctx context.Context, req WorkspaceRequest) (*Workspace, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/workspaces/create", req)
	if err != nil {
		return nil, err
	}

	var out Workspace
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWorkspaces returns the workspaces the caller owns or is a member of.
func (s *Session) ListWorkspaces(ctx context.Context) ([]WorkspaceView, error) {
	var out []WorkspaceView
	if err := s.getJSON(ctx, "/api/workspaces", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) UpdateWorkspace(ctx context.Context, id string, req WorkspaceRequest) (*Workspace, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/workspaces/update/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out Workspace
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteWorkspace(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/workspaces/soft-delete/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RestoreWorkspace undoes a soft delete. Admin only.
func (s *Session) RestoreWorkspace(ctx context.Context, id string) (*Ack, error) {
	return s.patchAck(ctx, "/api/workspaces/restore/"+url.PathEscape(id))
}

// ShareWorkspace invites each email to the workspace, in order.
func (s *Session) ShareWorkspace(ctx context.Context, req InvitationRequest) ([]Invitation, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/sharing-workspace/create", req)
	if err != nil {
		return nil, err
	}

	var out []Invitation
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) patchAck(ctx context.Context, path string) (*Ack, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, path, nil)
	if err != nil {
		return nil, err
	}

	var ack Ack
	if err := decodeJSON(resp, &ack, http.StatusOK); err != nil {
		return nil, err
	}
	return &ack, nil
}
