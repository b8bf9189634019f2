package http

import (
	"net/http"

	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/httpx"
	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

type AccountsHandler struct {
	AccountService *service.AccountService
}

func accountInput(req vaultsdk.AccountRequest) service.AccountInput {
	return service.AccountInput{Domain: req.Domain, Username: req.Username, Password: req.Password}
}

// HandleStore godoc
//
//	@Summary	Store an account
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		vaultsdk.AccountRequest	true	"Account"
//	@Success	200		{object}	vaultsdk.StoreAccountResponse
//	@Failure	406		{object}	vaultsdk.ErrorResponse	"MISSING_INPUT"
//	@Router		/api/accounts/store [post]
func (h *AccountsHandler) HandleStore(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.AccountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, _ := httpx.UserIDFromContext(r.Context())

	a, err := h.AccountService.Create(r.Context(), userID, accountInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.StoreAccountResponse{
		StatusCode: "OK",
		Msg:        "Store account successfully!",
		Account:    toAccount(a),
	})
}

// HandleList godoc
//
//	@Summary	List accounts
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	vaultsdk.Account
//	@Router		/api/accounts [get]
func (h *AccountsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	accounts, err := h.AccountService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccounts(accounts))
}

// HandleGet godoc
//
//	@Summary	Get an account
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		accountId	path		string	true	"Account id"
//	@Success	200			{object}	vaultsdk.Account
//	@Failure	404			{object}	vaultsdk.ErrorResponse	"ACCOUNT_NOT_FOUND"
//	@Router		/api/accounts/{accountId} [get]
func (h *AccountsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	a, err := h.AccountService.Get(r.Context(), userID, r.PathValue("accountId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccount(a))
}

// HandleUpdate godoc
//
//	@Summary	Update an account
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		accountId	path		string					true	"Account id"
//	@Param		request		body		vaultsdk.AccountRequest	true	"New values"
//	@Success	200			{object}	vaultsdk.Account
//	@Failure	404			{object}	vaultsdk.ErrorResponse	"ACCOUNT_NOT_FOUND"
//	@Failure	406			{object}	vaultsdk.ErrorResponse	"MISSING_INPUT"
//	@Router		/api/accounts/update/{accountId} [put]
func (h *AccountsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.AccountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, _ := httpx.UserIDFromContext(r.Context())

	a, err := h.AccountService.Update(r.Context(), userID, r.PathValue("accountId"), accountInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccount(a))
}

// HandleDelete godoc
//
//	@Summary	Soft-delete an account
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Param		accountId	path	string	true	"Account id"
//	@Success	204
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"ACCOUNT_NOT_FOUND"
//	@Router		/api/accounts/delete/{accountId} [delete]
func (h *AccountsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpx.UserIDFromContext(r.Context())

	if err := h.AccountService.SoftDelete(r.Context(), userID, r.PathValue("accountId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRestore godoc
//
//	@Summary	Restore a soft-deleted account
//	@Tags		Accounts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		accountId	path		string	true	"Account id"
//	@Success	200			{object}	vaultsdk.Ack
//	@Failure	403			{object}	vaultsdk.ErrorResponse	"FORBIDDEN"
//	@Failure	404			{object}	vaultsdk.ErrorResponse	"ACCOUNT_NOT_FOUND"
//	@Router		/api/accounts/restore/{accountId} [patch]
func (h *AccountsHandler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	if err := h.AccountService.Restore(r.Context(), r.PathValue("accountId")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteAck(w, "Restore account successfully!")
}
