package http

import (
	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/service"
	"github.com/aussiebroadwan/vaultshare/pkg/vaultsdk"
)

func toCurrentUser(u domain.PublicUser) vaultsdk.CurrentUser {
	return vaultsdk.CurrentUser{ID: u.ID, Name: u.Name, Role: u.Role.String(), Email: u.Email}
}

func toAccount(a domain.Account) vaultsdk.Account {
	return vaultsdk.Account{
		ID:        a.ID,
		UserID:    a.UserID,
		Domain:    a.Domain,
		Username:  a.Username,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		DeletedAt: a.DeletedAt,
	}
}

func toAccounts(in []domain.Account) []vaultsdk.Account {
	out := make([]vaultsdk.Account, 0, len(in))
	for _, a := range in {
		out = append(out, toAccount(a))
	}
	return out
}

func toWorkspace(ws domain.Workspace) vaultsdk.Workspace {
	ids := ws.AccountIDs
	if ids == nil {
		ids = []string{}
	}
	return vaultsdk.Workspace{
		ID:        ws.ID,
		Name:      ws.Name,
		UserID:    ws.OwnerID,
		Accounts:  ids,
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}
}

func toUserRefs(in []domain.UserRef) []vaultsdk.UserRef {
	out := make([]vaultsdk.UserRef, 0, len(in))
	for _, u := range in {
		out = append(out, vaultsdk.UserRef{ID: u.ID, Name: u.Name})
	}
	return out
}

func toWorkspaceViews(in []domain.WorkspaceView) []vaultsdk.WorkspaceView {
	out := make([]vaultsdk.WorkspaceView, 0, len(in))
	for _, v := range in {
		accounts := make([]vaultsdk.WorkspaceAccount, 0, len(v.Accounts))
		for _, a := range v.Accounts {
			accounts = append(accounts, vaultsdk.WorkspaceAccount{
				ID: a.ID, Domain: a.Domain, Username: a.Username, Password: a.Password,
			})
		}
		out = append(out, vaultsdk.WorkspaceView{
			ID:       v.ID,
			Name:     v.Name,
			Owner:    vaultsdk.UserRef{ID: v.Owner.ID, Name: v.Owner.Name},
			Members:  toUserRefs(v.Members),
			Accounts: accounts,
		})
	}
	return out
}

func toInvitations(in []domain.Invitation) []vaultsdk.Invitation {
	out := make([]vaultsdk.Invitation, 0, len(in))
	for _, inv := range in {
		out = append(out, vaultsdk.Invitation{
			ID:          inv.ID,
			OwnerID:     inv.OwnerID,
			WorkspaceID: inv.WorkspaceID,
			Email:       inv.Email,
			Status:      string(inv.Status),
			CreatedAt:   inv.CreatedAt,
		})
	}
	return out
}

func toUsersPage(p service.UserPage) vaultsdk.UsersPage {
	users := make([]vaultsdk.UserSummary, 0, len(p.Users))
	for _, u := range p.Users {
		users = append(users, vaultsdk.UserSummary{
			ID:              u.ID,
			Name:            u.Name,
			Email:           u.Email,
			IsAuthenticated: u.IsAuthenticated,
			AccountsCount:   u.AccountsCount,
		})
	}
	return vaultsdk.UsersPage{
		ListUsers:   users,
		TotalItems:  p.TotalItems,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
	}
}

func toRegistrationStats(s service.RegistrationStats) vaultsdk.RegistrationStats {
	years := s.Years
	if years == nil {
		years = []int{}
	}
	data := make([]vaultsdk.MonthlyCount, 0, len(s.Data))
	for _, m := range s.Data {
		data = append(data, vaultsdk.MonthlyCount{Month: m.Month, Year: m.Year, Value: m.Value})
	}
	return vaultsdk.RegistrationStats{Years: years, Data: data}
}

func toDomainCounts(in []service.DomainBucket) []vaultsdk.DomainCount {
	out := make([]vaultsdk.DomainCount, 0, len(in))
	for _, b := range in {
		out = append(out, vaultsdk.DomainCount{Domain: b.Domain, Value: b.Value})
	}
	return out
}
