package domain

import "time"

type Workspace struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	// AccountIDs is filled by create and update with the ids that were linked.
	AccountIDs []string
}

// WorkspaceView is a workspace as seen by one of its owners or members.
type WorkspaceView struct {
	ID       string
	Name     string
	Owner    UserRef
	Members  []UserRef
	Accounts []Account
}
