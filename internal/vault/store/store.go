package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement it and expose one sub-repository per table group.
type Store interface {
	Users() Users
	Accounts() Accounts
	Workspaces() Workspaces
	Invitations() Invitations

	ApplyMigrations(ctx context.Context) error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts u. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// MarkAuthenticated sets is_authenticated. Confirming twice is harmless.
	MarkAuthenticated(ctx context.Context, id string, at time.Time) error

	UpdatePasswordHash(ctx context.Context, id, hash string, at time.Time) error

	// ListUserSummaries pages through users of one role, newest first, with
	// their live account counts.
	ListUserSummaries(ctx context.Context, role domain.Role, limit, offset int) ([]domain.UserSummary, error)

	CountUsersByRole(ctx context.Context, role domain.Role) (int, error)

	// ListRegistrationTimes returns created_at of every user whose role is
	// not excluded.
	ListRegistrationTimes(ctx context.Context, exclude domain.Role) ([]time.Time, error)
}

type Accounts interface {
	CreateAccount(ctx context.Context, a domain.Account) error

	// ListAccountsByOwner returns live accounts, newest first.
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)

	GetAccountByOwner(ctx context.Context, ownerID, id string) (domain.Account, error)

	// UpdateAccount rewrites domain, username and password of a live account
	// owned by a.UserID.
	UpdateAccount(ctx context.Context, a domain.Account) error

	SoftDeleteAccount(ctx context.Context, ownerID, id string, at time.Time) error

	// RestoreAccount clears deleted_at regardless of owner.
	RestoreAccount(ctx context.Context, id string, at time.Time) error

	// FilterOwnedAccountIDs keeps the ids that name live accounts of ownerID,
	// preserving input order and dropping duplicates.
	FilterOwnedAccountIDs(ctx context.Context, ownerID string, ids []string) ([]string, error)

	CountAccountsByDomain(ctx context.Context) ([]domain.DomainCount, error)
}

type Workspaces interface {
	CreateWorkspace(ctx context.Context, w domain.Workspace) error

	// GetWorkspaceByOwner returns a live workspace owned by ownerID.
	GetWorkspaceByOwner(ctx context.Context, ownerID, id string) (domain.Workspace, error)

	// GetWorkspaceByID returns a workspace whether or not it is deleted.
	GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error)

	RenameWorkspace(ctx context.Context, id, name string, at time.Time) error

	// ReplaceWorkspaceAccounts makes accountIDs the exact account set.
	ReplaceWorkspaceAccounts(ctx context.Context, id string, accountIDs []string) error

	SoftDeleteWorkspace(ctx context.Context, ownerID, id string, at time.Time) error
	RestoreWorkspace(ctx context.Context, id string, at time.Time) error

	// AddWorkspaceMember inserts the membership if it does not already exist.
	AddWorkspaceMember(ctx context.Context, workspaceID, userID string) error

	ListWorkspaceMembers(ctx context.Context, workspaceID string) ([]domain.UserRef, error)

	// ListWorkspacesForUser returns live workspaces the user owns or belongs
	// to, with owner, members and live accounts attached.
	ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.WorkspaceView, error)
}

type Invitations interface {
	CreateInvitation(ctx context.Context, inv domain.Invitation) error
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string, at time.Time) error
	ListInvitationsByWorkspace(ctx context.Context, workspaceID string) ([]domain.Invitation, error)
}
