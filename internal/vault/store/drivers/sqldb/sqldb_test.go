package sqldb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/vaultshare/internal/vault/domain"
	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
)

var errDuplicate = errors.New("duplicate key")

var testDialect = Dialect{
	Name:        "test",
	Placeholder: Dollar,
	IsUniqueViolation: func(err error) bool {
		return errors.Is(err, errDuplicate)
	},
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return New(db, testDialect, nil), mock
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no params", "SELECT 1", "SELECT 1"},
		{"sequential", "WHERE a = ? AND b = ?", "WHERE a = $1 AND b = $2"},
		{"quoted literal", "WHERE a = '?' AND b = ?", "WHERE a = '?' AND b = $1"},
		{"in list", "IN (?, ?, ?)", "IN ($1, $2, $3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, testDialect.Rebind(tt.in))
		})
	}

	require.Equal(t, "a = ?", Dialect{Placeholder: Question}.Rebind("a = ?"))
}

func TestPlaceholders(t *testing.T) {
	require.Equal(t, "", placeholders(0))
	require.Equal(t, "?", placeholders(1))
	require.Equal(t, "?, ?, ?", placeholders(3))
}

func TestGetUserByID_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Users().GetUserByID(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetUserByEmail(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ann@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "is_authenticated", "role", "created_at", "updated_at",
		}).AddRow("u1", "Ann", "ann@example.com", "hash", true, "User", now, now))

	u, err := s.Users().GetUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.True(t, u.IsAuthenticated)
	require.Equal(t, domain.RoleUser, u.Role)
	require.Equal(t, now, u.CreatedAt)
}

func TestCreateUser_Duplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errDuplicate)

	err := s.Users().CreateUser(context.Background(), domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestSoftDeleteAccount_NoRows(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "a1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Accounts().SoftDeleteAccount(context.Background(), "u1", "a1", time.Now())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFilterOwnedAccountIDs(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("id IN ($2, $3, $4)")).
		WithArgs("owner", "a3", "a1", "a2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a1").AddRow("a3"))

	got, err := s.Accounts().FilterOwnedAccountIDs(context.Background(), "owner", []string{"a3", "a1", "a3", "a2"})
	require.NoError(t, err)
	require.Equal(t, []string{"a3", "a1"}, got)
}

func TestFilterOwnedAccountIDs_Empty(t *testing.T) {
	s, _ := newMockStore(t)

	got, err := s.Accounts().FilterOwnedAccountIDs(context.Background(), "owner", nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestListWorkspacesForUser_NoneSkipsDetailQueries(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM workspaces w")).
		WithArgs("u1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "owner_name"}))

	views, err := s.Workspaces().ListWorkspacesForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestListWorkspacesForUser_Assembles(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM workspaces w")).
		WithArgs("u2", "u2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id", "owner_name"}).
			AddRow("w1", "Team", "u1", "Ann"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM workspace_users wu")).
		WithArgs("w1").
		WillReturnRows(sqlmock.NewRows([]string{"workspace_id", "id", "name"}).
			AddRow("w1", "u2", "Bob"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM workspace_accounts wa")).
		WithArgs("w1").
		WillReturnRows(sqlmock.NewRows([]string{
			"workspace_id", "id", "user_id", "domain", "username", "password", "created_at", "updated_at", "deleted_at",
		}).AddRow("w1", "a1", "u1", "gmail.com", "ann", "sealed", now, now, nil))

	views, err := s.Workspaces().ListWorkspacesForUser(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, domain.UserRef{ID: "u1", Name: "Ann"}, views[0].Owner)
	require.Equal(t, []domain.UserRef{{ID: "u2", Name: "Bob"}}, views[0].Members)
	require.Len(t, views[0].Accounts, 1)
	require.Equal(t, "sealed", views[0].Accounts[0].Password)
	require.Nil(t, views[0].Accounts[0].DeletedAt)
}

func TestWithTx(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO workspace_users")).
			WithArgs("w1", "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := s.WithTx(context.Background(), func(tx store.Tx) error {
			return tx.Workspaces().AddWorkspaceMember(context.Background(), "w1", "u1")
		})
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		s, mock := newMockStore(t)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := s.WithTx(context.Background(), func(store.Tx) error { return boom })
		require.ErrorIs(t, err, boom)
	})

	t.Run("nested tx refused", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := s.WithTx(context.Background(), func(tx store.Tx) error {
			_, err := tx.Tx(context.Background())
			return err
		})
		require.Error(t, err)
	})
}
