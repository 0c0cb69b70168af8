package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgetting-curve/api/internal/domain"
	"github.com/forgetting-curve/api/internal/store"
)

func newMockUserStore(t *testing.T) (*UserStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserStore(db, logger), mock
}

func mustUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("alice", "Alice", "Smith", 30, "engineer")
	require.NoError(t, err)
	return user
}

func TestUserStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectExec("INSERT INTO users").
			WithArgs("alice", "Alice", "Smith", 30, "engineer").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Create(ctx, mustUser(t)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to nickname exists", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(pgError(uniqueViolationCode))

		err := s.Create(ctx, mustUser(t))
		assert.ErrorIs(t, err, store.ErrNicknameExists)
	})

	t.Run("invalid user never reaches the database", func(t *testing.T) {
		s, _ := newMockUserStore(t)

		err := s.Create(ctx, &domain.User{Nickname: "alice"})
		assert.Error(t, err)
	})
}

func TestUserStoreGetByNickname(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		rows := sqlmock.NewRows([]string{"nickname", "first_name", "last_name", "age", "job"}).
			AddRow("alice", "Alice", "Smith", 30, "engineer")
		mock.ExpectQuery("SELECT nickname, first_name, last_name, age, job").
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := s.GetByNickname(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Nickname)
		assert.Equal(t, 30, user.Age)
	})

	t.Run("no rows maps to user not found", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectQuery("SELECT nickname, first_name, last_name, age, job").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"nickname", "first_name", "last_name", "age", "job"}))

		_, err := s.GetByNickname(ctx, "ghost")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserStoreList(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves creation order", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		rows := sqlmock.NewRows([]string{"nickname", "first_name", "last_name", "age", "job"}).
			AddRow("alice", "Alice", "Smith", 30, "engineer").
			AddRow("bob", "Bob", "Jones", 25, "teacher")
		mock.ExpectQuery("ORDER BY created_at, nickname").WillReturnRows(rows)

		users, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Nickname)
		assert.Equal(t, "bob", users[1].Nickname)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectQuery("ORDER BY created_at, nickname").
			WillReturnRows(sqlmock.NewRows([]string{"nickname", "first_name", "last_name", "age", "job"}))

		users, err := s.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}

func TestUserStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectExec("UPDATE users").
			WithArgs(30, "engineer", "alice").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Update(ctx, mustUser(t)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to user not found", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Update(ctx, mustUser(t))
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("rows affected failure is not a not-found", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected unsupported")))

		err := s.Update(ctx, mustUser(t))
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrNotFound)

		var storeErr *store.StoreError
		assert.ErrorAs(t, err, &storeErr)
	})
}

func TestUserStoreDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectExec("DELETE FROM users").
			WithArgs("alice").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Delete(ctx, "alice"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to user not found", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectExec("DELETE FROM users").
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Delete(ctx, "ghost")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("rows affected failure is not a not-found", func(t *testing.T) {
		s, mock := newMockUserStore(t)
		mock.ExpectExec("DELETE FROM users").
			WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected unsupported")))

		err := s.Delete(ctx, "alice")
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})
}
