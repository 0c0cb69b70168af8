package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/forgetting-curve/api/internal/domain"
	"github.com/forgetting-curve/api/internal/store"
)

// UserCache is the optional read cache for user lookups. Implementations
// must be safe for concurrent use. A nil cache disables caching.
type UserCache interface {
	// GetUser returns the cached user and true on a hit.
	GetUser(ctx context.Context, nickname string) (*domain.User, bool)

	// SetUser stores the user under its nickname.
	SetUser(ctx context.Context, user *domain.User)

	// InvalidateUser drops the cached entry for a nickname.
	InvalidateUser(ctx context.Context, nickname string)
}

// UserService provides user lifecycle operations.
type UserService interface {
	// CreateUser persists a new user.
	// Returns ErrNicknameTaken if the nickname already exists.
	CreateUser(ctx context.Context, nickname, firstName, lastName string, age int, job string) (*domain.User, error)

	// ListUsers returns all users in creation order.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser returns the user with the given nickname.
	// Returns ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, nickname string) (*domain.User, error)

	// UpdateUser mutates the user's age and job, the only updatable fields.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateUser(ctx context.Context, nickname string, age int, job string) (*domain.User, error)

	// DeleteUser removes the user and all their information records in a
	// single transaction (cascade). Returns ErrUserNotFound if the user
	// does not exist.
	DeleteUser(ctx context.Context, nickname string) error
}

// txRunner runs fn inside a database transaction. It is a field so tests
// can substitute a pass-through runner for in-memory stores.
type txRunner func(ctx context.Context, db *sql.DB, fn store.TxFn) error

// userService implements the UserService interface.
type userService struct {
	db     *sql.DB
	users  store.UserStore
	infos  store.InformationStore
	cache  UserCache
	logger *slog.Logger
	runTx  txRunner
}

// NewUserService creates a UserService backed by the given stores.
// cache may be nil to disable read caching.
func NewUserService(
	db *sql.DB,
	users store.UserStore,
	infos store.InformationStore,
	cache UserCache,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}

	return &userService{
		db:     db,
		users:  users,
		infos:  infos,
		cache:  cache,
		logger: logger.With(slog.String("component", "user_service")),
		runTx:  store.RunInTransaction,
	}
}

// CreateUser implements UserService.CreateUser
func (s *userService) CreateUser(
	ctx context.Context,
	nickname, firstName, lastName string,
	age int,
	job string,
) (*domain.User, error) {
	user, err := domain.NewUser(nickname, firstName, lastName, age, job)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.users.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		return nil, newServiceError("create_user", "failed to persist user", err)
	}

	s.logger.Info("user created", slog.String("nickname", user.Nickname))
	return user, nil
}

// ListUsers implements UserService.ListUsers
func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, newServiceError("list_users", "failed to list users", err)
	}
	return users, nil
}

// GetUser implements UserService.GetUser
func (s *userService) GetUser(ctx context.Context, nickname string) (*domain.User, error) {
	if s.cache != nil {
		if user, ok := s.cache.GetUser(ctx, nickname); ok {
			return user, nil
		}
	}

	user, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		return nil, newServiceError("get_user", "failed to get user", err)
	}

	if s.cache != nil {
		s.cache.SetUser(ctx, user)
	}
	return user, nil
}

// UpdateUser implements UserService.UpdateUser
// The read and the write happen in the same transaction so a concurrent
// delete cannot produce a half-applied update.
func (s *userService) UpdateUser(
	ctx context.Context,
	nickname string,
	age int,
	job string,
) (*domain.User, error) {
	var user *domain.User

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.users.WithTx(tx)

		current, err := txUsers.GetByNickname(ctx, nickname)
		if err != nil {
			return err
		}

		if err := current.UpdateProfile(age, job); err != nil {
			return err
		}

		if err := txUsers.Update(ctx, current); err != nil {
			return err
		}

		user = current
		return nil
	})
	if err != nil {
		return nil, newServiceError("update_user", "failed to update user", err)
	}

	if s.cache != nil {
		s.cache.InvalidateUser(ctx, nickname)
	}

	s.logger.Info("user updated", slog.String("nickname", nickname))
	return user, nil
}

// DeleteUser implements UserService.DeleteUser
// The cascade is explicit: all of the user's information records are
// removed in the same transaction as the user row, so no partial cascade
// is ever visible.
func (s *userService) DeleteUser(ctx context.Context, nickname string) error {
	var cascaded int64

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.users.WithTx(tx)
		txInfos := s.infos.WithTx(tx)

		if _, err := txUsers.GetByNickname(ctx, nickname); err != nil {
			return err
		}

		deleted, err := txInfos.DeleteAllForUser(ctx, nickname)
		if err != nil {
			return err
		}
		cascaded = deleted

		return txUsers.Delete(ctx, nickname)
	})
	if err != nil {
		return newServiceError("delete_user", "failed to delete user", err)
	}

	if s.cache != nil {
		s.cache.InvalidateUser(ctx, nickname)
	}

	s.logger.Info("user deleted",
		slog.String("nickname", nickname),
		slog.Int64("cascaded_information", cascaded))
	return nil
}
