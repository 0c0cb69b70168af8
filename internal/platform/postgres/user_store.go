// Package postgres contains PostgreSQL implementations of the store interfaces.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgetting-curve/api/internal/domain"
	"github.com/forgetting-curve/api/internal/platform/logger"
	"github.com/forgetting-curve/api/internal/store"
)

// UserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and
// managed by the caller. If logger is nil, the default logger is used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// It saves a new user to the database, handling domain validation.
// Returns store.ErrNicknameExists if the nickname is already taken.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("nickname", user.Nickname))
		return err
	}

	query := `
		INSERT INTO users (nickname, first_name, last_name, age, job)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.Nickname,
		user.FirstName,
		user.LastName,
		user.Age,
		user.Job,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate nickname during user creation",
				slog.String("nickname", user.Nickname))
			return fmt.Errorf("%w: %v", store.ErrNicknameExists, err)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("nickname", user.Nickname))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.String("nickname", user.Nickname))
	return nil
}

// GetByNickname implements store.UserStore.GetByNickname
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT nickname, first_name, last_name, age, job
		FROM users
		WHERE nickname = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, nickname).Scan(
		&user.Nickname,
		&user.FirstName,
		&user.LastName,
		&user.Age,
		&user.Job,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("nickname", nickname))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by nickname",
			slog.String("error", err.Error()),
			slog.String("nickname", nickname))
		return nil, MapError(err)
	}

	return &user, nil
}

// List implements store.UserStore.List
// It retrieves all users in creation order.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT nickname, first_name, last_name, age, job
		FROM users
		ORDER BY created_at, nickname
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.Nickname,
			&user.FirstName,
			&user.LastName,
			&user.Age,
			&user.Job,
		); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if users == nil {
		users = []*domain.User{}
	}

	return users, nil
}

// Update implements store.UserStore.Update
// Only the mutable fields (age, job) are written; the nickname is the key.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("nickname", user.Nickname))
		return err
	}

	query := `
		UPDATE users
		SET age = $1, job = $2
		WHERE nickname = $3
	`

	result, err := s.db.ExecContext(ctx, query, user.Age, user.Job, user.Nickname)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("nickname", user.Nickname))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check rows affected for update",
				slog.String("error", err.Error()),
				slog.String("nickname", user.Nickname))
			return store.NewStoreError("user", "update", "could not verify affected rows", err)
		}
		log.Debug("user not found for update", slog.String("nickname", user.Nickname))
		return store.ErrUserNotFound
	}

	log.Info("user updated successfully", slog.String("nickname", user.Nickname))
	return nil
}

// Delete implements store.UserStore.Delete
// Returns store.ErrUserNotFound if the user does not exist.
// Cascading of the user's information records is the service's job and must
// happen before this call inside the same transaction.
func (s *UserStore) Delete(ctx context.Context, nickname string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users WHERE nickname = $1`

	result, err := s.db.ExecContext(ctx, query, nickname)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("nickname", nickname))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check rows affected for delete",
				slog.String("error", err.Error()),
				slog.String("nickname", nickname))
			return store.NewStoreError("user", "delete", "could not verify affected rows", err)
		}
		log.Debug("user not found for delete", slog.String("nickname", nickname))
		return store.ErrUserNotFound
	}

	log.Info("user deleted successfully", slog.String("nickname", nickname))
	return nil
}
