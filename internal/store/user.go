package store

import (
	"context"
	"database/sql"

	"github.com/forgetting-curve/api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation internally.
	// Returns ErrNicknameExists if the nickname is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByNickname retrieves a user by their unique nickname.
	// Returns ErrUserNotFound if the user does not exist.
	GetByNickname(ctx context.Context, nickname string) (*domain.User, error)

	// List retrieves all users in creation order.
	// Returns an empty slice if no users exist.
	List(ctx context.Context) ([]*domain.User, error)

	// Update persists changes to an existing user's mutable fields (age, job).
	// The nickname identifies the row and is never rewritten.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns validation errors from the domain User if data is invalid.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their nickname.
	// It does not touch the user's information records; the caller is
	// responsible for cascading the delete within the same transaction.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, nickname string) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
