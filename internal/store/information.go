package store

import (
	"context"
	"database/sql"

	"github.com/forgetting-curve/api/internal/domain"
)

// InformationStore defines the interface for information data persistence.
//
// Every lookup and delete is scoped by the owning user's nickname as well
// as the record id; an id alone can never reach another user's records.
type InformationStore interface {
	// Create saves a new information record to the store and assigns its ID.
	// It handles domain validation internally.
	// Returns ErrInvalidEntity if the owning user does not exist (foreign key violation).
	Create(ctx context.Context, info *domain.Information) error

	// GetForUser retrieves an information record by owner nickname and id.
	// Returns ErrInformationNotFound if no such record exists under that user,
	// including when the id exists but belongs to a different user.
	GetForUser(ctx context.Context, userNickname string, id int64) (*domain.Information, error)

	// ListByUser retrieves all information records owned by the given user,
	// in insertion order. Returns an empty slice if the user owns none.
	// The existence of the user itself is not checked here.
	ListByUser(ctx context.Context, userNickname string) ([]*domain.Information, error)

	// DeleteForUser removes a single information record scoped by owner
	// nickname and id. Returns ErrInformationNotFound if no such record
	// exists under that user.
	DeleteForUser(ctx context.Context, userNickname string, id int64) error

	// DeleteAllForUser removes every information record owned by the given
	// user and returns the number of records removed. Deleting zero records
	// is not an error; it is the normal case for a user with no information.
	DeleteAllForUser(ctx context.Context, userNickname string) (int64, error)

	// WithTx returns a new InformationStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) InformationStore
}
