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

// InformationStore implements the store.InformationStore interface
// using a PostgreSQL database as the storage backend.
type InformationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewInformationStore creates a new PostgreSQL implementation of the
// InformationStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// the default logger is used.
func NewInformationStore(db store.DBTX, logger *slog.Logger) *InformationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &InformationStore{
		db:     db,
		logger: logger.With(slog.String("component", "information_store")),
	}
}

// Ensure InformationStore implements store.InformationStore interface
var _ store.InformationStore = (*InformationStore)(nil)

// WithTx implements store.InformationStore.WithTx
func (s *InformationStore) WithTx(tx *sql.Tx) store.InformationStore {
	return &InformationStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.InformationStore.Create
// It saves a new information record and assigns its generated ID.
// Returns store.ErrInvalidEntity if the owning user doesn't exist
// (foreign key violation).
func (s *InformationStore) Create(ctx context.Context, info *domain.Information) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := info.Validate(); err != nil {
		log.Warn("information validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_nickname", info.UserNickname))
		return err
	}

	query := `
		INSERT INTO information
			(information, explanation, repeat_date_1, repeat_date_2, repeat_date_3, repeat_date_4, repeat_date_5, user_nickname)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		info.Information,
		info.Explanation,
		info.RepeatDate1,
		info.RepeatDate2,
		info.RepeatDate3,
		info.RepeatDate4,
		info.RepeatDate5,
		info.UserNickname,
	).Scan(&info.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during information creation",
				slog.String("user_nickname", info.UserNickname))
			return fmt.Errorf("%w: user %q not found",
				store.ErrInvalidEntity, info.UserNickname)
		}

		log.Error("failed to create information",
			slog.String("error", err.Error()),
			slog.String("user_nickname", info.UserNickname))
		return MapError(err)
	}

	log.Info("information created successfully",
		slog.Int64("information_id", info.ID),
		slog.String("user_nickname", info.UserNickname))
	return nil
}

// GetForUser implements store.InformationStore.GetForUser
// The lookup is scoped by both owner nickname and id so one user's id can
// never resolve another user's record.
func (s *InformationStore) GetForUser(
	ctx context.Context,
	userNickname string,
	id int64,
) (*domain.Information, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, information, explanation,
		       repeat_date_1, repeat_date_2, repeat_date_3, repeat_date_4, repeat_date_5,
		       user_nickname
		FROM information
		WHERE user_nickname = $1 AND id = $2
	`

	var info domain.Information
	err := s.db.QueryRowContext(ctx, query, userNickname, id).Scan(
		&info.ID,
		&info.Information,
		&info.Explanation,
		&info.RepeatDate1,
		&info.RepeatDate2,
		&info.RepeatDate3,
		&info.RepeatDate4,
		&info.RepeatDate5,
		&info.UserNickname,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("information not found",
				slog.String("user_nickname", userNickname),
				slog.Int64("information_id", id))
			return nil, store.ErrInformationNotFound
		}
		log.Error("failed to get information",
			slog.String("error", err.Error()),
			slog.String("user_nickname", userNickname),
			slog.Int64("information_id", id))
		return nil, MapError(err)
	}

	return &info, nil
}

// ListByUser implements store.InformationStore.ListByUser
// Records come back in insertion order (ascending id); callers wanting
// chronological checkpoint order must sort explicitly.
func (s *InformationStore) ListByUser(
	ctx context.Context,
	userNickname string,
) ([]*domain.Information, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, information, explanation,
		       repeat_date_1, repeat_date_2, repeat_date_3, repeat_date_4, repeat_date_5,
		       user_nickname
		FROM information
		WHERE user_nickname = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, userNickname)
	if err != nil {
		log.Error("failed to query information by user",
			slog.String("error", err.Error()),
			slog.String("user_nickname", userNickname))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []*domain.Information
	for rows.Next() {
		var info domain.Information
		if err := rows.Scan(
			&info.ID,
			&info.Information,
			&info.Explanation,
			&info.RepeatDate1,
			&info.RepeatDate2,
			&info.RepeatDate3,
			&info.RepeatDate4,
			&info.RepeatDate5,
			&info.UserNickname,
		); err != nil {
			log.Error("failed to scan information row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		items = append(items, &info)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if items == nil {
		items = []*domain.Information{}
	}

	return items, nil
}

// DeleteForUser implements store.InformationStore.DeleteForUser
// Returns store.ErrInformationNotFound if no record with that id exists
// under that user, including when the id belongs to someone else.
func (s *InformationStore) DeleteForUser(ctx context.Context, userNickname string, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM information WHERE user_nickname = $1 AND id = $2`

	result, err := s.db.ExecContext(ctx, query, userNickname, id)
	if err != nil {
		log.Error("failed to delete information",
			slog.String("error", err.Error()),
			slog.String("user_nickname", userNickname),
			slog.Int64("information_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "information"); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check rows affected for delete",
				slog.String("error", err.Error()),
				slog.String("user_nickname", userNickname),
				slog.Int64("information_id", id))
			return store.NewStoreError("information", "delete", "could not verify affected rows", err)
		}
		log.Debug("information not found for delete",
			slog.String("user_nickname", userNickname),
			slog.Int64("information_id", id))
		return store.ErrInformationNotFound
	}

	log.Info("information deleted successfully",
		slog.String("user_nickname", userNickname),
		slog.Int64("information_id", id))
	return nil
}

// DeleteAllForUser implements store.InformationStore.DeleteAllForUser
// Zero deleted rows is not an error.
func (s *InformationStore) DeleteAllForUser(ctx context.Context, userNickname string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM information WHERE user_nickname = $1`

	result, err := s.db.ExecContext(ctx, query, userNickname)
	if err != nil {
		log.Error("failed to cascade delete information",
			slog.String("error", err.Error()),
			slog.String("user_nickname", userNickname))
		return 0, MapError(err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Info("information cascade delete completed",
		slog.String("user_nickname", userNickname),
		slog.Int64("deleted", deleted))
	return deleted, nil
}
