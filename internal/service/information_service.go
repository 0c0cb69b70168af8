package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/forgetting-curve/api/internal/domain"
	"github.com/forgetting-curve/api/internal/store"
)

// InformationService provides information lifecycle operations.
// Every operation checks that the owning user exists inside the same
// transaction that touches the information records.
type InformationService interface {
	// CreateInformation persists a new information record for the user,
	// deriving the five review checkpoints from the current time.
	// Returns ErrUserNotFound if the user does not exist.
	CreateInformation(ctx context.Context, userNickname, information, explanation string) (*domain.Information, error)

	// ListInformation returns all of the user's information records in
	// insertion order. Returns ErrUserNotFound if the user does not exist;
	// a user with no records yields an empty slice, never an error.
	ListInformation(ctx context.Context, userNickname string) ([]*domain.Information, error)

	// DeleteInformation removes one information record scoped by owner and
	// id. Returns ErrUserNotFound if the user does not exist and
	// ErrInformationNotFound if the record does not exist under that user
	// (including when the id belongs to a different user).
	DeleteInformation(ctx context.Context, userNickname string, id int64) error
}

// informationService implements the InformationService interface.
type informationService struct {
	db     *sql.DB
	users  store.UserStore
	infos  store.InformationStore
	logger *slog.Logger
	now    func() time.Time
	runTx  txRunner
}

// NewInformationService creates an InformationService backed by the given stores.
func NewInformationService(
	db *sql.DB,
	users store.UserStore,
	infos store.InformationStore,
	logger *slog.Logger,
) InformationService {
	if logger == nil {
		logger = slog.Default()
	}

	return &informationService{
		db:     db,
		users:  users,
		infos:  infos,
		logger: logger.With(slog.String("component", "information_service")),
		now:    time.Now,
		runTx:  store.RunInTransaction,
	}
}

// CreateInformation implements InformationService.CreateInformation
func (s *informationService) CreateInformation(
	ctx context.Context,
	userNickname, information, explanation string,
) (*domain.Information, error) {
	var info *domain.Information

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.users.WithTx(tx).GetByNickname(ctx, userNickname); err != nil {
			return err
		}

		created, err := domain.NewInformation(userNickname, information, explanation, s.now().UTC())
		if err != nil {
			return err
		}

		if err := s.infos.WithTx(tx).Create(ctx, created); err != nil {
			return err
		}

		info = created
		return nil
	})
	if err != nil {
		return nil, newServiceError("create_information", "failed to create information", err)
	}

	s.logger.Info("information created",
		slog.Int64("information_id", info.ID),
		slog.String("user_nickname", userNickname))
	return info, nil
}

// ListInformation implements InformationService.ListInformation
// The existence check and the listing share one transaction, so a deleted
// user can never appear as "present with an empty list".
func (s *informationService) ListInformation(
	ctx context.Context,
	userNickname string,
) ([]*domain.Information, error) {
	var items []*domain.Information

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.users.WithTx(tx).GetByNickname(ctx, userNickname); err != nil {
			return err
		}

		listed, err := s.infos.WithTx(tx).ListByUser(ctx, userNickname)
		if err != nil {
			return err
		}

		items = listed
		return nil
	})
	if err != nil {
		return nil, newServiceError("list_information", "failed to list information", err)
	}

	return items, nil
}

// DeleteInformation implements InformationService.DeleteInformation
func (s *informationService) DeleteInformation(ctx context.Context, userNickname string, id int64) error {
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.users.WithTx(tx).GetByNickname(ctx, userNickname); err != nil {
			return err
		}

		return s.infos.WithTx(tx).DeleteForUser(ctx, userNickname, id)
	})
	if err != nil {
		return newServiceError("delete_information", "failed to delete information", err)
	}

	s.logger.Info("information deleted",
		slog.String("user_nickname", userNickname),
		slog.Int64("information_id", id))
	return nil
}
