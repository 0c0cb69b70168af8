// Package testutils provides in-memory fake stores and fixture helpers for
// tests. The fakes honor the store contracts (sentinel errors, ownership
// scoping, insertion order) without requiring a database.
package testutils

import (
	"context"
	"database/sql"
	"sync"

	"github.com/forgetting-curve/api/internal/domain"
	"github.com/forgetting-curve/api/internal/store"
)

// FakeUserStore is an in-memory implementation of store.UserStore.
type FakeUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
	order []string // nicknames in creation order
}

// NewFakeUserStore creates an empty in-memory user store.
func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{users: make(map[string]*domain.User)}
}

var _ store.UserStore = (*FakeUserStore)(nil)

// WithTx returns the store itself; the fakes have no real transactions.
func (s *FakeUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

func (s *FakeUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Nickname]; exists {
		return store.ErrNicknameExists
	}

	cp := *user
	s.users[user.Nickname] = &cp
	s.order = append(s.order, user.Nickname)
	return nil
}

func (s *FakeUserStore) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[nickname]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	cp := *user
	return &cp, nil
}

func (s *FakeUserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*domain.User, 0, len(s.order))
	for _, nickname := range s.order {
		cp := *s.users[nickname]
		users = append(users, &cp)
	}
	return users, nil
}

func (s *FakeUserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.Nickname]
	if !ok {
		return store.ErrUserNotFound
	}

	existing.Age = user.Age
	existing.Job = user.Job
	return nil
}

func (s *FakeUserStore) Delete(ctx context.Context, nickname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[nickname]; !ok {
		return store.ErrUserNotFound
	}

	delete(s.users, nickname)
	for i, n := range s.order {
		if n == nickname {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// FakeInformationStore is an in-memory implementation of store.InformationStore.
type FakeInformationStore struct {
	mu     sync.Mutex
	items  []*domain.Information // insertion order
	nextID int64
}

// NewFakeInformationStore creates an empty in-memory information store.
func NewFakeInformationStore() *FakeInformationStore {
	return &FakeInformationStore{nextID: 1}
}

var _ store.InformationStore = (*FakeInformationStore)(nil)

// WithTx returns the store itself; the fakes have no real transactions.
func (s *FakeInformationStore) WithTx(tx *sql.Tx) store.InformationStore { return s }

func (s *FakeInformationStore) Create(ctx context.Context, info *domain.Information) error {
	if err := info.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	info.ID = s.nextID
	s.nextID++

	cp := *info
	s.items = append(s.items, &cp)
	return nil
}

func (s *FakeInformationStore) GetForUser(
	ctx context.Context,
	userNickname string,
	id int64,
) (*domain.Information, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.UserNickname == userNickname && item.ID == id {
			cp := *item
			return &cp, nil
		}
	}
	return nil, store.ErrInformationNotFound
}

func (s *FakeInformationStore) ListByUser(
	ctx context.Context,
	userNickname string,
) ([]*domain.Information, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []*domain.Information{}
	for _, item := range s.items {
		if item.UserNickname == userNickname {
			cp := *item
			items = append(items, &cp)
		}
	}
	return items, nil
}

func (s *FakeInformationStore) DeleteForUser(ctx context.Context, userNickname string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.UserNickname == userNickname && item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrInformationNotFound
}

func (s *FakeInformationStore) DeleteAllForUser(ctx context.Context, userNickname string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []*domain.Information
	var deleted int64
	for _, item := range s.items {
		if item.UserNickname == userNickname {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return deleted, nil
}
