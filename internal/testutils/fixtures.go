package testutils

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forgetting-curve/api/internal/domain"
)

// RandomNickname returns a unique nickname that fits the domain length limits.
func RandomNickname(t *testing.T) string {
	t.Helper()
	return "u-" + uuid.New().String()[:16]
}

// MustNewUser builds a valid user with the given nickname, failing the test on
// validation errors.
func MustNewUser(t *testing.T, nickname string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(nickname, "Test", "User", 30, "tester")
	if err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return user
}

// MustNewInformation builds a valid information item owned by the given user,
// failing the test on validation errors.
func MustNewInformation(t *testing.T, userNickname string, createdAt time.Time) *domain.Information {
	t.Helper()
	info, err := domain.NewInformation(userNickname, "test fact", "a fact used in tests", createdAt)
	if err != nil {
		t.Fatalf("creating test information: %v", err)
	}
	return info
}
