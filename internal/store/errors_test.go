package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "generic not found",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "user not found",
			err:      ErrUserNotFound,
			expected: true,
		},
		{
			name:     "information not found",
			err:      ErrInformationNotFound,
			expected: true,
		},
		{
			name:     "wrapped user not found",
			err:      fmt.Errorf("lookup failed: %w", ErrUserNotFound),
			expected: true,
		},
		{
			name:     "store error wrapping not found",
			err:      NewStoreError("user", "get", "lookup failed", ErrUserNotFound),
			expected: true,
		},
		{
			name:     "duplicate error",
			err:      ErrNicknameExists,
			expected: false,
		},
		{
			name:     "unrelated error",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFoundError(tc.err); got != tc.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "generic duplicate",
			err:      ErrDuplicate,
			expected: true,
		},
		{
			name:     "nickname exists",
			err:      ErrNicknameExists,
			expected: true,
		},
		{
			name:     "wrapped nickname exists",
			err:      fmt.Errorf("create failed: %w", ErrNicknameExists),
			expected: true,
		},
		{
			name:     "not found error",
			err:      ErrUserNotFound,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDuplicateError(tc.err); got != tc.expected {
				t.Errorf("IsDuplicateError(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	base := errors.New("connection reset")

	t.Run("formats with wrapped error", func(t *testing.T) {
		err := NewStoreError("user", "create", "insert failed", base)
		want := "create operation on user failed: insert failed: connection reset"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("formats without wrapped error", func(t *testing.T) {
		err := NewStoreError("information", "delete", "no rows", nil)
		want := "delete operation on information failed: no rows"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("unwraps to the original error", func(t *testing.T) {
		err := NewStoreError("user", "create", "insert failed", base)
		if !errors.Is(err, base) {
			t.Error("expected errors.Is to find the wrapped error")
		}
	})
}
