package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestUserError(t *testing.T) {
	t.Run("message with wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: disk full", ErrStorage)
		err := NewUserError("failed to open ledger database", wrapped)

		want := "failed to open ledger database: " + wrapped.Error()
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}

		// Sentinels stay reachable through the user-facing wrapper.
		if !errors.Is(err, ErrStorage) {
			t.Error("expected errors.Is to find ErrStorage through UserError")
		}

		var userErr *UserError
		if !errors.As(err, &userErr) {
			t.Fatal("expected errors.As to find *UserError")
		}
		if userErr.UserMessage != "failed to open ledger database" {
			t.Errorf("UserMessage = %q", userErr.UserMessage)
		}
	})

	t.Run("message only", func(t *testing.T) {
		err := NewUserError("nothing to report", nil)
		if err.Error() != "nothing to report" {
			t.Errorf("Error() = %q, want %q", err.Error(), "nothing to report")
		}
		if errors.Unwrap(err) != nil {
			t.Error("expected nil Unwrap for message-only error")
		}
	})
}
