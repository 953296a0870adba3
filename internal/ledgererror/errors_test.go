package ledgererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{
			name: "with field",
			err: &ValidationError{
				Entity: "income",
				Field:  "amount",
				Reason: "must be positive",
			},
			expected: "invalid income: amount: must be positive",
		},
		{
			name: "without field",
			err: &ValidationError{
				Entity: "transfer",
				Reason: "source and destination accounts must differ",
			},
			expected: "invalid transfer: source and destination accounts must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestReferenceError(t *testing.T) {
	err := &ReferenceError{
		Entity:       "account",
		ID:           "account_1",
		ReferencedBy: "3 expenses",
	}

	assert.Equal(t, "cannot delete account 'account_1': still referenced by 3 expenses", err.Error())
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Entity: "goal", ID: "goal_42"}

	assert.Equal(t, "goal 'goal_42' not found", err.Error())
}

func TestErrorTypeAssertions(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ValidationError", &ValidationError{Entity: "expense", Reason: "missing account"}},
		{"ReferenceError", &ReferenceError{Entity: "category", ID: "cat_1", ReferencedBy: "1 expense"}},
		{"NotFoundError", &NotFoundError{Entity: "account", ID: "account_9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("dispatch rejected: %w", tt.err)

			switch tt.err.(type) {
			case *ValidationError:
				var target *ValidationError
				assert.True(t, errors.As(wrapped, &target))
			case *ReferenceError:
				var target *ReferenceError
				assert.True(t, errors.As(wrapped, &target))
			case *NotFoundError:
				var target *NotFoundError
				assert.True(t, errors.As(wrapped, &target))
			}
		})
	}
}
