package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := NewDomainError("DATA_CORRUPTION", `Stored invoice number "INV-2024" is not an integer`)

	assert.ErrorIs(t, err, ErrDataCorruption)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDomainError_IsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating invoice: %w", ErrConcurrencyConflict)

	assert.ErrorIs(t, wrapped, ErrConcurrencyConflict)

	var domainErr *DomainError
	assert.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, "CONCURRENCY_CONFLICT", domainErr.Code)
}

func TestDomainError_IsIgnoresForeignErrors(t *testing.T) {
	assert.NotErrorIs(t, ErrNotFound, errors.New("Resource not found"))
}
