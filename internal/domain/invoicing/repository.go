package invoicing

import (
	"context"

	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientRepository persists clients, always scoped to a tenant
type ClientRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Client, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Client, error)
	Save(ctx context.Context, client *Client) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

// MonthlyRevenue is one month's paid-invoice revenue
type MonthlyRevenue struct {
	Month   int
	Revenue decimal.Decimal
}

// InvoiceRepository persists invoices and their items, always scoped to a
// tenant. Create and ReplaceItems must be transactional: a failure mid-way
// leaves no partial invoice and no half-replaced item set.
type InvoiceRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Invoice, error)
	// FindNumbersForTenant returns every invoice number stored for the
	// tenant, for next-number computation.
	FindNumbersForTenant(ctx context.Context, tenantID uuid.UUID) ([]string, error)
	// Create persists the invoice and its items atomically. Returns
	// shared.ErrConcurrencyConflict when the (tenant, number) uniqueness
	// constraint is violated by a concurrent creation.
	Create(ctx context.Context, invoice *Invoice) error
	// Save updates the invoice row without touching items
	Save(ctx context.Context, invoice *Invoice) error
	// SaveWithItems updates the invoice and replaces its full item set in
	// one transaction (delete-all-then-insert-all).
	SaveWithItems(ctx context.Context, invoice *Invoice) error
	// DeleteForTenant removes the invoice and cascades to its items
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForClient(ctx context.Context, tenantID, clientID uuid.UUID) (int64, error)
	// MonthlyRevenueForTenant sums paid-invoice amounts per month of the
	// given year.
	MonthlyRevenueForTenant(ctx context.Context, tenantID uuid.UUID, year int) ([]MonthlyRevenue, error)
}
