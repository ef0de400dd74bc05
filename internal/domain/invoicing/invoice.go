package invoicing

import (
	"time"

	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	// StatusUnpaid is the initial state of every invoice
	StatusUnpaid InvoiceStatus = "unpaid"
	// StatusOverdue is derived: an unpaid invoice whose due date has
	// passed. It is never set directly by callers.
	StatusOverdue InvoiceStatus = "overdue"
	// StatusPaid is set by explicit user action and is reversible
	StatusPaid InvoiceStatus = "paid"
)

// Invoice is the aggregate root of the invoicing context. It exclusively
// owns its line items: replacing the item set is a full replace, and
// deleting the invoice deletes every item with it.
//
// Invariants:
//   - Amount always equals the sum of the owned items' totals.
//   - Number is a tenant-scoped monotonically increasing integer rendered
//     as a string, immutable after creation.
//   - Status transitions follow MarkPaid/MarkUnpaid/ReconcileOverdue.
type Invoice struct {
	shared.TenantEntity
	ClientID uuid.UUID
	Number   string
	Status   InvoiceStatus
	Amount   decimal.Decimal
	Currency string
	DueDate  *time.Time
	Items    []InvoiceItem
}

// NewInvoice creates an invoice with its items computed from inputs.
// The initial status may be unpaid or paid; overdue is always derived.
func NewInvoice(tenantID, clientID uuid.UUID, number, currency string, status InvoiceStatus, dueDate *time.Time, inputs []ItemInput) (*Invoice, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if status == "" {
		status = StatusUnpaid
	}
	if status != StatusUnpaid && status != StatusPaid {
		return nil, shared.ErrInvalidTransition
	}
	if currency == "" {
		currency = "MAD"
	}
	items, total, err := ComputeItems(inputs)
	if err != nil {
		return nil, err
	}
	inv := &Invoice{
		TenantEntity: shared.NewTenantEntity(tenantID),
		ClientID:     clientID,
		Number:       number,
		Status:       status,
		Amount:       total,
		Currency:     currency,
		DueDate:      dueDate,
	}
	inv.attachItems(items)
	return inv, nil
}

// ReplaceItems discards the current item set and installs the computed
// items, recomputing the amount. Stale items never survive a replace.
func (inv *Invoice) ReplaceItems(inputs []ItemInput) error {
	items, total, err := ComputeItems(inputs)
	if err != nil {
		return err
	}
	inv.attachItems(items)
	inv.Amount = total
	inv.UpdatedAt = time.Now()
	return nil
}

func (inv *Invoice) attachItems(items []InvoiceItem) {
	for i := range items {
		items[i].InvoiceID = inv.ID
	}
	inv.Items = items
}

// SetClient repoints the invoice at a different client. Tenant ownership of
// the new client must be validated by the caller before this is applied.
func (inv *Invoice) SetClient(clientID uuid.UUID) {
	inv.ClientID = clientID
	inv.UpdatedAt = time.Now()
}

// SetCurrency changes the invoice currency
func (inv *Invoice) SetCurrency(currency string) error {
	if currency == "" {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency cannot be empty")
	}
	inv.Currency = currency
	inv.UpdatedAt = time.Now()
	return nil
}

// SetDueDate changes or clears the due date
func (inv *Invoice) SetDueDate(dueDate *time.Time) {
	inv.DueDate = dueDate
	inv.UpdatedAt = time.Now()
}

// MarkPaid records payment. Allowed from unpaid or overdue; idempotent.
func (inv *Invoice) MarkPaid() {
	if inv.Status == StatusPaid {
		return
	}
	inv.Status = StatusPaid
	inv.UpdatedAt = time.Now()
}

// MarkUnpaid reverses a payment (e.g. a correction). Overdue history is not
// retained: the next read re-derives overdue from the due date as usual.
func (inv *Invoice) MarkUnpaid() {
	if inv.Status == StatusUnpaid {
		return
	}
	inv.Status = StatusUnpaid
	inv.UpdatedAt = time.Now()
}

// ApplyStatus handles a direct status-update request. Only paid and unpaid
// may be set directly; overdue is derived and is rejected before any write.
func (inv *Invoice) ApplyStatus(status InvoiceStatus) error {
	switch status {
	case StatusPaid:
		inv.MarkPaid()
	case StatusUnpaid:
		inv.MarkUnpaid()
	default:
		return shared.ErrInvalidTransition
	}
	return nil
}

// ReconcileOverdue derives the overdue state from the due date. It is
// evaluated lazily on every read; the transition only fires for an unpaid
// invoice whose due date is strictly before today. Returns true when the
// status changed so the caller can persist the correction immediately.
// Racing reconciliations are harmless: both compute the same new status.
func (inv *Invoice) ReconcileOverdue(today time.Time) bool {
	if inv.Status != StatusUnpaid || inv.DueDate == nil {
		return false
	}
	due := inv.DueDate.Truncate(24 * time.Hour)
	if due.Before(today.Truncate(24 * time.Hour)) {
		inv.Status = StatusOverdue
		inv.UpdatedAt = time.Now()
		return true
	}
	return false
}

// IsPaid returns true if the invoice has been paid
func (inv *Invoice) IsPaid() bool {
	return inv.Status == StatusPaid
}
