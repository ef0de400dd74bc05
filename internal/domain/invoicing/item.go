package invoicing

import (
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItem is one billable row on an invoice. The item total is stored
// denormalized for audit and display but is always recomputed from quantity
// and unit price; a caller-supplied total is never trusted.
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// ItemInput is the caller-facing shape of a line item before computation
type ItemInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// ComputeItems turns raw item inputs into invoice items with computed
// totals, and returns the grand total. Item order is preserved for display.
// Totals are rounded half away from zero to 2 decimals (currency precision).
// An empty input yields an empty item set and a zero grand total.
func ComputeItems(inputs []ItemInput) ([]InvoiceItem, decimal.Decimal, error) {
	items := make([]InvoiceItem, 0, len(inputs))
	grandTotal := decimal.Zero
	for _, in := range inputs {
		if in.Description == "" {
			return nil, decimal.Zero, shared.NewDomainError("INVALID_ITEM", "Item description cannot be empty")
		}
		if !in.Quantity.IsPositive() {
			return nil, decimal.Zero, shared.NewDomainError("INVALID_ITEM", "Item quantity must be positive")
		}
		if in.UnitPrice.IsNegative() {
			return nil, decimal.Zero, shared.NewDomainError("INVALID_ITEM", "Item unit price cannot be negative")
		}
		total := in.Quantity.Mul(in.UnitPrice).Round(2)
		items = append(items, InvoiceItem{
			BaseEntity:  shared.NewBaseEntity(),
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Total:       total,
		})
		grandTotal = grandTotal.Add(total)
	}
	return items, grandTotal, nil
}
