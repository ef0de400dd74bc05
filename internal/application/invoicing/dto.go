package invoicing

import (
	"time"

	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=200"`
	Phone    string `json:"phone" binding:"max=50"`
	ICE      string `json:"ice" binding:"max=50"`
	IFNumber string `json:"if_number" binding:"max=50"`
}

// UpdateClientRequest represents a partial client update
type UpdateClientRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	ICE      *string `json:"ice" binding:"omitempty,max=50"`
	IFNumber *string `json:"if_number" binding:"omitempty,max=50"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	ICE       string    `json:"ice"`
	IFNumber  string    `json:"if_number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain client to its response representation
func ToClientResponse(c *invoicing.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		ICE:       c.ICE,
		IFNumber:  c.IFNumber,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// ItemRequest is the caller-facing shape of one line item. Totals are always
// computed server-side; a submitted total would be ignored.
type ItemRequest struct {
	Description string          `json:"description" binding:"required,notblank,max=500"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest represents a request to create a new invoice. The
// invoice number is always assigned by the server.
type CreateInvoiceRequest struct {
	ClientID uuid.UUID     `json:"client_id" binding:"required"`
	Currency string        `json:"currency" binding:"omitempty,max=10"`
	Status   string        `json:"status"`
	DueDate  *time.Time    `json:"due_date"`
	Items    []ItemRequest `json:"items" binding:"dive"`
}

// UpdateInvoiceRequest represents a partial invoice update. Number and
// creation date are deliberately absent: they are immutable. A nil Items
// leaves the item set untouched; an empty slice clears it.
type UpdateInvoiceRequest struct {
	ClientID *uuid.UUID     `json:"client_id"`
	Currency *string        `json:"currency" binding:"omitempty,max=10"`
	Status   *string        `json:"status"`
	DueDate  *time.Time     `json:"due_date"`
	Items    *[]ItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateStatusRequest represents a direct status update
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListInvoicesQuery carries list filter options
type ListInvoicesQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ItemResponse represents one line item in API responses
type ItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"number"`
	ClientID  uuid.UUID       `json:"client_id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	DueDate   *time.Time      `json:"due_date"`
	Items     []ItemResponse  `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToInvoiceResponse converts a domain invoice to its response representation
func ToInvoiceResponse(inv *invoicing.Invoice) *InvoiceResponse {
	items := make([]ItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}
	return &InvoiceResponse{
		ID:        inv.ID,
		Number:    inv.Number,
		ClientID:  inv.ClientID,
		Status:    string(inv.Status),
		Amount:    inv.Amount,
		Currency:  inv.Currency,
		DueDate:   inv.DueDate,
		Items:     items,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

// =============================================================================
// Dashboard DTOs
// =============================================================================

// DashboardSummaryResponse aggregates invoice counts and paid revenue
type DashboardSummaryResponse struct {
	TotalInvoices int             `json:"total_invoices"`
	Paid          int             `json:"paid"`
	Unpaid        int             `json:"unpaid"`
	Overdue       int             `json:"overdue"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

func toItemInputs(items []ItemRequest) []invoicing.ItemInput {
	inputs := make([]invoicing.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = invoicing.ItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return inputs
}
