package models

import (
	"time"

	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientModel is the persistence model for invoicing.Client
type ClientModel struct {
	TenantModel
	Name     string `gorm:"size:200;not null"`
	Phone    string `gorm:"size:50"`
	ICE      string `gorm:"size:50"`
	IFNumber string `gorm:"size:50"`
}

// TableName returns the table name for ClientModel
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts ClientModel to domain Client
func (m *ClientModel) ToDomain() *invoicing.Client {
	return &invoicing.Client{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Phone:        m.Phone,
		ICE:          m.ICE,
		IFNumber:     m.IFNumber,
	}
}

// FromDomain populates ClientModel from domain Client
func (m *ClientModel) FromDomain(c *invoicing.Client) {
	m.FromDomainTenantEntity(c.TenantEntity)
	m.Name = c.Name
	m.Phone = c.Phone
	m.ICE = c.ICE
	m.IFNumber = c.IFNumber
}

// InvoiceModel is the persistence model for invoicing.Invoice.
// The (tenant_id, number) unique index backs concurrent-creation detection:
// two transactions that computed the same next number cannot both commit.
type InvoiceModel struct {
	BaseModel
	TenantID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_tenant_number"`
	Number   string             `gorm:"size:20;not null;uniqueIndex:idx_invoices_tenant_number"`
	ClientID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status   string             `gorm:"size:20;not null;index"`
	Amount   decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	Currency string             `gorm:"size:10;not null"`
	DueDate  *time.Time         `gorm:"index"`
	Items    []InvoiceItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for InvoiceModel
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts InvoiceModel to domain Invoice
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	items := make([]invoicing.InvoiceItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = *item.ToDomain()
	}
	return &invoicing.Invoice{
		TenantEntity: shared.TenantEntity{
			BaseEntity: m.BaseModel.ToDomain(),
			TenantID:   m.TenantID,
		},
		ClientID: m.ClientID,
		Number:   m.Number,
		Status:   invoicing.InvoiceStatus(m.Status),
		Amount:   m.Amount,
		Currency: m.Currency,
		DueDate:  m.DueDate,
		Items:    items,
	}
}

// FromDomain populates InvoiceModel from domain Invoice, items included
func (m *InvoiceModel) FromDomain(inv *invoicing.Invoice) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.TenantID = inv.TenantID
	m.Number = inv.Number
	m.ClientID = inv.ClientID
	m.Status = string(inv.Status)
	m.Amount = inv.Amount
	m.Currency = inv.Currency
	m.DueDate = inv.DueDate

	m.Items = make([]InvoiceItemModel, len(inv.Items))
	for i := range inv.Items {
		m.Items[i].FromDomain(&inv.Items[i])
	}
}

// InvoiceItemModel is the persistence model for invoicing.InvoiceItem
type InvoiceItemModel struct {
	BaseModel
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"size:500;not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for InvoiceItemModel
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts InvoiceItemModel to domain InvoiceItem
func (m *InvoiceItemModel) ToDomain() *invoicing.InvoiceItem {
	return &invoicing.InvoiceItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
	}
}

// FromDomain populates InvoiceItemModel from domain InvoiceItem
func (m *InvoiceItemModel) FromDomain(item *invoicing.InvoiceItem) {
	m.FromDomainBaseEntity(item.BaseEntity)
	m.InvoiceID = item.InvoiceID
	m.Description = item.Description
	m.Quantity = item.Quantity
	m.UnitPrice = item.UnitPrice
	m.Total = item.Total
}
