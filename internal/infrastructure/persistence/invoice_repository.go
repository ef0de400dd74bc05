package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/facturo/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByIDForTenant finds an invoice with its items by ID within a tenant
func (r *GormInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all invoices for a tenant with items preloaded
func (r *GormInvoiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]invoicing.Invoice, error) {
	query := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("tenant_id = ?", tenantID)

	if clientID, ok := filter.Filters["client_id"].(uuid.UUID); ok {
		query = query.Where("client_id = ?", clientID)
	}

	query = applyOrderAndPagination(query, filter, InvoiceSortFields)

	var invoiceModels []models.InvoiceModel
	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]invoicing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// FindNumbersForTenant returns every invoice number stored for the tenant
func (r *GormInvoiceRepository) FindNumbersForTenant(ctx context.Context, tenantID uuid.UUID) ([]string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("tenant_id = ?", tenantID).
		Pluck("number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

// Create persists the invoice and its items in one transaction. A duplicate
// (tenant_id, number) maps to shared.ErrConcurrencyConflict so the caller
// can recompute the number and retry.
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *invoicing.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(invoice)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrConcurrencyConflict
		}
		return err
	}
	return nil
}

// Save updates the invoice row without touching items
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *invoicing.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(invoice)
	model.Items = nil

	return r.db.WithContext(ctx).
		Omit("Items").
		Save(&model).Error
}

// SaveWithItems updates the invoice and replaces its full item set in one
// transaction. Items are deleted and re-inserted so stale rows cannot
// survive a replace.
func (r *GormInvoiceRepository) SaveWithItems(ctx context.Context, invoice *invoicing.Invoice) error {
	var model models.InvoiceModel
	model.FromDomain(invoice)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).
			Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		if len(model.Items) > 0 {
			if err := tx.Create(&model.Items).Error; err != nil {
				return err
			}
		}
		items := model.Items
		model.Items = nil
		if err := tx.Omit("Items").Save(&model).Error; err != nil {
			return err
		}
		model.Items = items
		return nil
	})
}

// DeleteForTenant removes the invoice and its items within a tenant
func (r *GormInvoiceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("tenant_id = ? AND id = ?", tenantID, id).
			Delete(&models.InvoiceModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		// Explicit cascade keeps item cleanup independent of FK support
		return tx.Where("invoice_id = ?", id).
			Delete(&models.InvoiceItemModel{}).Error
	})
}

// CountForClient counts invoices referencing a client within a tenant
func (r *GormInvoiceRepository) CountForClient(ctx context.Context, tenantID, clientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MonthlyRevenueForTenant sums paid-invoice amounts per month of the given
// year. Rows are aggregated in Go to keep decimal arithmetic exact across
// database engines.
func (r *GormInvoiceRepository) MonthlyRevenueForTenant(ctx context.Context, tenantID uuid.UUID, year int) ([]invoicing.MonthlyRevenue, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var rows []struct {
		CreatedAt time.Time
		Amount    decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("created_at", "amount").
		Where("tenant_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			tenantID, string(invoicing.StatusPaid), start, end).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	byMonth := make(map[int]decimal.Decimal)
	for _, rec := range rows {
		m := int(rec.CreatedAt.Month())
		byMonth[m] = byMonth[m].Add(rec.Amount)
	}

	revenues := make([]invoicing.MonthlyRevenue, 0, 12)
	for m := 1; m <= 12; m++ {
		revenues = append(revenues, invoicing.MonthlyRevenue{
			Month:   m,
			Revenue: byMonth[m],
		})
	}
	return revenues, nil
}
