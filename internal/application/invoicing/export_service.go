package invoicing

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// csvHeader is the fixed column layout of the invoice CSV export
var csvHeader = []string{"ID", "Number", "Client", "Status", "Amount", "Currency", "Due Date", "Created At"}

// ExportService produces bulk exports of a tenant's invoices
type ExportService struct {
	invoiceService *InvoiceService
	clients        invoicing.ClientRepository
	logger         *zap.Logger
}

// NewExportService creates a new ExportService
func NewExportService(invoiceService *InvoiceService, clients invoicing.ClientRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		invoiceService: invoiceService,
		clients:        clients,
		logger:         logger,
	}
}

// ExportCSV writes every invoice of the tenant as CSV rows. Listing goes
// through the invoice service so overdue reconciliation applies to exports
// exactly as it does to reads.
func (s *ExportService) ExportCSV(ctx context.Context, tenantID uuid.UUID) ([]byte, error) {
	invoices, err := s.invoiceService.List(ctx, tenantID, ListInvoicesQuery{PageSize: -1})
	if err != nil {
		return nil, err
	}

	names, err := s.clientNames(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		dueDate := ""
		if inv.DueDate != nil {
			dueDate = inv.DueDate.Format("2006-01-02T15:04:05")
		}
		row := []string{
			inv.ID.String(),
			inv.Number,
			names[inv.ClientID],
			inv.Status,
			inv.Amount.StringFixed(2),
			inv.Currency,
			dueDate,
			inv.CreatedAt.Format("2006-01-02T15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportZIP renders every invoice of the tenant to PDF and bundles them as
// invoice_{number}.pdf entries
func (s *ExportService) ExportZIP(ctx context.Context, tenantID uuid.UUID) ([]byte, error) {
	invoices, err := s.invoiceService.List(ctx, tenantID, ListInvoicesQuery{PageSize: -1})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, inv := range invoices {
		doc, err := s.invoiceService.RenderPDF(ctx, tenantID, inv.ID)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to render invoice %s: %w", inv.Number, err)
		}

		entry, err := zw.Create(doc.FileName)
		if err != nil {
			zw.Close()
			return nil, err
		}
		if _, err := entry.Write(doc.Data); err != nil {
			zw.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// clientNames maps client IDs to display names for CSV rows. A dangling
// reference yields an empty name rather than failing the export.
func (s *ExportService) clientNames(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]string, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 0
	clients, err := s.clients.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names, nil
}
