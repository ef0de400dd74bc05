package invoicing

import (
	"context"
	"time"

	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DashboardService aggregates invoice figures for the tenant dashboard
type DashboardService struct {
	invoiceService *InvoiceService
	invoices       invoicing.InvoiceRepository
	logger         *zap.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(invoiceService *InvoiceService, invoices invoicing.InvoiceRepository, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		invoiceService: invoiceService,
		invoices:       invoices,
		logger:         logger,
	}
}

// Summary counts invoices by status and totals paid revenue. Counting goes
// through the invoice service so overdue reconciliation applies first.
func (s *DashboardService) Summary(ctx context.Context, tenantID uuid.UUID) (*DashboardSummaryResponse, error) {
	invoices, err := s.invoiceService.List(ctx, tenantID, ListInvoicesQuery{PageSize: -1})
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummaryResponse{
		TotalInvoices: len(invoices),
		TotalRevenue:  decimal.Zero,
	}
	for _, inv := range invoices {
		switch invoicing.InvoiceStatus(inv.Status) {
		case invoicing.StatusPaid:
			summary.Paid++
			summary.TotalRevenue = summary.TotalRevenue.Add(inv.Amount)
		case invoicing.StatusUnpaid:
			summary.Unpaid++
		case invoicing.StatusOverdue:
			summary.Overdue++
		}
	}
	return summary, nil
}

// MonthlyRevenue sums paid-invoice amounts per month of the current year,
// keyed by month number
func (s *DashboardService) MonthlyRevenue(ctx context.Context, tenantID uuid.UUID) (map[int]decimal.Decimal, error) {
	year := time.Now().UTC().Year()
	revenues, err := s.invoices.MonthlyRevenueForTenant(ctx, tenantID, year)
	if err != nil {
		return nil, err
	}

	result := make(map[int]decimal.Decimal)
	for _, mr := range revenues {
		if !mr.Revenue.IsZero() {
			result[mr.Month] = mr.Revenue
		}
	}
	return result, nil
}
