package invoicing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/facturo/backend/internal/domain/identity"
	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/facturo/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxNumberAttempts bounds the create retry loop when two requests race for
// the same invoice number
const maxNumberAttempts = 3

// InvoiceService handles the invoice lifecycle: creation with server-assigned
// numbering, atomic item replacement, lazy overdue reconciliation and PDF
// rendering.
type InvoiceService struct {
	invoices invoicing.InvoiceRepository
	clients  invoicing.ClientRepository
	teams    identity.TeamRepository
	builder  *printing.DocumentBuilder
	renderer printing.PDFRenderer
	logger   *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoices invoicing.InvoiceRepository,
	clients invoicing.ClientRepository,
	teams identity.TeamRepository,
	builder *printing.DocumentBuilder,
	renderer printing.PDFRenderer,
	logger *zap.Logger,
) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		invoices: invoices,
		clients:  clients,
		teams:    teams,
		builder:  builder,
		renderer: renderer,
		logger:   logger,
	}
}

// Create creates an invoice with a freshly assigned number. A losing race on
// the number recomputes and retries before giving up with a conflict.
func (s *InvoiceService) Create(ctx context.Context, tenantID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if err := s.validateClientRef(ctx, tenantID, req.ClientID); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		numbers, err := s.invoices.FindNumbersForTenant(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		number, err := invoicing.NextNumber(numbers)
		if err != nil {
			return nil, err
		}

		inv, err := invoicing.NewInvoice(tenantID, req.ClientID, number, req.Currency,
			invoicing.InvoiceStatus(req.Status), req.DueDate, toItemInputs(req.Items))
		if err != nil {
			return nil, err
		}

		err = s.invoices.Create(ctx, inv)
		if err == nil {
			s.logger.Info("Invoice created",
				zap.String("invoice_id", inv.ID.String()),
				zap.String("number", inv.Number))
			return ToInvoiceResponse(inv), nil
		}
		if !errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}
		s.logger.Warn("Invoice number conflict, retrying",
			zap.String("number", number),
			zap.Int("attempt", attempt))
	}

	return nil, shared.ErrConcurrencyConflict
}

// Get returns an invoice, reconciling its overdue state first
func (s *InvoiceService) Get(ctx context.Context, tenantID, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.getReconciled(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// List returns the tenant's invoices, reconciling overdue state before any
// status filtering so a stale unpaid row cannot slip through an
// overdue-filtered listing.
func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID, query ListInvoicesQuery) ([]InvoiceResponse, error) {
	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.PageSize > 0 {
		filter.PageSize = query.PageSize
	} else if query.PageSize < 0 {
		// negative means unpaginated, used by exports
		filter.PageSize = 0
	}

	// A status filter is applied after reconciliation, so the page window
	// must be cut from the filtered set, not the stored one. Fetch the whole
	// tenant in that case and paginate below.
	fetch := filter
	if query.Status != "" {
		fetch.Page = 1
		fetch.PageSize = 0
	}

	invoices, err := s.invoices.FindAllForTenant(ctx, tenantID, fetch)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		s.reconcile(ctx, inv, now)
		if query.Status != "" && string(inv.Status) != query.Status {
			continue
		}
		responses = append(responses, *ToInvoiceResponse(inv))
	}

	if query.Status != "" && filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start >= len(responses) {
			return []InvoiceResponse{}, nil
		}
		end := start + filter.PageSize
		if end > len(responses) {
			end = len(responses)
		}
		responses = responses[start:end]
	}
	return responses, nil
}

// Update applies a partial update. The invoice number and creation date are
// immutable; a provided item set fully replaces the stored one.
func (s *InvoiceService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	inv, err := s.getReconciled(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil && *req.ClientID != inv.ClientID {
		if err := s.validateClientRef(ctx, tenantID, *req.ClientID); err != nil {
			return nil, err
		}
		inv.SetClient(*req.ClientID)
	}
	if req.Currency != nil {
		if err := inv.SetCurrency(*req.Currency); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		inv.SetDueDate(req.DueDate)
	}
	if req.Status != nil {
		if err := inv.ApplyStatus(invoicing.InvoiceStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if req.Items != nil {
		if err := inv.ReplaceItems(toItemInputs(*req.Items)); err != nil {
			return nil, err
		}
		if err := s.invoices.SaveWithItems(ctx, inv); err != nil {
			return nil, err
		}
	} else {
		if err := s.invoices.Save(ctx, inv); err != nil {
			return nil, err
		}
	}

	return ToInvoiceResponse(inv), nil
}

// UpdateStatus handles a direct status update; only paid and unpaid are
// accepted, overdue is derived and rejected before any write
func (s *InvoiceService) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, req UpdateStatusRequest) (*InvoiceResponse, error) {
	inv, err := s.getReconciled(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := inv.ApplyStatus(invoicing.InvoiceStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.invoices.Save(ctx, inv); err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// Delete removes an invoice and its items
func (s *InvoiceService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.invoices.DeleteForTenant(ctx, tenantID, id)
}

// PDFDocument is a rendered invoice ready for download
type PDFDocument struct {
	FileName string
	Data     []byte
}

// RenderPDF renders the invoice as a PDF document
func (s *InvoiceService) RenderPDF(ctx context.Context, tenantID, id uuid.UUID) (*PDFDocument, error) {
	inv, err := s.getReconciled(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.FindByIDForTenant(ctx, tenantID, inv.ClientID)
	if err != nil {
		return nil, err
	}
	team, err := s.teams.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	doc := s.builder.BuildDocument(ctx, inv, client, team)
	html, err := s.builder.RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: "Facture " + inv.Number,
	})
	if err != nil {
		return nil, err
	}

	return &PDFDocument{
		FileName: fmt.Sprintf("invoice_%s.pdf", inv.Number),
		Data:     result.PDFData,
	}, nil
}

// getReconciled loads an invoice and applies lazy overdue reconciliation,
// persisting a derived transition so later reads see it directly
func (s *InvoiceService) getReconciled(ctx context.Context, tenantID, id uuid.UUID) (*invoicing.Invoice, error) {
	inv, err := s.invoices.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	s.reconcile(ctx, inv, time.Now())
	return inv, nil
}

// reconcile persists an overdue transition. A failed write is logged and the
// reconciled state still returned; the next read repairs it. Racing
// reconciliations converge on the same status.
func (s *InvoiceService) reconcile(ctx context.Context, inv *invoicing.Invoice, now time.Time) {
	if !inv.ReconcileOverdue(now) {
		return
	}
	if err := s.invoices.Save(ctx, inv); err != nil {
		s.logger.Warn("Failed to persist overdue transition",
			zap.String("invoice_id", inv.ID.String()),
			zap.Error(err))
	}
}

// validateClientRef checks that the client exists in the caller's tenant. A
// client from another tenant is reported as an invalid reference, not as a
// leak of its existence.
func (s *InvoiceService) validateClientRef(ctx context.Context, tenantID, clientID uuid.UUID) error {
	_, err := s.clients.FindByIDForTenant(ctx, tenantID, clientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrInvalidReference
		}
		return err
	}
	return nil
}
