package invoicing

import (
	"context"

	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientService handles client-related business operations. Every operation
// is scoped to the caller's tenant; a client belonging to another tenant is
// indistinguishable from one that does not exist.
type ClientService struct {
	clients  invoicing.ClientRepository
	invoices invoicing.InvoiceRepository
	logger   *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clients invoicing.ClientRepository, invoices invoicing.InvoiceRepository, logger *zap.Logger) *ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{clients: clients, invoices: invoices, logger: logger}
}

// Create creates a new client in the tenant
func (s *ClientService) Create(ctx context.Context, tenantID uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	client, err := invoicing.NewClient(tenantID, req.Name, req.Phone, req.ICE, req.IFNumber)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	return ToClientResponse(client), nil
}

// Get returns a client by ID
func (s *ClientService) Get(ctx context.Context, tenantID, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clients.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToClientResponse(client), nil
}

// List returns all clients in the tenant
func (s *ClientService) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ClientResponse, error) {
	clients, err := s.clients.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = *ToClientResponse(&clients[i])
	}
	return responses, nil
}

// Update applies a partial update to a client
func (s *ClientService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clients.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	err = client.Update(invoicing.ClientPatch{
		Name:     req.Name,
		Phone:    req.Phone,
		ICE:      req.ICE,
		IFNumber: req.IFNumber,
	})
	if err != nil {
		return nil, err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	return ToClientResponse(client), nil
}

// Delete removes a client. Deletion is blocked while invoices still
// reference the client, so invoices never point at a missing party.
func (s *ClientService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.clients.FindByIDForTenant(ctx, tenantID, id); err != nil {
		return err
	}

	count, err := s.invoices.CountForClient(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.ErrClientInUse
	}

	return s.clients.DeleteForTenant(ctx, tenantID, id)
}
