package invoicing

import (
	"strings"
	"time"

	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Client represents a party a team issues invoices to
type Client struct {
	shared.TenantEntity
	Name     string
	Phone    string
	ICE      string // Identifiant Commun de l'Entreprise
	IFNumber string // Identifiant Fiscal
}

// NewClient creates a new client for the given tenant
func NewClient(tenantID uuid.UUID, name, phone, ice, ifNumber string) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	return &Client{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		Phone:        phone,
		ICE:          ice,
		IFNumber:     ifNumber,
	}, nil
}

// ClientPatch carries a partial client update
type ClientPatch struct {
	Name     *string
	Phone    *string
	ICE      *string
	IFNumber *string
}

// Update applies a partial update to the client
func (c *Client) Update(p ClientPatch) error {
	if p.Name != nil {
		if err := validateClientName(*p.Name); err != nil {
			return err
		}
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.ICE != nil {
		c.ICE = *p.ICE
	}
	if p.IFNumber != nil {
		c.IFNumber = *p.IFNumber
	}
	c.UpdatedAt = time.Now()
	return nil
}

func validateClientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}
