package identity

import (
	"time"

	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultCurrency is the currency applied to invoices that do not specify one
const DefaultCurrency = "MAD"

// Team is the tenant: the isolation boundary that owns clients and invoices.
// Legal identifiers follow Moroccan invoicing requirements (ICE, IF, CNIE,
// professional tax number) and appear on rendered documents.
type Team struct {
	shared.BaseEntity
	Name                  string
	OwnerID               uuid.UUID
	LogoRef               string // stored logo file name, resolved by the file resolver
	ICE                   string // Identifiant Commun de l'Entreprise
	IFNumber              string // Identifiant Fiscal
	CNIE                  string
	ProfessionalTaxNumber string
	Address               string
	Phone                 string
	Email                 string
}

// NewTeam creates a new team owned by the given user
func NewTeam(name string, ownerID uuid.UUID) (*Team, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Team name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Team name cannot exceed 200 characters")
	}
	return &Team{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		OwnerID:    ownerID,
	}, nil
}

// TeamProfile carries the updatable profile fields of a team
type TeamProfile struct {
	Name                  *string
	ICE                   *string
	IFNumber              *string
	CNIE                  *string
	ProfessionalTaxNumber *string
	Address               *string
	Phone                 *string
	Email                 *string
}

// UpdateProfile applies a partial profile update
func (t *Team) UpdateProfile(p TeamProfile) error {
	if p.Name != nil {
		if *p.Name == "" {
			return shared.NewDomainError("INVALID_NAME", "Team name cannot be empty")
		}
		t.Name = *p.Name
	}
	if p.ICE != nil {
		t.ICE = *p.ICE
	}
	if p.IFNumber != nil {
		t.IFNumber = *p.IFNumber
	}
	if p.CNIE != nil {
		t.CNIE = *p.CNIE
	}
	if p.ProfessionalTaxNumber != nil {
		t.ProfessionalTaxNumber = *p.ProfessionalTaxNumber
	}
	if p.Address != nil {
		t.Address = *p.Address
	}
	if p.Phone != nil {
		t.Phone = *p.Phone
	}
	if p.Email != nil {
		if *p.Email != "" && !emailRegex.MatchString(*p.Email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
		t.Email = *p.Email
	}
	t.UpdatedAt = time.Now()
	return nil
}

// SetLogo stores the logo file reference
func (t *Team) SetLogo(ref string) {
	t.LogoRef = ref
	t.UpdatedAt = time.Now()
}
