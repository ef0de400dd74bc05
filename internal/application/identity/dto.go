package identity

import (
	"time"

	"github.com/facturo/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// Session is the resolved request identity: the authenticated user and the
// tenant (team) their requests are scoped to
type Session struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     identity.MembershipRole
}

// UpdateTeamRequest represents a partial team profile update
type UpdateTeamRequest struct {
	Name                  *string `json:"name" binding:"omitempty,min=1,max=200"`
	ICE                   *string `json:"ice" binding:"omitempty,max=50"`
	IFNumber              *string `json:"if_number" binding:"omitempty,max=50"`
	CNIE                  *string `json:"cnie" binding:"omitempty,max=50"`
	ProfessionalTaxNumber *string `json:"professional_tax_number" binding:"omitempty,max=50"`
	Address               *string `json:"address" binding:"omitempty,max=500"`
	Phone                 *string `json:"phone" binding:"omitempty,max=50"`
	Email                 *string `json:"email" binding:"omitempty,email,max=255"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	LogoRef               string    `json:"logo_ref,omitempty"`
	ICE                   string    `json:"ice"`
	IFNumber              string    `json:"if_number"`
	CNIE                  string    `json:"cnie"`
	ProfessionalTaxNumber string    `json:"professional_tax_number"`
	Address               string    `json:"address"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ToTeamResponse converts a domain team to its response representation
func ToTeamResponse(t *identity.Team) *TeamResponse {
	return &TeamResponse{
		ID:                    t.ID,
		Name:                  t.Name,
		LogoRef:               t.LogoRef,
		ICE:                   t.ICE,
		IFNumber:              t.IFNumber,
		CNIE:                  t.CNIE,
		ProfessionalTaxNumber: t.ProfessionalTaxNumber,
		Address:               t.Address,
		Phone:                 t.Phone,
		Email:                 t.Email,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}
