package identity

import (
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MembershipRole represents a user's role within a team
type MembershipRole string

const (
	RoleOwner  MembershipRole = "owner"
	RoleMember MembershipRole = "member"
)

// TeamMembership links a user to a team. A user's first membership
// determines the tenant their requests are scoped to.
type TeamMembership struct {
	shared.BaseEntity
	UserID uuid.UUID
	TeamID uuid.UUID
	Role   MembershipRole
}

// NewTeamMembership creates a membership with the given role
func NewTeamMembership(userID, teamID uuid.UUID, role MembershipRole) (*TeamMembership, error) {
	switch role {
	case RoleOwner, RoleMember:
	default:
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be 'owner' or 'member'")
	}
	return &TeamMembership{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		TeamID:     teamID,
		Role:       role,
	}, nil
}

// IsOwner returns true if the membership carries the owner role
func (m *TeamMembership) IsOwner() bool {
	return m.Role == RoleOwner
}
