package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persists users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindBySubjectID(ctx context.Context, subjectID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}

// TeamRepository persists teams
type TeamRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Team, error)
	Save(ctx context.Context, team *Team) error
}

// MembershipRepository persists team memberships
type MembershipRepository interface {
	FindFirstForUser(ctx context.Context, userID uuid.UUID) (*TeamMembership, error)
	Save(ctx context.Context, membership *TeamMembership) error
}
