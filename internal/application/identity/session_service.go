package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/facturo/backend/internal/domain/identity"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/facturo/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// SessionService resolves a verified identity into a local user and tenant.
// Accounts are provisioned on first sight: an unknown subject falls back to
// an email match (re-linking the subject) and finally to a fresh user with a
// default team.
type SessionService struct {
	users       identity.UserRepository
	teams       identity.TeamRepository
	memberships identity.MembershipRepository
	logger      *zap.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(
	users identity.UserRepository,
	teams identity.TeamRepository,
	memberships identity.MembershipRepository,
	logger *zap.Logger,
) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		users:       users,
		teams:       teams,
		memberships: memberships,
		logger:      logger,
	}
}

// Resolve returns the session for a verified identity, provisioning the user
// and a default team membership as needed
func (s *SessionService) Resolve(ctx context.Context, ident *auth.Identity) (*Session, error) {
	user, err := s.resolveUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	membership, err := s.resolveMembership(ctx, user)
	if err != nil {
		return nil, err
	}

	return &Session{
		UserID:   user.ID,
		TenantID: membership.TeamID,
		Role:     membership.Role,
	}, nil
}

func (s *SessionService) resolveUser(ctx context.Context, ident *auth.Identity) (*identity.User, error) {
	user, err := s.users.FindBySubjectID(ctx, ident.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	// Subject unknown; an existing account with the same email is re-linked
	// rather than duplicated
	if ident.Email != "" {
		user, err = s.users.FindByEmail(ctx, ident.Email)
		if err == nil {
			user.LinkSubject(ident.Subject, ident.Name)
			if err := s.users.Save(ctx, user); err != nil {
				return nil, err
			}
			s.logger.Info("Linked existing user to new subject",
				zap.String("user_id", user.ID.String()))
			return user, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	user, err = identity.NewUser(ident.Subject, ident.Email, ident.Name)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("Provisioned new user", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (s *SessionService) resolveMembership(ctx context.Context, user *identity.User) (*identity.TeamMembership, error) {
	membership, err := s.memberships.FindFirstForUser(ctx, user.ID)
	if err == nil {
		return membership, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	team, err := identity.NewTeam(defaultTeamName(user), user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.teams.Save(ctx, team); err != nil {
		return nil, err
	}

	membership, err = identity.NewTeamMembership(user.ID, team.ID, identity.RoleOwner)
	if err != nil {
		return nil, err
	}
	if err := s.memberships.Save(ctx, membership); err != nil {
		return nil, err
	}

	s.logger.Info("Provisioned default team",
		zap.String("user_id", user.ID.String()),
		zap.String("team_id", team.ID.String()))
	return membership, nil
}

func defaultTeamName(user *identity.User) string {
	name := user.DisplayName()
	if name == "" {
		return "My Team"
	}
	return fmt.Sprintf("%s's Team", name)
}
