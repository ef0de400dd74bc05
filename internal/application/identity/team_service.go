package identity

import (
	"context"
	"errors"
	"io"

	"github.com/facturo/backend/internal/domain/identity"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/facturo/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TeamService handles tenant profile operations
type TeamService struct {
	teams  identity.TeamRepository
	logos  *storage.LocalFileStorage
	logger *zap.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(teams identity.TeamRepository, logos *storage.LocalFileStorage, logger *zap.Logger) *TeamService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{teams: teams, logos: logos, logger: logger}
}

// Get returns the current tenant's profile
func (s *TeamService) Get(ctx context.Context, tenantID uuid.UUID) (*TeamResponse, error) {
	team, err := s.teams.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return ToTeamResponse(team), nil
}

// Update applies a partial profile update to the current tenant
func (s *TeamService) Update(ctx context.Context, tenantID uuid.UUID, req UpdateTeamRequest) (*TeamResponse, error) {
	team, err := s.teams.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	err = team.UpdateProfile(identity.TeamProfile{
		Name:                  req.Name,
		ICE:                   req.ICE,
		IFNumber:              req.IFNumber,
		CNIE:                  req.CNIE,
		ProfessionalTaxNumber: req.ProfessionalTaxNumber,
		Address:               req.Address,
		Phone:                 req.Phone,
		Email:                 req.Email,
	})
	if err != nil {
		return nil, err
	}

	if err := s.teams.Save(ctx, team); err != nil {
		return nil, err
	}
	return ToTeamResponse(team), nil
}

// GetLogo returns the stored logo bytes and content type for the tenant
func (s *TeamService) GetLogo(ctx context.Context, tenantID uuid.UUID) ([]byte, string, error) {
	team, err := s.teams.FindByID(ctx, tenantID)
	if err != nil {
		return nil, "", err
	}
	if team.LogoRef == "" {
		return nil, "", shared.ErrNotFound
	}

	data, err := s.logos.Read(ctx, team.LogoRef)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, "", shared.ErrNotFound
		}
		return nil, "", err
	}
	return data, storage.ContentType(team.LogoRef), nil
}

// SetLogo stores a new logo and updates the team reference, removing the
// previous file if one existed
func (s *TeamService) SetLogo(ctx context.Context, tenantID uuid.UUID, fileName string, content io.Reader) (*TeamResponse, error) {
	if !storage.AllowedExtension(fileName) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Logo must be a PNG, JPEG, GIF or WebP image")
	}

	team, err := s.teams.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	ref, err := s.logos.Save(ctx, fileName, content)
	if err != nil {
		return nil, err
	}

	if previous := team.LogoRef; previous != "" {
		if err := s.logos.Delete(ctx, previous); err != nil {
			s.logger.Warn("Failed to remove previous logo",
				zap.String("ref", previous), zap.Error(err))
		}
	}

	team.SetLogo(ref)
	if err := s.teams.Save(ctx, team); err != nil {
		return nil, err
	}
	return ToTeamResponse(team), nil
}
