package identity

import (
	"bytes"
	"context"
	"testing"

	"github.com/facturo/backend/internal/domain/identity"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/facturo/backend/internal/infrastructure/config"
	"github.com/facturo/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogoStorage(t *testing.T) *storage.LocalFileStorage {
	t.Helper()
	logos, err := storage.NewLocalFileStorage(&config.StorageConfig{UploadsDir: t.TempDir()}, nil)
	require.NoError(t, err)
	return logos
}

func TestTeamService_Update(t *testing.T) {
	teams := new(MockTeamRepository)
	service := NewTeamService(teams, newLogoStorage(t), nil)

	team, err := identity.NewTeam("Facturo SARL", uuid.New())
	require.NoError(t, err)

	teams.On("FindByID", mock.Anything, team.ID).Return(team, nil)
	teams.On("Save", mock.Anything, team).Return(nil)

	phone := "+212522000000"
	resp, err := service.Update(context.Background(), team.ID, UpdateTeamRequest{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "+212522000000", resp.Phone)
	assert.Equal(t, "Facturo SARL", resp.Name)
	teams.AssertExpectations(t)
}

func TestTeamService_SetLogo_ReplacesPrevious(t *testing.T) {
	teams := new(MockTeamRepository)
	logos := newLogoStorage(t)
	service := NewTeamService(teams, logos, nil)

	team, err := identity.NewTeam("Facturo SARL", uuid.New())
	require.NoError(t, err)

	teams.On("FindByID", mock.Anything, team.ID).Return(team, nil)
	teams.On("Save", mock.Anything, team).Return(nil)

	resp, err := service.SetLogo(context.Background(), team.ID, "logo.png", bytes.NewReader([]byte("first")))
	require.NoError(t, err)
	firstRef := resp.LogoRef
	require.NotEmpty(t, firstRef)

	resp, err = service.SetLogo(context.Background(), team.ID, "logo2.png", bytes.NewReader([]byte("second")))
	require.NoError(t, err)
	require.NotEqual(t, firstRef, resp.LogoRef)

	// The previous file is gone, the new one is readable
	_, err = logos.Read(context.Background(), firstRef)
	assert.ErrorIs(t, err, storage.ErrFileNotFound)
	data, err := logos.Read(context.Background(), resp.LogoRef)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestTeamService_SetLogo_RejectsUnsupportedType(t *testing.T) {
	teams := new(MockTeamRepository)
	service := NewTeamService(teams, newLogoStorage(t), nil)

	_, err := service.SetLogo(context.Background(), uuid.New(), "malware.exe", bytes.NewReader([]byte("x")))

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	teams.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestTeamService_GetLogo_MissingIsNotFound(t *testing.T) {
	teams := new(MockTeamRepository)
	service := NewTeamService(teams, newLogoStorage(t), nil)

	team, err := identity.NewTeam("Facturo SARL", uuid.New())
	require.NoError(t, err)
	teams.On("FindByID", mock.Anything, team.ID).Return(team, nil)

	_, _, err = service.GetLogo(context.Background(), team.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestTeamService_GetLogo_RoundTrip(t *testing.T) {
	teams := new(MockTeamRepository)
	logos := newLogoStorage(t)
	service := NewTeamService(teams, logos, nil)

	team, err := identity.NewTeam("Facturo SARL", uuid.New())
	require.NoError(t, err)
	teams.On("FindByID", mock.Anything, team.ID).Return(team, nil)
	teams.On("Save", mock.Anything, team).Return(nil)

	_, err = service.SetLogo(context.Background(), team.ID, "logo.png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)

	data, contentType, err := service.GetLogo(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)
}
