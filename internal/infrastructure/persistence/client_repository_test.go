package persistence

import (
	"context"
	"testing"

	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewClient(t *testing.T, tenantID uuid.UUID, name string) *invoicing.Client {
	t.Helper()
	client, err := invoicing.NewClient(tenantID, name, "+212600000000", "ICE123", "IF456")
	require.NoError(t, err)
	return client
}

func TestGormClientRepository_SaveAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	client := mustNewClient(t, tenantID, "Acme SARL")
	require.NoError(t, repo.Save(ctx, client))

	found, err := repo.FindByIDForTenant(ctx, tenantID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme SARL", found.Name)
	assert.Equal(t, "ICE123", found.ICE)
	assert.Equal(t, tenantID, found.TenantID)
}

func TestGormClientRepository_TenantIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()

	client := mustNewClient(t, owner, "Acme SARL")
	require.NoError(t, repo.Save(ctx, client))

	_, err := repo.FindByIDForTenant(ctx, stranger, client.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.DeleteForTenant(ctx, stranger, client.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// The row is untouched for its owner
	_, err = repo.FindByIDForTenant(ctx, owner, client.ID)
	assert.NoError(t, err)
}

func TestGormClientRepository_FindAllForTenant(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.Save(ctx, mustNewClient(t, tenantID, "Alpha")))
	require.NoError(t, repo.Save(ctx, mustNewClient(t, tenantID, "Beta")))
	require.NoError(t, repo.Save(ctx, mustNewClient(t, uuid.New(), "Other Tenant")))

	filter := shared.DefaultFilter()
	clients, err := repo.FindAllForTenant(ctx, tenantID, filter)
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	filter.Filters["name"] = "Alph"
	clients, err = repo.FindAllForTenant(ctx, tenantID, filter)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Alpha", clients[0].Name)
}

func TestGormClientRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	client := mustNewClient(t, tenantID, "Before")
	require.NoError(t, repo.Save(ctx, client))

	name := "After"
	require.NoError(t, client.Update(invoicing.ClientPatch{Name: &name}))
	require.NoError(t, repo.Save(ctx, client))

	found, err := repo.FindByIDForTenant(ctx, tenantID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", found.Name)
}

func TestGormClientRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	client := mustNewClient(t, tenantID, "Doomed")
	require.NoError(t, repo.Save(ctx, client))

	require.NoError(t, repo.DeleteForTenant(ctx, tenantID, client.ID))

	_, err := repo.FindByIDForTenant(ctx, tenantID, client.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
