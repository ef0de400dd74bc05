package printing

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/facturo/backend/internal/domain/identity"
	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/facturo/backend/internal/infrastructure/config"
	"github.com/facturo/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntities(t *testing.T) (*invoicing.Invoice, *invoicing.Client, *identity.Team) {
	t.Helper()
	tenantID := uuid.New()

	client, err := invoicing.NewClient(tenantID, "Acme SARL", "+212600000000", "ICE-CLIENT", "IF-CLIENT")
	require.NoError(t, err)

	due := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	inv, err := invoicing.NewInvoice(tenantID, client.ID, "7", "MAD", "", &due, []invoicing.ItemInput{
		{Description: "Consulting", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
		{Description: "Travel", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(150)},
	})
	require.NoError(t, err)

	team, err := identity.NewTeam("Facturo SARL", uuid.New())
	require.NoError(t, err)
	address := "12 Rue Exemple, Casablanca"
	phone := "+212522000000"
	require.NoError(t, team.UpdateProfile(identity.TeamProfile{Address: &address, Phone: &phone}))

	return inv, client, team
}

func TestDocumentBuilder_BuildAndRender(t *testing.T) {
	builder := NewDocumentBuilder(NewTemplateEngine(), nil, nil)
	inv, client, team := newTestEntities(t)

	doc := builder.BuildDocument(context.Background(), inv, client, team)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "7", doc.Number)
	assert.Empty(t, doc.Team.LogoDataURI)

	html, err := builder.RenderHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "FACTURE N° 7")
	assert.Contains(t, html, "DÉTAILS DE LA FACTURE")
	assert.Contains(t, html, "FACTURER À")
	assert.Contains(t, html, "ARTICLES")
	assert.Contains(t, html, "Acme SARL")
	assert.Contains(t, html, "Consulting")
	assert.Contains(t, html, "1,150.00 MAD")
	assert.Contains(t, html, "Montant en lettres:")
	assert.Contains(t, html, "1 mille 150 dirhams")
	assert.Contains(t, html, "Date d'échéance: 30/06/2025")
	assert.Contains(t, html, "Statut: UNPAID")
	assert.Contains(t, html, "COORDONNÉES")
	assert.Contains(t, html, "12 Rue Exemple, Casablanca")
	assert.NotContains(t, html, "<img")
}

func TestDocumentBuilder_InlinesLogo(t *testing.T) {
	logos, err := storage.NewLocalFileStorage(&config.StorageConfig{UploadsDir: t.TempDir()}, nil)
	require.NoError(t, err)

	ref, err := logos.Save(context.Background(), "logo.png", bytes.NewReader([]byte("fake-png")))
	require.NoError(t, err)

	builder := NewDocumentBuilder(NewTemplateEngine(), logos, nil)
	inv, client, team := newTestEntities(t)
	team.SetLogo(ref)

	doc := builder.BuildDocument(context.Background(), inv, client, team)
	assert.Contains(t, doc.Team.LogoDataURI, "data:image/png;base64,")

	html, err := builder.RenderHTML(doc)
	require.NoError(t, err)
	assert.Contains(t, html, "<img")
}

func TestDocumentBuilder_MissingLogoDegrades(t *testing.T) {
	logos, err := storage.NewLocalFileStorage(&config.StorageConfig{UploadsDir: t.TempDir()}, nil)
	require.NoError(t, err)

	builder := NewDocumentBuilder(NewTemplateEngine(), logos, nil)
	inv, client, team := newTestEntities(t)
	team.SetLogo("vanished.png")

	doc := builder.BuildDocument(context.Background(), inv, client, team)
	assert.Empty(t, doc.Team.LogoDataURI)

	html, err := builder.RenderHTML(doc)
	require.NoError(t, err)
	assert.NotContains(t, html, "<img")
}
