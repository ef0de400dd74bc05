package printing

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/facturo/backend/internal/domain/identity"
	"github.com/facturo/backend/internal/domain/invoicing"
	"github.com/facturo/backend/internal/infrastructure/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DocumentItem is one line of the rendered invoice table
type DocumentItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// DocumentClient is the billed party as shown on the document
type DocumentClient struct {
	Name     string
	ICE      string
	IFNumber string
}

// DocumentTeam is the issuing team as shown on the document
type DocumentTeam struct {
	Name                  string
	ICE                   string
	IFNumber              string
	CNIE                  string
	ProfessionalTaxNumber string
	Address               string
	Phone                 string
	Email                 string
	LogoDataURI           string
}

// InvoiceDocument is the full data bound to the invoice template
type InvoiceDocument struct {
	Number   string
	Status   string
	Currency string
	Date     time.Time
	DueDate  *time.Time
	Amount   decimal.Decimal
	Items    []DocumentItem
	Client   DocumentClient
	Team     DocumentTeam
}

// DocumentBuilder assembles invoice documents and renders them to HTML
type DocumentBuilder struct {
	engine *TemplateEngine
	logos  *storage.LocalFileStorage
	logger *zap.Logger
}

// NewDocumentBuilder creates a DocumentBuilder. The logo storage may be nil,
// in which case documents render without a logo.
func NewDocumentBuilder(engine *TemplateEngine, logos *storage.LocalFileStorage, logger *zap.Logger) *DocumentBuilder {
	if engine == nil {
		engine = NewTemplateEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentBuilder{engine: engine, logos: logos, logger: logger}
}

// BuildDocument maps domain entities to the template data. An unresolvable
// logo degrades to a document without one, never an error.
func (b *DocumentBuilder) BuildDocument(ctx context.Context, inv *invoicing.Invoice, client *invoicing.Client, team *identity.Team) *InvoiceDocument {
	items := make([]DocumentItem, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = DocumentItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}

	doc := &InvoiceDocument{
		Number:   inv.Number,
		Status:   string(inv.Status),
		Currency: inv.Currency,
		Date:     inv.CreatedAt,
		DueDate:  inv.DueDate,
		Amount:   inv.Amount,
		Items:    items,
		Client: DocumentClient{
			Name:     client.Name,
			ICE:      client.ICE,
			IFNumber: client.IFNumber,
		},
		Team: DocumentTeam{
			Name:                  team.Name,
			ICE:                   team.ICE,
			IFNumber:              team.IFNumber,
			CNIE:                  team.CNIE,
			ProfessionalTaxNumber: team.ProfessionalTaxNumber,
			Address:               team.Address,
			Phone:                 team.Phone,
			Email:                 team.Email,
		},
	}

	doc.Team.LogoDataURI = b.resolveLogo(ctx, team.LogoRef)
	return doc
}

// RenderHTML renders the invoice document through the default template
func (b *DocumentBuilder) RenderHTML(doc *InvoiceDocument) (string, error) {
	return b.engine.Render("invoice", invoiceTemplateHTML, doc)
}

// resolveLogo loads and inlines the team logo as a data URI. A missing or
// unreadable logo returns an empty string.
func (b *DocumentBuilder) resolveLogo(ctx context.Context, ref string) string {
	if ref == "" || b.logos == nil {
		return ""
	}
	data, err := b.logos.Read(ctx, ref)
	if err != nil {
		if !errors.Is(err, storage.ErrFileNotFound) {
			b.logger.Warn("Failed to read team logo", zap.String("ref", ref), zap.Error(err))
		}
		return ""
	}
	return "data:" + storage.ContentType(ref) + ";base64," + base64.StdEncoding.EncodeToString(data)
}
