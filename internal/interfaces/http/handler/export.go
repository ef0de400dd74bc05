package handler

import (
	"net/http"

	invoicingapp "github.com/facturo/backend/internal/application/invoicing"
	"github.com/gin-gonic/gin"
)

// ExportHandler handles bulk export endpoints
type ExportHandler struct {
	BaseHandler
	exportService *invoicingapp.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *invoicingapp.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// RegisterRoutes registers export routes on the given group
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	exports := rg.Group("/export/invoices")
	{
		exports.GET("/csv", h.ExportCSV)
		exports.GET("/zip", h.ExportZIP)
	}
}

// ExportCSV handles GET /export/invoices/csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing session")
		return
	}

	data, err := h.exportService.ExportCSV(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoices.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportZIP handles GET /export/invoices/zip
func (h *ExportHandler) ExportZIP(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		h.Unauthorized(c, "Missing session")
		return
	}

	data, err := h.exportService.ExportZIP(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoices.zip"`)
	c.Data(http.StatusOK, "application/zip", data)
}
