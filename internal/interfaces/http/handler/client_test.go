package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	invoicingapp "github.com/facturo/backend/internal/application/invoicing"
	"github.com/facturo/backend/internal/infrastructure/persistence"
	"github.com/facturo/backend/internal/infrastructure/persistence/models"
	"github.com/facturo/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// forceTenant injects a fixed tenant ID, standing in for the auth middleware
func forceTenant(tenantID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyTenantID, tenantID)
		c.Set(middleware.ContextKeyUserID, uuid.New())
		c.Next()
	}
}

func newClientTestRouter(t *testing.T, tenantID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterCustomValidators())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ClientModel{}, &models.InvoiceModel{}, &models.InvoiceItemModel{}))

	clients := persistence.NewGormClientRepository(db)
	invoices := persistence.NewGormInvoiceRepository(db)
	service := invoicingapp.NewClientService(clients, invoices, nil)

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(forceTenant(tenantID))
	NewClientHandler(service).RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestClientHandler_CreateAndGet(t *testing.T) {
	tenantID := uuid.New()
	router := newClientTestRouter(t, tenantID)

	w := doJSON(t, router, http.MethodPost, "/api/v1/clients", gin.H{
		"name": "Atlas Trading",
		"ice":  "001234567000089",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data invoicingapp.ClientResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Atlas Trading", created.Data.Name)

	w = doJSON(t, router, http.MethodGet, "/api/v1/clients/"+created.Data.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Atlas Trading")
}

func TestClientHandler_CreateValidation(t *testing.T) {
	router := newClientTestRouter(t, uuid.New())

	w := doJSON(t, router, http.MethodPost, "/api/v1/clients", gin.H{"phone": "+212600000000"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestClientHandler_GetInvalidID(t *testing.T) {
	router := newClientTestRouter(t, uuid.New())

	w := doJSON(t, router, http.MethodGet, "/api/v1/clients/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_GetMissing(t *testing.T) {
	router := newClientTestRouter(t, uuid.New())

	w := doJSON(t, router, http.MethodGet, "/api/v1/clients/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestClientHandler_DeleteMissing(t *testing.T) {
	router := newClientTestRouter(t, uuid.New())

	w := doJSON(t, router, http.MethodDelete, "/api/v1/clients/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
