package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM connection backed by sqlmock, matching the
// PostgreSQL dialect used in production
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormInvoiceRepository_FindNumbersForTenant_Query(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	repo := NewGormInvoiceRepository(gormDB)
	tenantID := uuid.New()

	rows := sqlmock.NewRows([]string{"number"}).
		AddRow("1").
		AddRow("2").
		AddRow("7")

	mock.ExpectQuery(`SELECT "number" FROM "invoices" WHERE tenant_id = \$1`).
		WithArgs(tenantID).
		WillReturnRows(rows)

	numbers, err := repo.FindNumbersForTenant(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "7"}, numbers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInvoiceRepository_CountForClient_Query(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	repo := NewGormInvoiceRepository(gormDB)
	tenantID := uuid.New()
	clientID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE tenant_id = \$1 AND client_id = \$2`).
		WithArgs(tenantID, clientID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountForClient(context.Background(), tenantID, clientID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
