package invoicing

import (
	"testing"
	"time"

	"github.com/facturo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(t *testing.T, status InvoiceStatus, dueDate *time.Time) *Invoice {
	t.Helper()
	inv, err := NewInvoice(uuid.New(), uuid.New(), "1", "MAD", status, dueDate, []ItemInput{
		{Description: "Consulting", Quantity: d("2"), UnitPrice: d("500")},
		{Description: "Travel", Quantity: d("1"), UnitPrice: d("150")},
	})
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	inv := newTestInvoice(t, "", nil)

	assert.Equal(t, StatusUnpaid, inv.Status)
	assert.Equal(t, "MAD", inv.Currency)
	assert.True(t, inv.Amount.Equal(d("1150")))
	require.Len(t, inv.Items, 2)
	for _, item := range inv.Items {
		assert.Equal(t, inv.ID, item.InvoiceID)
	}
}

func TestNewInvoice_RejectsDerivedStatus(t *testing.T) {
	_, err := NewInvoice(uuid.New(), uuid.New(), "1", "MAD", StatusOverdue, nil, nil)
	assert.ErrorIs(t, err, shared.ErrInvalidTransition)
}

func TestInvoice_ReplaceItems(t *testing.T) {
	inv := newTestInvoice(t, "", nil)

	err := inv.ReplaceItems([]ItemInput{
		{Description: "Maintenance", Quantity: d("4"), UnitPrice: d("250")},
	})
	require.NoError(t, err)

	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Maintenance", inv.Items[0].Description)
	assert.True(t, inv.Amount.Equal(d("1000")))
}

func TestInvoice_ReplaceItems_EmptySetZeroesAmount(t *testing.T) {
	inv := newTestInvoice(t, "", nil)

	require.NoError(t, inv.ReplaceItems(nil))

	assert.Empty(t, inv.Items)
	assert.True(t, inv.Amount.IsZero())
}

func TestInvoice_ReplaceItems_InvalidInputLeavesInvoiceUntouched(t *testing.T) {
	inv := newTestInvoice(t, "", nil)

	err := inv.ReplaceItems([]ItemInput{{Description: "", Quantity: d("1"), UnitPrice: d("1")}})
	require.Error(t, err)

	assert.Len(t, inv.Items, 2)
	assert.True(t, inv.Amount.Equal(d("1150")))
}

func TestInvoice_StatusMachine(t *testing.T) {
	t.Run("unpaid to paid", func(t *testing.T) {
		inv := newTestInvoice(t, "", nil)
		require.NoError(t, inv.ApplyStatus(StatusPaid))
		assert.Equal(t, StatusPaid, inv.Status)
	})

	t.Run("overdue to paid", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1)
		inv := newTestInvoice(t, "", &yesterday)
		require.True(t, inv.ReconcileOverdue(time.Now()))
		require.NoError(t, inv.ApplyStatus(StatusPaid))
		assert.Equal(t, StatusPaid, inv.Status)
	})

	t.Run("paid back to unpaid", func(t *testing.T) {
		inv := newTestInvoice(t, StatusPaid, nil)
		require.NoError(t, inv.ApplyStatus(StatusUnpaid))
		assert.Equal(t, StatusUnpaid, inv.Status)
	})

	t.Run("no-op transition is idempotent", func(t *testing.T) {
		inv := newTestInvoice(t, "", nil)
		require.NoError(t, inv.ApplyStatus(StatusUnpaid))
		assert.Equal(t, StatusUnpaid, inv.Status)
	})

	t.Run("overdue is never directly settable", func(t *testing.T) {
		inv := newTestInvoice(t, "", nil)
		err := inv.ApplyStatus(StatusOverdue)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		assert.Equal(t, StatusUnpaid, inv.Status)
	})

	t.Run("arbitrary status is rejected", func(t *testing.T) {
		inv := newTestInvoice(t, "", nil)
		assert.Error(t, inv.ApplyStatus("cancelled"))
	})
}

func TestInvoice_ReconcileOverdue(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	t.Run("past due date flips unpaid to overdue", func(t *testing.T) {
		inv := newTestInvoice(t, "", &yesterday)
		assert.True(t, inv.ReconcileOverdue(now))
		assert.Equal(t, StatusOverdue, inv.Status)
	})

	t.Run("second reconcile is a no-op", func(t *testing.T) {
		inv := newTestInvoice(t, "", &yesterday)
		require.True(t, inv.ReconcileOverdue(now))
		assert.False(t, inv.ReconcileOverdue(now))
		assert.Equal(t, StatusOverdue, inv.Status)
	})

	t.Run("future due date stays unpaid", func(t *testing.T) {
		inv := newTestInvoice(t, "", &tomorrow)
		assert.False(t, inv.ReconcileOverdue(now))
		assert.Equal(t, StatusUnpaid, inv.Status)
	})

	t.Run("no due date stays unpaid", func(t *testing.T) {
		inv := newTestInvoice(t, "", nil)
		assert.False(t, inv.ReconcileOverdue(now))
	})

	t.Run("paid invoice is never reconciled", func(t *testing.T) {
		inv := newTestInvoice(t, StatusPaid, &yesterday)
		assert.False(t, inv.ReconcileOverdue(now))
		assert.Equal(t, StatusPaid, inv.Status)
	})

	t.Run("unpaid reversal re-derives overdue", func(t *testing.T) {
		inv := newTestInvoice(t, StatusPaid, &yesterday)
		inv.MarkUnpaid()
		assert.True(t, inv.ReconcileOverdue(now))
		assert.Equal(t, StatusOverdue, inv.Status)
	})
}
