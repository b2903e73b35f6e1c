package reservation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/YaminiCharan14/linen/internal/reservation"
	mock_reservation "github.com/YaminiCharan14/linen/internal/reservation/mocks"
)

var deliveryItems = []reservation.DeliveryItem{
	{ProductID: 7, ProductName: "Bed Sheet", Quantity: 3},
	{ProductID: 8, ProductName: "Pillow Case", Quantity: 2},
}

func newWorkflow(t *testing.T) (*reservation.Workflow, *mock_reservation.MockInventoryService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inv := mock_reservation.NewMockInventoryService(ctrl)
	w := reservation.NewWorkflow(inv, "cust-1", "order-1", deliveryItems, zap.NewNop())
	return w, inv
}

func inventoryOf(ids ...string) []reservation.ProductInventory {
	items := make([]reservation.InventoryItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, reservation.InventoryItem{ID: id})
	}
	return []reservation.ProductInventory{{ProductID: 7, InventoryItems: items}}
}

func TestPopulate(t *testing.T) {
	t.Run("records fewer ids than requested when stock is short", func(t *testing.T) {
		w, inv := newWorkflow(t)

		inv.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", []reservation.InventoryFilter{
				{ProductID: 7, Status: reservation.StatusReserved, Quantity: 3},
			}).
			Return(inventoryOf("inv-1", "inv-2"), nil)

		count, err := w.Populate(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		populated, ok := w.PopulatedQuantity(7)
		assert.True(t, ok)
		assert.Equal(t, 2, populated)
	})

	t.Run("truncates surplus ids to the requested quantity", func(t *testing.T) {
		w, inv := newWorkflow(t)

		inv.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", gomock.Any()).
			Return(inventoryOf("inv-1", "inv-2", "inv-3", "inv-4"), nil)

		count, err := w.Populate(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("repopulating overwrites, not accumulates", func(t *testing.T) {
		w, inv := newWorkflow(t)

		inv.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", gomock.Any()).
			Return(inventoryOf("inv-1", "inv-2"), nil)
		inv.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", gomock.Any()).
			Return(inventoryOf("inv-9"), nil)

		_, err := w.Populate(context.Background(), 7, 3)
		require.NoError(t, err)
		_, err = w.Populate(context.Background(), 7, 3)
		require.NoError(t, err)

		populated, _ := w.PopulatedQuantity(7)
		assert.Equal(t, 1, populated)
	})

	t.Run("fails fast without a customer and makes no call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inv := mock_reservation.NewMockInventoryService(ctrl)
		w := reservation.NewWorkflow(inv, "", "order-1", deliveryItems, zap.NewNop())

		_, err := w.Populate(context.Background(), 7, 3)
		assert.ErrorIs(t, err, reservation.ErrNoCustomer)
	})

	t.Run("lookup failure leaves no recorded count", func(t *testing.T) {
		w, inv := newWorkflow(t)
		inv.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", gomock.Any()).
			Return(nil, errors.New("inventory down"))

		_, err := w.Populate(context.Background(), 7, 3)
		require.Error(t, err)
		_, ok := w.PopulatedQuantity(7)
		assert.False(t, ok)
	})
}

func TestReserve(t *testing.T) {
	t.Run("carries populated ids and full request quantities", func(t *testing.T) {
		w, inv := newWorkflow(t)

		inv.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", gomock.Any()).
			Return(inventoryOf("inv-1", "inv-2"), nil)
		_, err := w.Populate(context.Background(), 7, 3)
		require.NoError(t, err)

		inv.EXPECT().
			SaveOrderInventoryReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reservation.Reservation) error {
				assert.Equal(t, "order-1", req.OrderID)
				require.Len(t, req.Items, 2)
				// populated product keeps its ids, quantity stays the requested 3
				assert.Equal(t, reservation.Entry{
					ProductID: 7, Quantity: 3,
					InventoryItemIDs: []string{"inv-1", "inv-2"},
				}, req.Items[0])
				// never-populated product goes out with an empty list
				assert.Equal(t, reservation.Entry{
					ProductID: 8, Quantity: 2,
					InventoryItemIDs: []string{},
				}, req.Items[1])
				return nil
			})

		require.NoError(t, w.Reserve(context.Background()))
	})

	t.Run("failed submit keeps populated state for retry", func(t *testing.T) {
		w, inv := newWorkflow(t)

		inv.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", gomock.Any()).
			Return(inventoryOf("inv-1"), nil)
		_, err := w.Populate(context.Background(), 7, 3)
		require.NoError(t, err)

		inv.EXPECT().
			SaveOrderInventoryReservation(gomock.Any(), gomock.Any()).
			Return(errors.New("conflict"))

		require.Error(t, w.Reserve(context.Background()))

		populated, ok := w.PopulatedQuantity(7)
		assert.True(t, ok)
		assert.Equal(t, 1, populated)
	})

	t.Run("requires an order id and delivery items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inv := mock_reservation.NewMockInventoryService(ctrl)

		w := reservation.NewWorkflow(inv, "cust-1", "", deliveryItems, zap.NewNop())
		assert.ErrorIs(t, w.Reserve(context.Background()), reservation.ErrNothingToReserve)

		w = reservation.NewWorkflow(inv, "cust-1", "order-1", nil, zap.NewNop())
		assert.ErrorIs(t, w.Reserve(context.Background()), reservation.ErrNothingToReserve)
	})
}
