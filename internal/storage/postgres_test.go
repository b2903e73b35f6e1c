package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaminiCharan14/linen/internal/order"
	"github.com/YaminiCharan14/linen/internal/repository"
)

func TestOrderRowRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	pickupDate := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		order order.Order
	}{
		{
			name: "leasing order keeps both item lists in position",
			order: order.Order{
				ID:               "id-1",
				OrderReferenceID: "ORD-1",
				CustomerID:       "cust-1",
				OrderType:        order.TypeLeasing,
				BranchID:         "branch-1",
				OrderDate:        now,
				Status:           "PENDING",
				Leasing: &order.LeasingDetails{
					LeasingOrderType: order.Both,
					PickupDate:       &pickupDate,
					PickupItems: []order.LineItem{
						{ProductID: 7, Quantity: 2},
						{ProductID: 9, Quantity: 1, Remarks: "torn"},
					},
					DeliveryItems: []order.LineItem{
						{ProductID: 7, Quantity: 2},
					},
				},
			},
		},
		{
			name: "rental order carries rental duration",
			order: order.Order{
				ID:         "id-2",
				CustomerID: "cust-2",
				OrderType:  order.TypeRental,
				BranchID:   "branch-1",
				OrderDate:  now,
				Status:     "PENDING",
				Rental: &order.RentalDetails{
					Items: []order.LineItem{
						{ProductID: 3, Quantity: 5, RentalDuration: 14},
					},
				},
			},
		},
		{
			name: "washing order uses the flat list",
			order: order.Order{
				ID:         "id-3",
				CustomerID: "cust-3",
				OrderType:  order.TypeWashing,
				BranchID:   "branch-1",
				OrderDate:  now,
				Status:     "PENDING",
				Washing: &order.WashingDetails{
					PickupDate: &pickupDate,
					Items: []order.LineItem{
						{ProductID: 4, Quantity: 30},
					},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, items := orderToRow(&tc.order, now, now)
			got := rowToOrder(row, items)
			assert.Equal(t, tc.order, got)
		})
	}
}

func TestOrderToRowSplitsListKinds(t *testing.T) {
	o := order.Order{
		ID:        "id-1",
		OrderType: order.TypeLeasing,
		Leasing: &order.LeasingDetails{
			LeasingOrderType: order.Both,
			PickupItems:      []order.LineItem{{ProductID: 1, Quantity: 1}},
			DeliveryItems:    []order.LineItem{{ProductID: 2, Quantity: 3}},
		},
	}

	now := time.Now().UTC()
	row, items := orderToRow(&o, now, now)

	require.NotNil(t, row.LeasingOrderType)
	assert.Equal(t, "BOTH", *row.LeasingOrderType)
	require.Len(t, items, 2)
	assert.Equal(t, repository.ListKindPickup, items[0].ListKind)
	assert.Equal(t, repository.ListKindDelivery, items[1].ListKind)
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, 0, items[1].Position)
}

func TestOrderToRowDropsMismatchedDetailBlock(t *testing.T) {
	o := order.Order{
		ID:         "id-1",
		CustomerID: "cust-1",
		OrderType:  order.TypeRental,
		Leasing: &order.LeasingDetails{
			LeasingOrderType: order.Both,
			PickupItems:      []order.LineItem{{ProductID: 1, Quantity: 1}},
			DeliveryItems:    []order.LineItem{{ProductID: 2, Quantity: 3}},
		},
	}

	now := time.Now().UTC()
	row, items := orderToRow(&o, now, now)

	assert.Nil(t, row.LeasingOrderType)
	assert.Empty(t, items)
}

func TestRowToRejectionFormatsRequestedDate(t *testing.T) {
	row := &repository.RejectionRequest{
		ID:            5,
		OrderID:       "order-1",
		ProductID:     7,
		Quantity:      2,
		IssueType:     "OTHERS",
		RequestedDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Remarks:       "zipper broke",
		Images:        []string{"https://files/a.jpg"},
		Status:        "PENDING",
	}

	got := rowToRejection(row)
	assert.Equal(t, "2026-08-20T00:00:00", got.RequestedDate)
	assert.Equal(t, "zipper broke", got.Remarks)
}
