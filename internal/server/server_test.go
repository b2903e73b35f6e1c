package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/YaminiCharan14/linen/internal/cache"
	"github.com/YaminiCharan14/linen/internal/order"
	"github.com/YaminiCharan14/linen/internal/rejection"
	"github.com/YaminiCharan14/linen/internal/repository"
	"github.com/YaminiCharan14/linen/internal/reservation"
	mock_reservation "github.com/YaminiCharan14/linen/internal/reservation/mocks"
	server_mocks "github.com/YaminiCharan14/linen/internal/server/mocks"
)

func newTestServer(t *testing.T) (*Server, *server_mocks.MockStorage, *mock_reservation.MockInventoryService) {
	ctrl := gomock.NewController(t)
	mockStorage := server_mocks.NewMockStorage(ctrl)
	mockUserRepo := server_mocks.NewMockUserRepo(ctrl)
	mockInventory := mock_reservation.NewMockInventoryService(ctrl)
	srv := New(mockStorage, mockUserRepo, mockInventory, cache.NewOrderCache(nil), "branch-1", zap.NewNop())
	return srv, mockStorage, mockInventory
}

func TestHandleCreateOrder(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	tests := []struct {
		name           string
		requestBody    string
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful creation stamps branch id",
			requestBody: `{
				"orderReferenceId": "ORD-1",
				"customerId": "cust-1",
				"orderType": "WASHING",
				"orderDate": "2026-08-01T00:00:00Z",
				"notes": "",
				"washingOrderDetails": {"pickupDate": null, "deliveryDate": null, "items": []}
			}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o order.Order) (*order.Order, error) {
						assert.Equal(t, "cust-1", o.CustomerID)
						assert.Equal(t, "branch-1", o.BranchID)
						assert.Equal(t, order.TypeWashing, o.OrderType)
						o.ID = "id-1"
						o.Status = "PENDING"
						return &o, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"id-1"`,
		},
		{
			name:           "invalid request body",
			requestBody:    `not json`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"Invalid request body"`,
		},
		{
			name:           "missing customer id",
			requestBody:    `{"orderType": "RENTAL"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"Missing customer id"`,
		},
		{
			name:           "missing order type",
			requestBody:    `{"customerId": "cust-1"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"Missing order type"`,
		},
		{
			name: "storage error",
			requestBody: `{
				"customerId": "cust-1",
				"orderType": "RENTAL",
				"rentalOrderDetails": {"deliveryDate": null, "items": []}
			}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"database error"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			server.handleCreateOrder(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}

func TestHandleGetOrder(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	t.Run("order found and cached", func(t *testing.T) {
		o := &order.Order{
			ID:         "order-1",
			CustomerID: "cust-1",
			OrderType:  order.TypeLeasing,
			Status:     "PENDING",
			Leasing: &order.LeasingDetails{
				LeasingOrderType: order.DeliveryOnly,
				DeliveryItems:    []order.LineItem{{ProductID: 7, Quantity: 2}},
			},
		}
		mockStorage.EXPECT().GetOrder(gomock.Any(), "order-1").Return(o, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		server.handleGetOrder(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"order-1"`)

		// second read is served from cache, no storage expectation set
		req2 := httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
		req2 = mux.SetURLVars(req2, map[string]string{"id": "order-1"})
		rr2 := httptest.NewRecorder()

		server.handleGetOrder(rr2, req2)
		assert.Equal(t, http.StatusOK, rr2.Code)
		assert.Contains(t, rr2.Body.String(), `"id":"order-1"`)
	})

	t.Run("order not found", func(t *testing.T) {
		mockStorage.EXPECT().
			GetOrder(gomock.Any(), "missing").
			Return(nil, repository.ErrObjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		server.handleGetOrder(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleSearchOrders(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mockStorage.EXPECT().
		SearchOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter order.SearchFilter) ([]order.Order, error) {
			require.NotNil(t, filter.StartDate)
			assert.True(t, filter.StartDate.Equal(start))
			assert.Equal(t, order.TypeLeasing, filter.OrderType)
			assert.Equal(t, "cust-1", filter.CustomerID)
			return []order.Order{{ID: "order-1"}}, nil
		})

	body := `{"startDate":"2026-08-01T00:00:00Z","orderType":"LEASING","customerId":"cust-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders/search", strings.NewReader(body))
	rr := httptest.NewRecorder()

	server.handleSearchOrders(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"order-1"`)
}

func TestHandleRecordComplete(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	tests := []struct {
		name           string
		requestBody    string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name:        "successful completion by reference",
			requestBody: `{"orderReferenceId":"ORD-9","completedTime":"2026-08-20T14:30:00Z"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					GetOrderByReference(gomock.Any(), "ORD-9").
					Return(&order.Order{ID: "id-9"}, nil)
				mockStorage.EXPECT().
					RecordOrderComplete(gomock.Any(), "id-9", time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing reference id",
			requestBody:    `{"completedTime":"2026-08-20T14:30:00Z"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid completed time",
			requestBody:    `{"orderReferenceId":"ORD-9","completedTime":"yesterday"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown reference",
			requestBody: `{"orderReferenceId":"ORD-0","completedTime":"2026-08-20T14:30:00Z"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					GetOrderByReference(gomock.Any(), "ORD-0").
					Return(nil, repository.ErrObjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/orders/record/complete", strings.NewReader(tc.requestBody))
			rr := httptest.NewRecorder()

			server.handleRecordComplete(rr, req)
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleCreateRejection(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "quantity below one is coerced",
			requestBody: map[string]interface{}{
				"productId":     int64(7),
				"quantity":      0,
				"issueType":     "DAMAGED",
				"requestedDate": "2026-08-20T00:00:00",
				"requestedBy":   "ops",
			},
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateRejectionRequest(gomock.Any(), "order-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, orderID string, req rejection.CreateRequest) (*rejection.Request, error) {
						assert.Equal(t, 1, req.Quantity)
						assert.Equal(t, rejection.IssueDamaged, req.IssueType)
						return &rejection.Request{ID: 11, Status: rejection.StatusPending}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing issue type",
			requestBody: map[string]interface{}{
				"productId":     int64(7),
				"quantity":      1,
				"requestedDate": "2026-08-20T00:00:00",
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/orders/leasing-orders/order-1/rejection-requests", bytes.NewReader(body))
			req = mux.SetURLVars(req, map[string]string{"orderId": "order-1"})
			rr := httptest.NewRecorder()

			server.handleCreateRejection(rr, req)
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestHandleUpdateRejectionStatus(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	t.Run("valid status transition", func(t *testing.T) {
		mockStorage.EXPECT().
			UpdateRejectionRequestStatus(gomock.Any(), int64(5), rejection.StatusResolved).
			Return(&rejection.Request{ID: 5, Status: rejection.StatusResolved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/leasing-orders/rejection-requests/5/status",
			strings.NewReader(`{"status":"RESOLVED"}`))
		req = mux.SetURLVars(req, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		server.handleUpdateRejectionStatus(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"RESOLVED"`)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/orders/leasing-orders/rejection-requests/5/status",
			strings.NewReader(`{"status":"SHREDDED"}`))
		req = mux.SetURLVars(req, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		server.handleUpdateRejectionStatus(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-numeric id rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/orders/leasing-orders/rejection-requests/abc/status",
			strings.NewReader(`{"status":"RESOLVED"}`))
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		server.handleUpdateRejectionStatus(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleReserveOrder(t *testing.T) {
	server, mockStorage, mockInventory := newTestServer(t)

	t.Run("populates each product then submits one batch", func(t *testing.T) {
		o := &order.Order{
			ID:         "order-1",
			CustomerID: "cust-1",
			OrderType:  order.TypeLeasing,
			Leasing: &order.LeasingDetails{
				LeasingOrderType: order.DeliveryOnly,
				DeliveryItems: []order.LineItem{
					{ProductID: 7, Quantity: 2},
					{ProductID: 8, Quantity: 1},
				},
			},
		}
		mockStorage.EXPECT().GetOrder(gomock.Any(), "order-1").Return(o, nil)

		mockInventory.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", gomock.Any()).
			Return([]reservation.ProductInventory{{
				ProductID: 7,
				InventoryItems: []reservation.InventoryItem{
					{ID: "inv-a"}, {ID: "inv-b"}, {ID: "inv-c"},
				},
			}}, nil)
		mockInventory.EXPECT().
			CustomerInventoryItems(gomock.Any(), "cust-1", gomock.Any()).
			Return([]reservation.ProductInventory{}, nil)

		mockInventory.EXPECT().
			SaveOrderInventoryReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req reservation.Reservation) error {
				assert.Equal(t, "order-1", req.OrderID)
				require.Len(t, req.Items, 2)
				assert.Equal(t, []string{"inv-a", "inv-b"}, req.Items[0].InventoryItemIDs)
				assert.Equal(t, []string{}, req.Items[1].InventoryItemIDs)
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/reservations", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		server.handleReserveOrder(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("order without delivery items", func(t *testing.T) {
		mockStorage.EXPECT().
			GetOrder(gomock.Any(), "order-2").
			Return(&order.Order{ID: "order-2", OrderType: order.TypeRental, Rental: &order.RentalDetails{}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/order-2/reservations", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "order-2"})
		rr := httptest.NewRecorder()

		server.handleReserveOrder(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleCreateTrip(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	tests := []struct {
		name           string
		requestBody    string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name:        "successful trip creation",
			requestBody: `{"tripName":"Morning run","tripNumber":"T-12","plannedDate":"2026-09-01","vehicleId":"veh-3"}`,
			setupMocks: func() {
				mockStorage.EXPECT().
					CreateTrip(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, trip *repository.Trip) (int64, error) {
						assert.Equal(t, "Morning run", trip.TripName)
						assert.Equal(t, "branch-1", trip.BranchID)
						assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), trip.PlannedDate)
						return 42, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing vehicle",
			requestBody:    `{"tripName":"Morning run","plannedDate":"2026-09-01"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad planned date",
			requestBody:    `{"tripName":"Morning run","plannedDate":"01/09/2026","vehicleId":"veh-3"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/api/trips", strings.NewReader(tc.requestBody))
			rr := httptest.NewRecorder()

			server.handleCreateTrip(rr, req)
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestBasicAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStorage := server_mocks.NewMockStorage(ctrl)
	mockUserRepo := server_mocks.NewMockUserRepo(ctrl)
	server := New(mockStorage, mockUserRepo, nil, cache.NewOrderCache(nil), "branch-1", zap.NewNop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := server.basicAuthMiddleware(next)

	t.Run("missing credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
	})

	t.Run("rejected credentials", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ValidateUser(gomock.Any(), "ops", "wrong").
			Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.SetBasicAuth("ops", "wrong")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("accepted credentials", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ValidateUser(gomock.Any(), "ops", "secret").
			Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.SetBasicAuth("ops", "secret")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHandleSettings(t *testing.T) {
	server, mockStorage, _ := newTestServer(t)

	t.Run("get returns stored value", func(t *testing.T) {
		mockStorage.EXPECT().
			GetSetting(gomock.Any(), "branchId").
			Return("branch-1", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/settings/branchId", nil)
		req = mux.SetURLVars(req, map[string]string{"key": "branchId"})
		rr := httptest.NewRecorder()

		server.handleGetSetting(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"value":"branch-1"`)
	})

	t.Run("get of unset key returns empty value", func(t *testing.T) {
		mockStorage.EXPECT().
			GetSetting(gomock.Any(), "coachmarkSeen").
			Return("", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/settings/coachmarkSeen", nil)
		req = mux.SetURLVars(req, map[string]string{"key": "coachmarkSeen"})
		rr := httptest.NewRecorder()

		server.handleGetSetting(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"value":""`)
	})

	t.Run("put stores value", func(t *testing.T) {
		mockStorage.EXPECT().
			SetSetting(gomock.Any(), "coachmarkSeen", "true").
			Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/api/settings/coachmarkSeen",
			strings.NewReader(`{"value": "true"}`))
		req = mux.SetURLVars(req, map[string]string{"key": "coachmarkSeen"})
		rr := httptest.NewRecorder()

		server.handleSetSetting(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("put with invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/settings/coachmarkSeen",
			strings.NewReader(`not json`))
		req = mux.SetURLVars(req, map[string]string{"key": "coachmarkSeen"})
		rr := httptest.NewRecorder()

		server.handleSetSetting(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
