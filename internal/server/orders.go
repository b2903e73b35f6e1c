package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/YaminiCharan14/linen/internal/metrics"
	"github.com/YaminiCharan14/linen/internal/order"
	"github.com/YaminiCharan14/linen/internal/reservation"
)

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.storage.ListOrders(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleSearchOrders(w http.ResponseWriter, r *http.Request) {
	var filter order.SearchFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	orders, err := s.storage.SearchOrders(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var o order.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if o.CustomerID == "" {
		respondError(w, http.StatusBadRequest, "Missing customer id")
		return
	}
	if o.OrderType == "" {
		respondError(w, http.StatusBadRequest, "Missing order type")
		return
	}
	if o.BranchID == "" {
		o.BranchID = s.branchID
	}

	created, err := s.storage.CreateOrder(r.Context(), o)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.orderCache.Set(created)
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	if cached, found := s.orderCache.Get(orderID); found {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	o, err := s.storage.GetOrder(r.Context(), orderID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	s.orderCache.Set(o)
	respondJSON(w, http.StatusOK, o)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var o order.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	o.ID = orderID

	updated, err := s.storage.UpdateOrder(r.Context(), o)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	s.orderCache.Set(updated)
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	if err := s.storage.DeleteOrder(r.Context(), orderID); err != nil {
		respondStorageError(w, err)
		return
	}

	s.orderCache.Delete(orderID)
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order deleted successfully",
	})
}

func (s *Server) handleRecordComplete(w http.ResponseWriter, r *http.Request) {
	var completeRequest struct {
		OrderReferenceID string `json:"orderReferenceId"`
		CompletedTime    string `json:"completedTime"`
	}

	if err := json.NewDecoder(r.Body).Decode(&completeRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if completeRequest.OrderReferenceID == "" {
		respondError(w, http.StatusBadRequest, "Missing order reference id")
		return
	}

	completedTime, err := time.Parse(time.RFC3339, completeRequest.CompletedTime)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid completed time. Use RFC3339")
		return
	}

	o, err := s.storage.GetOrderByReference(r.Context(), completeRequest.OrderReferenceID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	if err := s.storage.RecordOrderComplete(r.Context(), o.ID, completedTime); err != nil {
		respondStorageError(w, err)
		return
	}

	s.orderCache.Delete(o.ID)
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order recorded as complete",
		"id":      o.ID,
	})
}

func (s *Server) handleIncompleteOrders(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	orders, err := s.storage.IncompleteOrders(r.Context(), customerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// handleReserveOrder binds reserved inventory units to a leasing order's
// delivery items: a populate pass per product, then one batch submit.
func (s *Server) handleReserveOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	o, err := s.storage.GetOrder(r.Context(), orderID)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	if o.Leasing == nil || len(o.Leasing.DeliveryItems) == 0 {
		respondError(w, http.StatusBadRequest, "Order has no delivery items to reserve")
		return
	}

	items := make([]reservation.DeliveryItem, len(o.Leasing.DeliveryItems))
	for i, item := range o.Leasing.DeliveryItems {
		items[i] = reservation.DeliveryItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	workflow := reservation.NewWorkflow(s.inventory, o.CustomerID, o.ID, items, s.logger)

	populated := make(map[int64]int, len(items))
	for _, item := range items {
		count, err := workflow.Populate(r.Context(), item.ProductID, item.Quantity)
		if err != nil {
			respondError(w, http.StatusBadGateway, err.Error())
			return
		}
		populated[item.ProductID] = count
	}

	if err := workflow.Reserve(r.Context()); err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	metrics.ReservationsTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Reservation saved",
		"populated": populated,
	})
}
