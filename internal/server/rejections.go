package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/YaminiCharan14/linen/internal/rejection"
)

func (s *Server) handleListRejections(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	requests, err := s.storage.ListRejections(r.Context(), orderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (s *Server) handleCreateRejection(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var req rejection.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ProductID == 0 || req.IssueType == "" || req.RequestedDate == "" {
		respondError(w, http.StatusBadRequest, "Missing productId, issueType or requestedDate")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	created, err := s.storage.CreateRejectionRequest(r.Context(), orderID, req)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteRejection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid rejection request id")
		return
	}

	if err := s.storage.DeleteRejectionRequest(r.Context(), id); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Rejection request deleted",
	})
}

func (s *Server) handleUpdateRejectionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid rejection request id")
		return
	}

	var statusRequest struct {
		Status rejection.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch statusRequest.Status {
	case rejection.StatusPending, rejection.StatusApproved, rejection.StatusResolved:
	default:
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	updated, err := s.storage.UpdateRejectionRequestStatus(r.Context(), id, statusRequest.Status)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
