package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/YaminiCharan14/linen/internal/repository"
)

func (s *Server) handleSearchTrips(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := time.Parse("2006-01-02", query.Get("startDate"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid startDate. Use YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", query.Get("endDate"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid endDate. Use YYYY-MM-DD")
		return
	}

	branchID := query.Get("branchId")
	if branchID == "" {
		branchID = s.branchID
	}

	trips, err := s.storage.SearchTrips(r.Context(), start, end, branchID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, trips)
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var tripRequest struct {
		TripName    string  `json:"tripName"`
		TripNumber  string  `json:"tripNumber"`
		PlannedDate string  `json:"plannedDate"`
		VehicleID   string  `json:"vehicleId"`
		DriverID    *string `json:"driverId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&tripRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if tripRequest.TripName == "" || tripRequest.PlannedDate == "" || tripRequest.VehicleID == "" {
		respondError(w, http.StatusBadRequest, "Missing tripName, plannedDate or vehicleId")
		return
	}

	plannedDate, err := time.Parse("2006-01-02", tripRequest.PlannedDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid plannedDate. Use YYYY-MM-DD")
		return
	}

	trip := &repository.Trip{
		TripName:    tripRequest.TripName,
		TripNumber:  tripRequest.TripNumber,
		PlannedDate: plannedDate,
		VehicleID:   tripRequest.VehicleID,
		DriverID:    tripRequest.DriverID,
		BranchID:    s.branchID,
	}

	id, err := s.storage.CreateTrip(r.Context(), trip)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Trip created successfully",
		"id":      id,
	})
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid trip id")
		return
	}

	detail, err := s.storage.GetTrip(r.Context(), id)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid trip id")
		return
	}

	if err := s.storage.DeleteTrip(r.Context(), id); err != nil {
		respondStorageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Trip deleted successfully",
	})
}

func (s *Server) handleAddVisit(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid trip id")
		return
	}

	var visitRequest struct {
		VisitName   string     `json:"visitName"`
		CustomerID  string     `json:"customerId"`
		OrderID     *string    `json:"orderId"`
		PlannedTime *time.Time `json:"plannedTime"`
	}

	if err := json.NewDecoder(r.Body).Decode(&visitRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if visitRequest.CustomerID == "" {
		respondError(w, http.StatusBadRequest, "Missing customerId")
		return
	}

	visit := &repository.Visit{
		TripID:      tripID,
		VisitName:   visitRequest.VisitName,
		CustomerID:  visitRequest.CustomerID,
		OrderID:     visitRequest.OrderID,
		PlannedTime: visitRequest.PlannedTime,
	}

	id, err := s.storage.AddVisit(r.Context(), visit)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Visit added successfully",
		"id":      id,
	})
}
