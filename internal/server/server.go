//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mocks
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/YaminiCharan14/linen/internal/cache"
	"github.com/YaminiCharan14/linen/internal/order"
	"github.com/YaminiCharan14/linen/internal/rejection"
	"github.com/YaminiCharan14/linen/internal/repository"
	"github.com/YaminiCharan14/linen/internal/reservation"
	"github.com/YaminiCharan14/linen/internal/storage"
)

type Storage interface {
	ListOrders(ctx context.Context) ([]order.Order, error)
	SearchOrders(ctx context.Context, filter order.SearchFilter) ([]order.Order, error)
	CreateOrder(ctx context.Context, o order.Order) (*order.Order, error)
	GetOrder(ctx context.Context, id string) (*order.Order, error)
	GetOrderByReference(ctx context.Context, referenceID string) (*order.Order, error)
	UpdateOrder(ctx context.Context, o order.Order) (*order.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	RecordOrderComplete(ctx context.Context, orderID string, completedTime time.Time) error
	IncompleteOrders(ctx context.Context, customerID string) ([]order.Order, error)

	CreateRejectionRequest(ctx context.Context, orderID string, req rejection.CreateRequest) (*rejection.Request, error)
	DeleteRejectionRequest(ctx context.Context, id int64) error
	UpdateRejectionRequestStatus(ctx context.Context, id int64, status rejection.Status) (*rejection.Request, error)
	ListRejections(ctx context.Context, orderID string) ([]rejection.Request, error)

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	CreateTrip(ctx context.Context, t *repository.Trip) (int64, error)
	GetTrip(ctx context.Context, id int64) (*storage.TripDetail, error)
	SearchTrips(ctx context.Context, start, end time.Time, branchID string) ([]*repository.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
	AddVisit(ctx context.Context, v *repository.Visit) (int64, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	storage      Storage
	userRepo     UserRepo
	inventory    reservation.InventoryService
	orderCache   *cache.OrderCache
	branchID     string
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(stg Storage, userRepo UserRepo, inventory reservation.InventoryService, orderCache *cache.OrderCache, branchID string, logger *zap.Logger) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond)
	return &Server{
		storage:      stg,
		userRepo:     userRepo,
		inventory:    inventory,
		orderCache:   orderCache,
		branchID:     branchID,
		logger:       logger,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	log.Println("Server shutdown completed successfully")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(s.auditLogMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/search", s.handleSearchOrders).Methods(http.MethodPost)
	api.HandleFunc("/orders/record/complete", s.handleRecordComplete).Methods(http.MethodPost)
	api.HandleFunc("/orders/customers/{customerId}/incomplete", s.handleIncompleteOrders).Methods(http.MethodGet)

	api.HandleFunc("/orders/leasing-orders/{orderId}/rejection-requests", s.handleListRejections).Methods(http.MethodGet)
	api.HandleFunc("/orders/leasing-orders/{orderId}/rejection-requests", s.handleCreateRejection).Methods(http.MethodPost)
	api.HandleFunc("/orders/leasing-orders/rejection-requests/{id}", s.handleDeleteRejection).Methods(http.MethodDelete)
	api.HandleFunc("/orders/leasing-orders/rejection-requests/{id}/status", s.handleUpdateRejectionStatus).Methods(http.MethodPatch)

	api.HandleFunc("/orders/{id}/reservations", s.handleReserveOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.handleUpdateOrder).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}", s.handleDeleteOrder).Methods(http.MethodDelete)

	api.HandleFunc("/settings/{key}", s.handleGetSetting).Methods(http.MethodGet)
	api.HandleFunc("/settings/{key}", s.handleSetSetting).Methods(http.MethodPut)

	api.HandleFunc("/trips", s.handleSearchTrips).Methods(http.MethodGet)
	api.HandleFunc("/trips", s.handleCreateTrip).Methods(http.MethodPost)
	api.HandleFunc("/trips/{id}", s.handleGetTrip).Methods(http.MethodGet)
	api.HandleFunc("/trips/{id}", s.handleDeleteTrip).Methods(http.MethodDelete)
	api.HandleFunc("/trips/{id}/visits", s.handleAddVisit).Methods(http.MethodPost)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondStorageError maps missing objects to 404, everything else to 500.
func respondStorageError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrObjectNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
