package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		skipRequestBody := strings.Contains(contentType, "multipart/form-data")
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		if vars := mux.Vars(r); vars != nil {
			if orderID, ok := vars["orderId"]; ok {
				entry.OrderID = orderID
			} else if strings.Contains(r.URL.Path, "/orders/") {
				entry.OrderID = vars["id"]
			}
		}

		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.Contains(path, "/rejection-requests"):
		switch method {
		case http.MethodPost:
			return "handleCreateRejection"
		case http.MethodDelete:
			return "handleDeleteRejection"
		case http.MethodPatch:
			return "handleUpdateRejectionStatus"
		default:
			return "handleListRejections"
		}
	case strings.HasSuffix(path, "/reservations"):
		return "handleReserveOrder"
	case strings.HasSuffix(path, "/record/complete"):
		return "handleRecordComplete"
	case strings.HasSuffix(path, "/incomplete"):
		return "handleIncompleteOrders"
	case strings.HasSuffix(path, "/orders/search"):
		return "handleSearchOrders"
	case strings.Contains(path, "/settings/"):
		if method == http.MethodPut {
			return "handleSetSetting"
		}
		return "handleGetSetting"
	case strings.Contains(path, "/trips"):
		switch {
		case strings.HasSuffix(path, "/visits"):
			return "handleAddVisit"
		case method == http.MethodPost:
			return "handleCreateTrip"
		case method == http.MethodDelete:
			return "handleDeleteTrip"
		case strings.HasSuffix(path, "/trips"):
			return "handleSearchTrips"
		default:
			return "handleGetTrip"
		}
	case strings.Contains(path, "/orders"):
		switch method {
		case http.MethodPost:
			return "handleCreateOrder"
		case http.MethodPut:
			return "handleUpdateOrder"
		case http.MethodDelete:
			return "handleDeleteOrder"
		case http.MethodGet:
			if strings.HasSuffix(path, "/orders") {
				return "handleListOrders"
			}
			return "handleGetOrder"
		}
	}

	return "unknown"
}
