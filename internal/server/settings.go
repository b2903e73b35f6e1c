package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// Session settings kept server side: the active branch id, one-time
// coachmark flags. Unset keys read back as an empty value.
func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	value, err := s.storage.GetSetting(r.Context(), key)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"key": key, "value": value})
}

func (s *Server) handleSetSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.storage.SetSetting(r.Context(), key, req.Value); err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"key": key, "value": req.Value})
}
