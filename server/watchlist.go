package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AntonioSertic23/nextup/pkg/logger"
)

type addShowRequest struct {
	ShowID string `json:"showId" validate:"required"`
}

// GetWatchlist returns the user's aggregate rows, sortable via query params
func (s Server) GetWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		user, err := userFrom(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		qp := r.URL.Query()
		entries, err := s.manager.GetWatchlist(r.Context(), user, qp.Get("sortBy"), qp.Get("order"))
		if err != nil {
			log.Warnw("failed to list watchlist", "error", err)
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: entries})
	}
}

// GetWatchlistDetail returns the watchlist enriched with season payloads
func (s Server) GetWatchlistDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		user, err := userFrom(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		items, err := s.manager.GetWatchlistDetail(r.Context(), user)
		if err != nil {
			log.Warnw("failed to build watchlist detail", "error", err)
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: items})
	}
}

// AddToWatchlist puts a show on the user's default list
func (s Server) AddToWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		user, err := userFrom(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		var req addShowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		row, err := s.manager.AddShow(r.Context(), user, req.ShowID)
		if err != nil {
			log.Warnw("failed to add show", "show", req.ShowID, "error", err)
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: row})
	}
}

// RemoveFromWatchlist drops the membership row; watch history is retained
func (s Server) RemoveFromWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		user, err := userFrom(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		if err := s.manager.RemoveShow(r.Context(), user, mux.Vars(r)["showId"]); err != nil {
			log.Warnw("failed to remove show", "error", err)
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "removed"})
	}
}

// SyncAccount runs the full-account sync. Per-show failures are reported in
// the response counts and logged, never as a failed request.
func (s Server) SyncAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		user, err := userFrom(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		result, err := s.manager.SyncAccount(r.Context(), user, tokenFrom(r))
		if err != nil {
			log.Warnw("account sync failed", "error", err)
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: result})
	}
}
