package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/manager"
)

type episodesRequest struct {
	EpisodeIDs []string `json:"episodeIds" validate:"required,min=1,dive,required"`
}

type episodesOperation func(ctx context.Context, userID, token, showID string, episodeIDs []string) (*manager.Progress, error)

// SearchShows proxies the upstream catalog search
func (s Server) SearchShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		resp, err := s.manager.SearchShows(r.Context(), tokenFrom(r), r.URL.Query().Get("query"), params)
		if err != nil {
			log.Warnw("search failed", "error", err)
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: resp})
	}
}

// GetShowDetail returns a show with its seasons, episodes and the user's
// progress. The identifier may be any external id the catalog knows.
func (s Server) GetShowDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		user, err := userFrom(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		detail, err := s.manager.GetShowDetail(r.Context(), user, mux.Vars(r)["id"])
		if err != nil {
			log.Warnw("failed to get show detail", "error", err)
			writeErrorResponse(w, statusFromError(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: detail})
	}
}

// MarkEpisodes marks episodes watched and returns the updated aggregate. A
// 502 response means the change committed locally but the upstream push
// failed; retrying is safe.
func (s Server) MarkEpisodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.handleEpisodesRequest(w, r, s.manager.MarkEpisodes)
	}
}

// UnmarkEpisodes removes watch events and returns the updated aggregate
func (s Server) UnmarkEpisodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.handleEpisodesRequest(w, r, s.manager.UnmarkEpisodes)
	}
}

func (s Server) handleEpisodesRequest(w http.ResponseWriter, r *http.Request, apply episodesOperation) {
	log := logger.FromCtx(r.Context())

	user, err := userFrom(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}

	var req episodesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err)
		return
	}

	progress, err := apply(r.Context(), user, tokenFrom(r), mux.Vars(r)["id"], req.EpisodeIDs)
	if err != nil {
		log.Warnw("failed to update watch state", "error", err)
		writeErrorResponse(w, statusFromError(err), err)
		return
	}

	writeResponse(w, http.StatusOK, GenericResponse{Response: progress})
}
