package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AntonioSertic23/nextup/pkg/manager"
	"github.com/AntonioSertic23/nextup/pkg/storage"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// Server houses all dependencies for the tracker API to work such as loggers, the manager, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.Manager
	validate   *validator.Validate
}

// New creates a new tracker server
func New(logger *zap.SugaredLogger, manager manager.Manager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
		validate:   validator.New(),
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// statusFromError maps the core's error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	var upstream manager.UpstreamError
	switch {
	case errors.Is(err, manager.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// userFrom reads the authenticated user. Authentication itself happens in
// front of this service; the header is trusted here.
func userFrom(r *http.Request) (string, error) {
	user := r.Header.Get("X-User-ID")
	if user == "" {
		return "", fmt.Errorf("missing X-User-ID header")
	}
	return user, nil
}

// tokenFrom reads the user's catalog bearer token, when present.
func tokenFrom(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/search", s.SearchShows()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{id}", s.GetShowDetail()).Methods(http.MethodGet)
	v1.HandleFunc("/shows/{id}/episodes/mark", s.MarkEpisodes()).Methods(http.MethodPost)
	v1.HandleFunc("/shows/{id}/episodes/unmark", s.UnmarkEpisodes()).Methods(http.MethodPost)

	v1.HandleFunc("/watchlist", s.GetWatchlist()).Methods(http.MethodGet)
	v1.HandleFunc("/watchlist/detail", s.GetWatchlistDetail()).Methods(http.MethodGet)
	v1.HandleFunc("/watchlist", s.AddToWatchlist()).Methods(http.MethodPost)
	v1.HandleFunc("/watchlist/{showId}", s.RemoveFromWatchlist()).Methods(http.MethodDelete)

	v1.HandleFunc("/sync", s.SyncAccount()).Methods(http.MethodPost)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-User-ID"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
