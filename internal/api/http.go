// Package api exposes the VDF service over HTTP and gRPC, using a
// versioned gorilla/mux subrouter with CORS and request-logging
// middleware.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/chronosvdf/wesolowski"
	"github.com/chronosvdf/wesolowski/internal/store"
	"github.com/chronosvdf/wesolowski/internal/timelord"
)

// Server wires the challenge store and timelord worker pool into an
// HTTP handler.
type Server struct {
	store   *store.Store
	tl      *timelord.Timelord
	httpSrv *http.Server
}

// NewServer builds an HTTP server listening on addr.
func NewServer(addr string, st *store.Store, tl *timelord.Timelord) *Server {
	s := &Server{store: st, tl: tl}

	router := mux.NewRouter()
	v1 := router.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/health", s.handleHealth).Methods("GET")

	challenges := v1.PathPrefix("/challenges").Subrouter()
	challenges.HandleFunc("", s.handleSubmitChallenge).Methods("POST")
	challenges.HandleFunc("/{id}", s.handleGetChallenge).Methods("GET")
	challenges.HandleFunc("/{id}/verify", s.handleVerifyChallenge).Methods("POST")

	timelordRouter := v1.PathPrefix("/timelord").Subrouter()
	timelordRouter.HandleFunc("", s.handleTimelordStats).Methods("GET")

	router.Use(corsMiddleware)
	router.Use(loggingMiddleware)

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving HTTP until the server is shut down.
func (s *Server) ListenAndServe() error {
	return s.httpSrv.ListenAndServe()
}

type submitChallengeRequest struct {
	ID string `json:"id"`
	T  uint64 `json:"t"`
	X  []byte `json:"x"`
}

type verifyRequest struct {
	Proof *vdf.SerializedProof `json:"proof"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// handleSubmitChallenge accepts a new challenge, persists it, and
// queues it with the timelord worker pool.
func (s *Server) handleSubmitChallenge(w http.ResponseWriter, r *http.Request) {
	var req submitChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request body: %w", err))
		return
	}
	if len(req.X) != vdf.SeedSize {
		writeError(w, http.StatusBadRequest, fmt.Errorf("seed must be %d bytes, got %d", vdf.SeedSize, len(req.X)))
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("id is required"))
		return
	}

	record := &store.Record{
		ID:       req.ID,
		X:        req.X,
		T:        req.T,
		IssuedAt: time.Now().UTC(),
	}
	if err := s.store.Put(record); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if _, err := s.tl.SubmitChallenge(req.ID, record.Unsolved()); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{"id": req.ID, "status": "queued"})
}

func (s *Server) handleGetChallenge(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	record, err := s.store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// handleVerifyChallenge validates a submitted proof against the
// challenge's original parameters, mapping the VDF library's error
// Kinds onto HTTP status codes per the wire-layer contract.
func (s *Server) handleVerifyChallenge(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	record, err := s.store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request body: %w", err))
		return
	}

	param := &vdf.SerializedParameter{X: record.X, T: record.T}
	if err := vdf.VerifySerialized(param, req.Proof); err != nil {
		writeError(w, statusForVDFError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"valid": true})
}

func (s *Server) handleTimelordStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tl.GetStats())
}

// statusForVDFError maps the library's error Kind onto an HTTP status:
// a mismatched challenge is a conflict, a failed relation check is
// unprocessable, and a malformed request is a client error.
func statusForVDFError(err error) int {
	switch {
	case errors.Is(err, vdf.ErrMisMatchedVDF):
		return http.StatusConflict
	case errors.Is(err, vdf.ErrVDFVerifyError):
		return http.StatusUnprocessableEntity
	case errors.Is(err, vdf.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		fmt.Printf("[HTTP] %s %s %v\n", r.Method, r.URL.Path, time.Since(start))
	})
}
