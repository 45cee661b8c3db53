package handler

import (
	"net/http"

	"github.com/Dan9191/home-financing/internal/config"
	"github.com/Dan9191/home-financing/internal/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires public and token-protected routes
func NewRouter(h *Handler, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/token", h.Token).Methods(http.MethodPost)
	r.HandleFunc("/key-rate", h.KeyRate).Methods(http.MethodGet)
	r.HandleFunc("/reference-rate", h.ReferenceRate).Methods(http.MethodGet)

	// Protected routes
	api := r.PathPrefix("/").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg))
	api.HandleFunc("/payments/solve", h.SolvePayment).Methods(http.MethodPost)
	api.HandleFunc("/simulations/buyback", h.SimulateBuyback).Methods(http.MethodPost)
	api.HandleFunc("/simulations/fixed-loan", h.SimulateFixedLoan).Methods(http.MethodPost)
	api.HandleFunc("/simulations/compare", h.Compare).Methods(http.MethodPost)
	api.HandleFunc("/simulations/compare/export", h.ExportComparison).Methods(http.MethodPost)
	api.HandleFunc("/simulations/compare/email", h.EmailComparison).Methods(http.MethodPost)
	return r
}
