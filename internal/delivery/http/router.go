package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mensonones/service-pro-api/internal/delivery/http/handler"
	"github.com/mensonones/service-pro-api/internal/delivery/http/middleware"
)

type Router struct {
	router               *mux.Router
	serviceHandler       *handler.ServiceHandler
	profileHandler       *handler.ProfileHandler
	paymentMethodHandler *handler.PaymentMethodHandler
	appointmentHandler   *handler.AppointmentHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	serviceHandler *handler.ServiceHandler,
	profileHandler *handler.ProfileHandler,
	paymentMethodHandler *handler.PaymentMethodHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		serviceHandler:       serviceHandler,
		profileHandler:       profileHandler,
		paymentMethodHandler: paymentMethodHandler,
		appointmentHandler:   appointmentHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Everything else requires an identity-provider token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Service catalog
	protected.HandleFunc("/services", r.serviceHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/services", r.serviceHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id}", r.serviceHandler.Delete).Methods(http.MethodDelete)

	// Profile directory: creation is role-specific, listing is a
	// role-filtered view over the same store
	protected.HandleFunc("/clients", r.profileHandler.CreateClient).Methods(http.MethodPost)
	protected.HandleFunc("/clients", r.profileHandler.ListClients).Methods(http.MethodGet)
	protected.HandleFunc("/providers", r.profileHandler.CreateProvider).Methods(http.MethodPost)
	protected.HandleFunc("/providers", r.profileHandler.ListProviders).Methods(http.MethodGet)
	protected.HandleFunc("/profiles", r.profileHandler.ListAll).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{id}", r.profileHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/{id}", r.profileHandler.Delete).Methods(http.MethodDelete)

	// Payment method registry
	protected.HandleFunc("/payment-methods", r.paymentMethodHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/payment-methods", r.paymentMethodHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/payment-methods/{id}", r.paymentMethodHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/payment-methods/{id}", r.paymentMethodHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/payment-methods/{id}", r.paymentMethodHandler.Delete).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)

	// Administrative bulk actions
	protected.HandleFunc("/appointments/actions/complete", r.appointmentHandler.MarkCompleted).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/actions/cancel", r.appointmentHandler.MarkCancelled).Methods(http.MethodPost)

	// Apply CORS to everything
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
