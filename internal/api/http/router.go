package http

import (
	"net/http"

	"carrental-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter assembles the public site API and the JWT-guarded back office.
func NewRouter(
	bookings *BookingHandler,
	catalog *CatalogHandler,
	auth *AuthHandler,
	images *ImageHandler,
	tokens security.TokenManager,
) *mux.Router {
	r := mux.NewRouter()

	// Public site surface.
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/vehicles", catalog.ListVehicles(true)).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", catalog.GetVehicle).Methods(http.MethodGet)
	api.HandleFunc("/services", catalog.ListServices(true)).Methods(http.MethodGet)
	api.HandleFunc("/locations", catalog.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/bookings", bookings.CreatePublic).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{reference}", bookings.GetByReference).Methods(http.MethodGet)
	api.HandleFunc("/images/{key}", images.Serve).Methods(http.MethodGet)

	// Back office.
	r.HandleFunc("/api/admin/login", auth.Login).Methods(http.MethodPost)

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(AdminAuth(tokens))
	admin.HandleFunc("/bookings", bookings.List).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", bookings.CreateManual).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id:[0-9]+}", bookings.Get).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id:[0-9]+}", bookings.Update).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{id:[0-9]+}/status", bookings.ChangeStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/vehicles", catalog.ListVehicles(false)).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles", catalog.CreateVehicle).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", catalog.UpdateVehicle).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", catalog.DeleteVehicle).Methods(http.MethodDelete)
	admin.HandleFunc("/vehicles/{id:[0-9]+}/image", images.Upload).Methods(http.MethodPost)
	admin.HandleFunc("/services", catalog.ListServices(false)).Methods(http.MethodGet)
	admin.HandleFunc("/services", catalog.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", catalog.UpdateService).Methods(http.MethodPut)

	return r
}
