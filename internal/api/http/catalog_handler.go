package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListVehicles handles GET /api/vehicles (public: available only) and
// GET /api/admin/vehicles (all).
func (h *CatalogHandler) ListVehicles(onlyAvailable bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := pagination(r)
		vehicles, total, err := h.catalog.ListVehicles(r.Context(), onlyAvailable, page, pageSize)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"vehicles": vehicles,
			"total":    total,
		})
	}
}

// GetVehicle handles GET /api/vehicles/{id}.
func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vehicle id"})
		return
	}
	vehicle, err := h.catalog.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// CreateVehicle handles POST /api/admin/vehicles.
func (h *CatalogHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	if v.Name == "" || v.Slug == "" || v.PricePerDay <= 0 {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "name, slug and a positive price_per_day are required"})
		return
	}
	if err := h.catalog.AddVehicle(r.Context(), &v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// UpdateVehicle handles PUT /api/admin/vehicles/{id}.
func (h *CatalogHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vehicle id"})
		return
	}
	var v domain.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	if v.PricePerDay <= 0 {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "price_per_day must be positive"})
		return
	}
	v.ID = id
	if err := h.catalog.UpdateVehicle(r.Context(), &v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// DeleteVehicle handles DELETE /api/admin/vehicles/{id}.
func (h *CatalogHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vehicle id"})
		return
	}
	if err := h.catalog.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// ListServices handles GET /api/services (public: active only) and
// GET /api/admin/services (all).
func (h *CatalogHandler) ListServices(activeOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			services []domain.AdditionalService
			err      error
		)
		if activeOnly {
			services, err = h.catalog.ListActiveServices(r.Context())
		} else {
			services, err = h.catalog.ListAllServices(r.Context())
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"services": services})
	}
}

// CreateService handles POST /api/admin/services.
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var svc domain.AdditionalService
	if err := decodeJSON(r, &svc); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	if svc.ID == "" || svc.Name == "" || svc.PricePerDay < 0 {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "id, name and a non-negative price_per_day are required"})
		return
	}
	if err := h.catalog.AddService(r.Context(), &svc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// UpdateService handles PUT /api/admin/services/{id}.
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var svc domain.AdditionalService
	if err := decodeJSON(r, &svc); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}
	svc.ID = muxVar(r, "id")
	if svc.ID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid service id"})
		return
	}
	if err := h.catalog.UpdateService(r.Context(), &svc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// ListLocations handles GET /api/locations.
func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.catalog.ListLocations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}
