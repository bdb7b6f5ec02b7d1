package http

import (
	"net/http"
	"strconv"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/service"
	"carrental-backend/internal/validator"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookings  service.BookingService
	validator *validator.BookingValidator
}

func NewBookingHandler(bookings service.BookingService, v *validator.BookingValidator) *BookingHandler {
	return &BookingHandler{bookings: bookings, validator: v}
}

// adminBookingPayload extends the shared form with the fields only staff may
// set. The public endpoint decodes the bare BookingForm with unknown fields
// rejected, so a public payload carrying totals or an override is a 400
// before any of it reaches the gate.
type adminBookingPayload struct {
	validator.BookingForm
	TotalPriceOverride *int64 `json:"total_price_override"`
	Status             string `json:"status"`
}

type statusPayload struct {
	Status string `json:"status" validate:"required"`
}

// CreatePublic handles POST /api/bookings, the end-user submission path.
func (h *BookingHandler) CreatePublic(w http.ResponseWriter, r *http.Request) {
	var form validator.BookingForm
	if err := decodeJSON(r, &form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	if err := h.validator.ValidatePublic(&form); err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookings.Create(r.Context(), toSubmission(&form, nil, "", false))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// GetByReference handles GET /api/bookings/{reference}, the public
// confirmation lookup.
func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	booking, err := h.bookings.GetByReference(r.Context(), reference)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// CreateManual handles POST /api/admin/bookings. Staff submissions may carry
// an override and an initial status, and skip the strict date-range rule.
func (h *BookingHandler) CreateManual(w http.ResponseWriter, r *http.Request) {
	var payload adminBookingPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	if err := h.validator.ValidateAdmin(&payload.BookingForm); err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookings.Create(r.Context(), toSubmission(&payload.BookingForm, payload.TotalPriceOverride, payload.Status, true))
	if err != nil {
		writeError(w, err)
		return
	}

	if claims := adminFromContext(r.Context()); claims != nil {
		logger.Info("manual booking created", "reference", booking.Reference, "operator", claims.Email)
	}
	writeJSON(w, http.StatusCreated, booking)
}

// Update handles PUT /api/admin/bookings/{id}.
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	var payload adminBookingPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	if err := h.validator.ValidateAdmin(&payload.BookingForm); err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookings.Update(r.Context(), id, toSubmission(&payload.BookingForm, payload.TotalPriceOverride, payload.Status, true))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// ChangeStatus handles PATCH /api/admin/bookings/{id}/status.
func (h *BookingHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	var payload statusPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	booking, err := h.bookings.ChangeStatus(r.Context(), id, domain.BookingStatus(payload.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// Get handles GET /api/admin/bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookings.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// List handles GET /api/admin/bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	bookings, total, err := h.bookings.List(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"total":    total,
	})
}

func toSubmission(form *validator.BookingForm, override *int64, status string, manual bool) *service.BookingSubmission {
	services := make([]domain.ServiceSnapshot, 0, len(form.Services))
	for _, s := range form.Services {
		qty := s.Quantity
		if qty < 1 {
			qty = 1
		}
		services = append(services, domain.ServiceSnapshot{
			ID:              s.ID,
			Name:            s.Name,
			PricePerDay:     s.PricePerDay,
			IsIncluded:      s.IsIncluded,
			QuantityCapable: s.QuantityCapable,
			Quantity:        qty,
		})
	}
	return &service.BookingSubmission{
		VehicleID:          form.VehicleID,
		StartDate:          form.StartDate,
		EndDate:            form.EndDate,
		PickupLocation:     form.PickupLocation,
		DropoffLocation:    form.DropoffLocation,
		Services:           services,
		CustomerName:       form.CustomerName,
		CustomerEmail:      form.CustomerEmail,
		CustomerPhone:      form.CustomerPhone,
		Notes:              form.Notes,
		TotalPriceOverride: override,
		Status:             domain.BookingStatus(status),
		IsManual:           manual,
	}
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

func muxVar(r *http.Request, key string) string {
	return mux.Vars(r)[key]
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 {
		pageSize = int32(v)
	}
	return page, pageSize
}
