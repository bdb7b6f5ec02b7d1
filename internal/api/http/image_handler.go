package http

import (
	"errors"
	"io"
	"net/http"

	"carrental-backend/internal/service"
	"carrental-backend/internal/storage"

	"github.com/gorilla/mux"
)

// ImageHandler serves fleet photos and accepts back-office uploads.
type ImageHandler struct {
	images service.VehicleImageService
}

func NewImageHandler(images service.VehicleImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload handles POST /api/admin/vehicles/{id}/image. The body is the raw
// image; the type is sniffed server-side, so the Content-Type header is not
// trusted either.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vehicle id"})
		return
	}

	vehicle, err := h.images.UploadVehicleImage(r.Context(), id, r.Body)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotAnImage):
			writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{Error: "not an image"})
		case errors.Is(err, storage.ErrImageTooBig):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "image too large"})
		default:
			writeError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// Serve handles GET /api/images/{key}.
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	file, contentType, err := h.images.OpenImage(r.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
			return
		}
		writeError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
