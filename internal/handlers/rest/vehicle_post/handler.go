package vehicle_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"brokerage/internal/generated/dto"
	"brokerage/internal/pkg/middlewares/auth"
	authservice "brokerage/internal/service/auth"
	"brokerage/internal/service/vehicle"
	"brokerage/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var vehicleCreateDTO dto.VehicleCreate
	err := json.NewDecoder(r.Body).Decode(&vehicleCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.Register(r.Context(), actor, vehicle.VehicleCreate{
		DriverID:     vehicleCreateDTO.DriverID,
		LicensePlate: vehicleCreateDTO.LicensePlate,
		CapacityKg:   vehicleCreateDTO.CapacityKg,
	})
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrMissingRequiredFields),
			errors.Is(err, vehicle.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, vehicle.ErrAccessDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, vehicle.ErrDriverNotFound),
			errors.Is(err, authservice.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, vehicle.ErrNotADriver):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, vehicle.ErrPlateTaken),
			errors.Is(err, vehicle.ErrDriverHasVehicle):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Vehicle{
		ID:           created.ID,
		DriverID:     created.DriverID,
		LicensePlate: created.LicensePlate,
		CapacityKg:   created.CapacityKg,
		CreatedAt:    created.CreatedAt,
		UpdatedAt:    created.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
