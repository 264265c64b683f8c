package vehicles_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"brokerage/internal/generated/dto"
	"brokerage/internal/pkg/middlewares/auth"
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

	vehicles, err := h.service.ListVehicles(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrAccessDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, vehicle.ErrVehicleNotFound):
			// у водителя ещё нет машины
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Vehicle, 0, len(vehicles))
	for _, vehicleEntity := range vehicles {
		response = append(response, dto.Vehicle{
			ID:           vehicleEntity.ID,
			DriverID:     vehicleEntity.DriverID,
			LicensePlate: vehicleEntity.LicensePlate,
			CapacityKg:   vehicleEntity.CapacityKg,
			CreatedAt:    vehicleEntity.CreatedAt,
			UpdatedAt:    vehicleEntity.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
