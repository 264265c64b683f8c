package order_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"brokerage/internal/entities"
	"brokerage/internal/generated/dto"
	"brokerage/internal/pkg/middlewares/auth"
	authservice "brokerage/internal/service/auth"
	"brokerage/internal/service/order"
	vehicleservice "brokerage/internal/service/vehicle"
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

	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var assignDTO dto.AssignRequest
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.AssignDriverAndVehicle(r.Context(), actor, orderID, assignDTO.DriverID, assignDTO.VehicleID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrAccessDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrDriverNotFound),
			errors.Is(err, order.ErrVehicleNotFound),
			errors.Is(err, vehicleservice.ErrVehicleNotFound),
			errors.Is(err, authservice.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrNotADriver),
			errors.Is(err, order.ErrVehicleDriverMismatch):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	return dto.Order{
		ID:         orderEntity.ID,
		CustomerID: orderEntity.CustomerID,
		DriverID:   orderEntity.DriverID,
		VehicleID:  orderEntity.VehicleID,
		Status:     orderEntity.Status.String(),
		StatusID:   orderEntity.Status.StatusID(),
		Price:      orderEntity.Price.StringFixed(2),
		CreatedAt:  orderEntity.CreatedAt,
	}
}
