package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"brokerage/internal/entities"
	"brokerage/internal/generated/dto"
	"brokerage/internal/pkg/middlewares/auth"
	"brokerage/internal/service/order"
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

	details, err := h.service.GetOrder(r.Context(), actor, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrAccessDenied):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDetailsDTO(details)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDetailsDTO(details *entities.OrderDetails) dto.OrderDetails {
	return dto.OrderDetails{
		Order: dto.Order{
			ID:         details.Order.ID,
			CustomerID: details.Order.CustomerID,
			DriverID:   details.Order.DriverID,
			VehicleID:  details.Order.VehicleID,
			Status:     details.Order.Status.String(),
			StatusID:   details.Order.Status.StatusID(),
			Price:      details.Order.Price.StringFixed(2),
			CreatedAt:  details.Order.CreatedAt,
		},
		Route: dto.Route{
			ID:            details.Route.ID,
			OrderID:       details.Route.OrderID,
			StartLocation: details.Route.StartLocation,
			EndLocation:   details.Route.EndLocation,
			DistanceKm:    details.Route.Distance.StringFixed(2),
			EstimatedTime: details.Route.EstimatedTime,
		},
		Cargo: dto.Cargo{
			ID:        details.Cargo.ID,
			OrderID:   details.Cargo.OrderID,
			CargoType: details.Cargo.Type,
			WeightKg:  details.Cargo.WeightKg.String(),
		},
	}
}
