package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"brokerage/internal/entities"
	"brokerage/internal/generated/dto"
	"brokerage/internal/pkg/middlewares/auth"
	authservice "brokerage/internal/service/auth"
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

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	weight, err := decimal.NewFromString(orderCreateDTO.WeightKg)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	details, err := h.service.CreateOrder(r.Context(), actor, order.OrderCreate{
		CargoType:     orderCreateDTO.CargoType,
		WeightKg:      weight,
		StartLocation: orderCreateDTO.StartLocation,
		EndLocation:   orderCreateDTO.EndLocation,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrAccessDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrCustomerNotFound),
			errors.Is(err, authservice.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDetailsDTO(details)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
