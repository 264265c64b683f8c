package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	var statusUpdateDTO dto.StatusUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), actor, orderID, order.StatusUpdate{
		StatusID:  statusUpdateDTO.StatusID,
		Latitude:  statusUpdateDTO.Latitude,
		Longitude: statusUpdateDTO.Longitude,
		Comment:   statusUpdateDTO.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatusID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrAccessDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrStatusNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:         updated.ID,
		CustomerID: updated.CustomerID,
		DriverID:   updated.DriverID,
		VehicleID:  updated.VehicleID,
		Status:     updated.Status.String(),
		StatusID:   updated.Status.StatusID(),
		Price:      updated.Price.StringFixed(2),
		CreatedAt:  updated.CreatedAt,
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
