package order_quote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"brokerage/internal/generated/dto"
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

	quote, err := h.service.QuotePrice(r.Context(), order.OrderCreate{
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
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PriceQuote{
		StartLocation: quote.StartLocation,
		EndLocation:   quote.EndLocation,
		CargoType:     quote.CargoType,
		WeightKg:      quote.WeightKg.String(),
		DistanceKm:    quote.Distance.StringFixed(2),
		Price:         quote.Price.StringFixed(2),
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
