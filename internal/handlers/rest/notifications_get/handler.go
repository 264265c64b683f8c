package notifications_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"brokerage/internal/generated/dto"
	"brokerage/internal/pkg/middlewares/auth"
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

	unreadOnly := false
	if unreadParam := r.URL.Query().Get("unread"); unreadParam != "" {
		parsed, err := strconv.ParseBool(unreadParam)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		unreadOnly = parsed
	}

	notifications, err := h.service.ListNotifications(r.Context(), actor, unreadOnly)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Notification, 0, len(notifications))
	for _, notificationEntity := range notifications {
		response = append(response, dto.Notification{
			ID:        notificationEntity.ID,
			OrderID:   notificationEntity.OrderID,
			Message:   notificationEntity.Message,
			IsRead:    notificationEntity.IsRead,
			CreatedAt: notificationEntity.CreatedAt,
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
