package signup_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"brokerage/internal/entities"
	"brokerage/internal/generated/dto"
	"brokerage/internal/service/auth"
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
	var signUpDTO dto.SignUpRequest
	err := json.NewDecoder(r.Body).Decode(&signUpDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createdUser, err := h.service.SignUp(r.Context(), auth.SignUp{
		Email:     signUpDTO.Email,
		Password:  signUpDTO.Password,
		FirstName: signUpDTO.FirstName,
		LastName:  signUpDTO.LastName,
		Role:      entities.RoleType(signUpDTO.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrRoleNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, auth.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.User{
		ID:        createdUser.ID,
		Email:     createdUser.Email,
		FirstName: createdUser.FirstName,
		LastName:  createdUser.LastName,
		Role:      createdUser.Role.String(),
		CreatedAt: createdUser.CreatedAt,
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
