package handlers

import (
	"log/slog"
	"net/http"

	"github.com/anuraag-firstaid/storefront/internal/api/middleware"
	"github.com/anuraag-firstaid/storefront/internal/models"
	service "github.com/anuraag-firstaid/storefront/internal/services"
	"github.com/anuraag-firstaid/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactService *service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator.New(),
	}
}

func (h *ContactHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.ContactRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		if err := h.contactService.Submit(r.Context(), &req); err != nil {
			logger.Error("Failed to forward inquiry", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Inquiry forwarded", slog.String("from", req.Email))
		response.Success(w, http.StatusAccepted, nil)
	}
}
