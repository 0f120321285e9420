package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/nuraya/storefront-api/internal/payload"
	"github.com/nuraya/storefront-api/internal/usecase"
)

// NewsletterHandler handles newsletter subscriptions and the contact
// form.
type NewsletterHandler struct {
	newsletterUsecase usecase.NewsletterUsecase
	contactUsecase    usecase.ContactUsecase
	validate          *validator.Validate
	logger            *zerolog.Logger
}

// NewNewsletterHandler creates a new instance of NewsletterHandler.
func NewNewsletterHandler(
	newsletterUsecase usecase.NewsletterUsecase,
	contactUsecase usecase.ContactUsecase,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUsecase: newsletterUsecase,
		contactUsecase:    contactUsecase,
		validate:          validate,
		logger:            logger,
	}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req payload.SubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.newsletterUsecase.Subscribe(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrAlreadySubscribed):
			writeError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to subscribe email")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusCreated, "subscribed to newsletter")
}

func (h *NewsletterHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.newsletterUsecase.Subscribers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list subscribers")
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, subscribers)
}

func (h *NewsletterHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req payload.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name, email, subject and message are required")
		return
	}

	err := h.contactUsecase.Send(r.Context(), usecase.ContactParams{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to relay contact message")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, "message sent")
}
