package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/nuraya/storefront-api/internal/payload"
	"github.com/nuraya/storefront-api/internal/usecase"
)

// AuthHandler handles registration, login, verification and password
// reset requests.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validate    *validator.Validate
	logger      *zerolog.Logger
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validate:    validate,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Birthday: req.Birthday,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidName),
			errors.Is(err, usecase.ErrInvalidEmail),
			errors.Is(err, usecase.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			writeError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to register user")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusCreated, "verification code sent to your email")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, usecase.ErrUserNotVerified):
			writeError(w, http.StatusUnauthorized, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to log in user")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req payload.VerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email and code are required")
		return
	}

	if err := h.authUsecase.Verify(r.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrInvalidVerification):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to verify account")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, "account verified")
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req payload.ForgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.authUsecase.ForgotPassword(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to start password reset")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, "password reset email sent")
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req payload.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}

	token := chi.URLParam(r, "token")
	if err := h.authUsecase.ResetPassword(r.Context(), token, req.Password); err != nil {
		switch {
		case errors.Is(err, usecase.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrInvalidResetToken):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to reset password")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, "password has been reset")
}
