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

// UserHandler handles profile, wishlist and admin user management
// requests.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validate    *validator.Validate
	logger      *zerolog.Logger
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(
	userUsecase usecase.UserUsecase,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validate:    validate,
		logger:      logger,
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	profile, err := h.userUsecase.GetProfile(r.Context(), actor)
	if err != nil {
		h.handleUserError(w, err, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req payload.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userUsecase.UpdateProfile(r.Context(), actor, usecase.UpdateProfileParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidName),
			errors.Is(err, usecase.ErrInvalidEmail),
			errors.Is(err, usecase.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to update profile")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list users")
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.userUsecase.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleUserError(w, err, "failed to delete user")
		return
	}

	writeMessage(w, http.StatusOK, "user removed")
}

func (h *UserHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req payload.WishlistAddRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}

	err := h.userUsecase.AddToWishlist(r.Context(), actor, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidProductID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrAlreadyInWishlist):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, usecase.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to add to wishlist")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, "product added to wishlist")
}

func (h *UserHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	err := h.userUsecase.RemoveFromWishlist(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidProductID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to remove from wishlist")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, "product removed from wishlist")
}

func (h *UserHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	products, err := h.userUsecase.GetWishlist(r.Context(), actor)
	if err != nil {
		h.handleUserError(w, err, "failed to load wishlist")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *UserHandler) handleUserError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}
