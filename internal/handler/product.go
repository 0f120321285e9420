package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/payload"
	"github.com/nuraya/storefront-api/internal/sanitize"
	"github.com/nuraya/storefront-api/internal/usecase"
)

// ProductHandler handles catalog browsing, product reviews and the admin
// product CRUD.
type ProductHandler struct {
	catalogUsecase usecase.CatalogUsecase
	reviewUsecase  usecase.ReviewUsecase
	validate       *validator.Validate
	logger         *zerolog.Logger
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(
	catalogUsecase usecase.CatalogUsecase,
	reviewUsecase usecase.ReviewUsecase,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *ProductHandler {
	return &ProductHandler{
		catalogUsecase: catalogUsecase,
		reviewUsecase:  reviewUsecase,
		validate:       validate,
		logger:         logger,
	}
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := sanitize.QueryParams(r.URL.Query())

	page, err := h.catalogUsecase.Search(r.Context(), params)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to search products")
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogUsecase.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleProductError(w, err, "failed to load product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Top(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.Top(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load top products")
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.Suggestions(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load product suggestions")
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req payload.CreateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "all product fields are required")
		return
	}

	product, err := h.catalogUsecase.Create(r.Context(), actor, usecase.CreateProductParams{
		Name:         req.Name,
		Price:        req.Price,
		Image:        req.Image,
		Brand:        req.Brand,
		Category:     req.Category,
		Description:  req.Description,
		CountInStock: req.CountInStock,
		Images:       req.Images,
		Variations:   toVariations(req.Variations),
	})
	if err != nil {
		h.handleProductError(w, err, "failed to create product")
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalogUsecase.Update(r.Context(), chi.URLParam(r, "id"), usecase.UpdateProductParams{
		Name:         req.Name,
		Price:        req.Price,
		Image:        req.Image,
		Brand:        req.Brand,
		Category:     req.Category,
		Description:  req.Description,
		CountInStock: req.CountInStock,
		Images:       req.Images,
		Variations:   toVariations(req.Variations),
	})
	if err != nil {
		h.handleProductError(w, err, "failed to update product")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUsecase.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleProductError(w, err, "failed to delete product")
		return
	}

	writeMessage(w, http.StatusOK, "product removed")
}

func (h *ProductHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req payload.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.reviewUsecase.Create(r.Context(), actor, chi.URLParam(r, "id"), usecase.ReviewParams{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.handleReviewError(w, err, "failed to create review")
		return
	}

	writeMessage(w, http.StatusCreated, "review added")
}

func (h *ProductHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req payload.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.reviewUsecase.Update(r.Context(), actor, chi.URLParam(r, "id"), usecase.ReviewParams{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.handleReviewError(w, err, "failed to update review")
		return
	}

	writeMessage(w, http.StatusOK, "review updated")
}

func (h *ProductHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	err := h.reviewUsecase.Delete(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.handleReviewError(w, err, "failed to delete review")
		return
	}

	writeMessage(w, http.StatusOK, "review removed")
}

func (h *ProductHandler) handleProductError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidStock):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrProductNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}

func (h *ProductHandler) handleReviewError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrProductNotFound),
		errors.Is(err, usecase.ErrReviewNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrAlreadyReviewed):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}

func toVariations(payloads []payload.VariationPayload) []model.Variation {
	if payloads == nil {
		return nil
	}

	variations := make([]model.Variation, 0, len(payloads))
	for _, v := range payloads {
		variations = append(variations, model.Variation{
			Name:    v.Name,
			Options: v.Options,
		})
	}
	return variations
}
