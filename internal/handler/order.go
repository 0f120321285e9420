package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/payload"
	"github.com/nuraya/storefront-api/internal/usecase"
)

// OrderHandler handles checkout, order lifecycle transitions and the
// admin order listings.
type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
	validate     *validator.Validate
	logger       *zerolog.Logger
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(
	orderUsecase usecase.OrderUsecase,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validate:     validate,
		logger:       logger,
	}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req payload.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "order items and shipping details are required")
		return
	}

	items := make([]model.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		productID, err := bson.ObjectIDFromHex(item.ProductID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid product id in order items")
			return
		}
		items = append(items, model.OrderItem{
			ProductID: productID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Qty:       item.Qty,
			Size:      item.Size,
		})
	}

	order, err := h.orderUsecase.Create(r.Context(), actor, usecase.CreateOrderParams{
		OrderItems: items,
		ShippingAddress: model.ShippingAddress{
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
		ItemsPrice:    req.ItemsPrice,
		TaxPrice:      req.TaxPrice,
		ShippingPrice: req.ShippingPrice,
		TotalPrice:    req.TotalPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoOrderItems):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to create order")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUsecase.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleOrderError(w, err, "failed to load order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req payload.PayOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderUsecase.MarkPaid(r.Context(), chi.URLParam(r, "id"), usecase.PaymentResultParams{
		ID:           req.ID,
		Status:       req.Status,
		UpdateTime:   req.UpdateTime,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		h.handleOrderError(w, err, "failed to mark order as paid")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUsecase.MarkDelivered(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleOrderError(w, err, "failed to mark order as delivered")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	err := h.orderUsecase.Delete(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidOrderID):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, usecase.ErrOrderNotOwned):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, usecase.ErrOrderDeliveredAdmin),
			errors.Is(err, usecase.ErrOrderDeliveredOwner):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to delete order")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeMessage(w, http.StatusOK, "order removed")
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	orders, err := h.orderUsecase.ListMine(r.Context(), actor)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list own orders")
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.ListAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list orders")
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUserID):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to list orders by user")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.orderUsecase.Summary(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build order summary")
		writeError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *OrderHandler) handleOrderError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}
