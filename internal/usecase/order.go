package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/internal/sanitize"
)

// OrderUsecase covers the order lifecycle: checkout, payment and delivery
// transitions, deletion under the role/state rules, and the admin listings.
type OrderUsecase interface {
	Create(ctx context.Context, actor Actor, params CreateOrderParams) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)

	// MarkPaid and MarkDelivered are monotonic: there is no un-pay or
	// un-deliver transition.
	MarkPaid(ctx context.Context, id string, params PaymentResultParams) (*model.Order, error)
	MarkDelivered(ctx context.Context, id string) (*model.Order, error)

	Delete(ctx context.Context, actor Actor, id string) error
	ListMine(ctx context.Context, actor Actor) ([]*model.Order, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
	Summary(ctx context.Context) (*repository.OrderSummary, error)
}

// CreateOrderParams defines the checkout payload.
type CreateOrderParams struct {
	OrderItems      []model.OrderItem
	ShippingAddress model.ShippingAddress
	PaymentMethod   string
	ItemsPrice      float64
	TaxPrice        float64
	ShippingPrice   float64
	TotalPrice      float64
}

// PaymentResultParams carries the payment provider confirmation fields.
// Every field is sanitized before storage.
type PaymentResultParams struct {
	ID           string
	Status       string
	UpdateTime   string
	EmailAddress string
}

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNoOrderItems         = errors.New("no order items")
	ErrOrderDeliveredAdmin  = errors.New("a delivered order can no longer be deleted, even by an admin")
	ErrOrderNotOwned        = errors.New("not authorized to delete this order")
	ErrOrderDeliveredOwner  = errors.New("delivered orders cannot be deleted by their owner")
)

type orderUsecase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderUsecase creates a new instance of OrderUsecase.
func NewOrderUsecase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) OrderUsecase {
	return &orderUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (u *orderUsecase) Create(
	ctx context.Context,
	actor Actor,
	params CreateOrderParams,
) (*model.Order, error) {
	if len(params.OrderItems) == 0 {
		return nil, ErrNoOrderItems
	}

	order, err := u.orderRepo.CreateOrder(ctx, &model.Order{
		UserID:          actor.ID,
		OrderItems:      params.OrderItems,
		ShippingAddress: params.ShippingAddress,
		PaymentMethod:   params.PaymentMethod,
		ItemsPrice:      params.ItemsPrice,
		TaxPrice:        params.TaxPrice,
		ShippingPrice:   params.ShippingPrice,
		TotalPrice:      params.TotalPrice,
	})
	if err != nil {
		return nil, err
	}

	// Stock is decremented without a sufficiency re-check, and is not
	// restored if the order is later deleted.
	for _, item := range params.OrderItems {
		if err := u.productRepo.DecrementStock(ctx, item.ProductID, item.Qty); err != nil {
			return nil, err
		}
	}

	return order, nil
}

func (u *orderUsecase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.loadOrder(ctx, id)
}

func (u *orderUsecase) MarkPaid(
	ctx context.Context,
	id string,
	params PaymentResultParams,
) (*model.Order, error) {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = &model.PaymentResult{
		ID:           sanitize.String(params.ID),
		Status:       sanitize.String(params.Status),
		UpdateTime:   sanitize.String(params.UpdateTime),
		EmailAddress: sanitize.String(params.EmailAddress),
	}

	return u.orderRepo.SaveOrder(ctx, order)
}

func (u *orderUsecase) MarkDelivered(ctx context.Context, id string) (*model.Order, error) {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now

	return u.orderRepo.SaveOrder(ctx, order)
}

// Delete applies the role/state matrix in order; the first matching rule
// wins. A delivered order is immutable for everyone: admins are rejected
// outright, owners are told to contact the shop.
func (u *orderUsecase) Delete(ctx context.Context, actor Actor, id string) error {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return err
	}

	if actor.IsAdmin && order.IsDelivered {
		return ErrOrderDeliveredAdmin
	}

	if order.UserID.Hex() != actor.ID.Hex() && !actor.IsAdmin {
		return ErrOrderNotOwned
	}

	if !actor.IsAdmin && order.IsDelivered {
		return ErrOrderDeliveredOwner
	}

	return u.orderRepo.DeleteOrder(ctx, order.ID.Hex())
}

func (u *orderUsecase) ListMine(ctx context.Context, actor Actor) ([]*model.Order, error) {
	return u.orderRepo.ListOrdersByUser(ctx, actor.ID)
}

func (u *orderUsecase) ListAll(ctx context.Context) ([]*model.Order, error) {
	return u.orderRepo.ListOrders(ctx)
}

func (u *orderUsecase) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	if !sanitize.IsValidObjectID(userID) {
		return nil, ErrInvalidUserID
	}

	objectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	return u.orderRepo.ListOrdersByUser(ctx, objectID)
}

func (u *orderUsecase) Summary(ctx context.Context) (*repository.OrderSummary, error) {
	return u.orderRepo.Summary(ctx)
}

func (u *orderUsecase) loadOrder(ctx context.Context, id string) (*model.Order, error) {
	if !sanitize.IsValidObjectID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}
