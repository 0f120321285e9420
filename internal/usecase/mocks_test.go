package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/config"
	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		FrontendURL:  "http://localhost:5173",
		ContactInbox: "shop@example.com",
	}
}

// mockUserRepository is a mock implementation of repository.UserRepository.
type mockUserRepository struct {
	CreateUserFunc            func(ctx context.Context, user *model.User) (*model.User, error)
	GetUserFunc               func(ctx context.Context, id string) (*model.User, error)
	GetUserByEmailFunc        func(ctx context.Context, email string) (*model.User, error)
	GetUserByVerificationFunc func(ctx context.Context, email, code string, now time.Time) (*model.User, error)
	GetUserByResetTokenFunc   func(ctx context.Context, token string, now time.Time) (*model.User, error)
	SaveUserFunc              func(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUserFunc            func(ctx context.Context, id string) (*model.User, error)
	ListUsersFunc             func(ctx context.Context) ([]*model.User, error)
	ListUsersWithBirthdayFunc func(ctx context.Context, month time.Month, day int) ([]*model.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) GetUserByVerification(
	ctx context.Context,
	email, code string,
	now time.Time,
) (*model.User, error) {
	if m.GetUserByVerificationFunc != nil {
		return m.GetUserByVerificationFunc(ctx, email, code, now)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) GetUserByResetToken(
	ctx context.Context,
	token string,
	now time.Time,
) (*model.User, error) {
	if m.GetUserByResetTokenFunc != nil {
		return m.GetUserByResetTokenFunc(ctx, token, now)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	if m.SaveUserFunc != nil {
		return m.SaveUserFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListUsersWithBirthday(
	ctx context.Context,
	month time.Month,
	day int,
) ([]*model.User, error) {
	if m.ListUsersWithBirthdayFunc != nil {
		return m.ListUsersWithBirthdayFunc(ctx, month, day)
	}
	return nil, nil
}

// mockProductRepository is a mock implementation of repository.ProductRepository.
type mockProductRepository struct {
	CreateProductFunc     func(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProductFunc        func(ctx context.Context, id string) (*model.Product, error)
	ListProductsByIDsFunc func(ctx context.Context, ids []bson.ObjectID) ([]*model.Product, error)
	SaveProductFunc       func(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProductFunc     func(ctx context.Context, id string) (*model.Product, error)
	SearchProductsFunc    func(ctx context.Context, filter bson.M, page, pageSize int) ([]*model.Product, int64, error)
	TopProductsFunc       func(ctx context.Context, limit int) ([]*model.Product, error)
	SuggestProductsFunc   func(ctx context.Context, keyword string, limit int) ([]*model.Product, error)
	DecrementStockFunc    func(ctx context.Context, id bson.ObjectID, qty int) error
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, product)
	}
	return product, nil
}

func (m *mockProductRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockProductRepository) ListProductsByIDs(
	ctx context.Context,
	ids []bson.ObjectID,
) ([]*model.Product, error) {
	if m.ListProductsByIDsFunc != nil {
		return m.ListProductsByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockProductRepository) SaveProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if m.SaveProductFunc != nil {
		return m.SaveProductFunc(ctx, product)
	}
	return product, nil
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockProductRepository) SearchProducts(
	ctx context.Context,
	filter bson.M,
	page, pageSize int,
) ([]*model.Product, int64, error) {
	if m.SearchProductsFunc != nil {
		return m.SearchProductsFunc(ctx, filter, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockProductRepository) TopProducts(ctx context.Context, limit int) ([]*model.Product, error) {
	if m.TopProductsFunc != nil {
		return m.TopProductsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockProductRepository) SuggestProducts(
	ctx context.Context,
	keyword string,
	limit int,
) ([]*model.Product, error) {
	if m.SuggestProductsFunc != nil {
		return m.SuggestProductsFunc(ctx, keyword, limit)
	}
	return nil, nil
}

func (m *mockProductRepository) DecrementStock(ctx context.Context, id bson.ObjectID, qty int) error {
	if m.DecrementStockFunc != nil {
		return m.DecrementStockFunc(ctx, id, qty)
	}
	return nil
}

// mockOrderRepository is a mock implementation of repository.OrderRepository.
type mockOrderRepository struct {
	CreateOrderFunc      func(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrderFunc         func(ctx context.Context, id string) (*model.Order, error)
	SaveOrderFunc        func(ctx context.Context, order *model.Order) (*model.Order, error)
	DeleteOrderFunc      func(ctx context.Context, id string) error
	ListOrdersByUserFunc func(ctx context.Context, userID bson.ObjectID) ([]*model.Order, error)
	ListOrdersFunc       func(ctx context.Context) ([]*model.Order, error)
	SummaryFunc          func(ctx context.Context) (*repository.OrderSummary, error)
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, order)
	}
	return order, nil
}

func (m *mockOrderRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, id)
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockOrderRepository) SaveOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if m.SaveOrderFunc != nil {
		return m.SaveOrderFunc(ctx, order)
	}
	return order, nil
}

func (m *mockOrderRepository) DeleteOrder(ctx context.Context, id string) error {
	if m.DeleteOrderFunc != nil {
		return m.DeleteOrderFunc(ctx, id)
	}
	return nil
}

func (m *mockOrderRepository) ListOrdersByUser(
	ctx context.Context,
	userID bson.ObjectID,
) ([]*model.Order, error) {
	if m.ListOrdersByUserFunc != nil {
		return m.ListOrdersByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockOrderRepository) ListOrders(ctx context.Context) ([]*model.Order, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *mockOrderRepository) Summary(ctx context.Context) (*repository.OrderSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return &repository.OrderSummary{}, nil
}

// mockSubscriberRepository is a mock implementation of repository.SubscriberRepository.
type mockSubscriberRepository struct {
	CreateSubscriberFunc func(ctx context.Context, subscriber *model.Subscriber) (*model.Subscriber, error)
	ListSubscribersFunc  func(ctx context.Context) ([]*model.Subscriber, error)
}

func (m *mockSubscriberRepository) CreateSubscriber(
	ctx context.Context,
	subscriber *model.Subscriber,
) (*model.Subscriber, error) {
	if m.CreateSubscriberFunc != nil {
		return m.CreateSubscriberFunc(ctx, subscriber)
	}
	return subscriber, nil
}

func (m *mockSubscriberRepository) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	if m.ListSubscribersFunc != nil {
		return m.ListSubscribersFunc(ctx)
	}
	return nil, nil
}

// mockEmailSender is a mock implementation of EmailSender.
type mockEmailSender struct {
	SendHTMLFunc func(to []string, subject, htmlBody string) error
}

func (m *mockEmailSender) SendHTML(to []string, subject, htmlBody string) error {
	if m.SendHTMLFunc != nil {
		return m.SendHTMLFunc(to, subject, htmlBody)
	}
	return nil
}
