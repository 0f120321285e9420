package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/nuraya/storefront-api/internal/model"
)

// OrderRepository defines the interface for order-related database
// operations.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)

	// SaveOrder persists the whole document (read-modify-write; the later of
	// two concurrent saves wins).
	SaveOrder(ctx context.Context, order *model.Order) (*model.Order, error)

	DeleteOrder(ctx context.Context, id string) error
	ListOrdersByUser(ctx context.Context, userID bson.ObjectID) ([]*model.Order, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)

	// Summary aggregates the reporting numbers for the admin dashboard.
	Summary(ctx context.Context) (*OrderSummary, error)
}

// DailySales is the per-day sales aggregate for the dashboard chart.
type DailySales struct {
	Date       string  `bson:"_id"          json:"date"`
	TotalSales float64 `bson:"total_sales"  json:"totalSales"`
	Count      int64   `bson:"count"        json:"count"`
}

// DailySignups is the per-day count of registered users.
type DailySignups struct {
	Date  string `bson:"_id"   json:"date"`
	Count int64  `bson:"count" json:"count"`
}

// OrderSummary is the admin dashboard report.
type OrderSummary struct {
	DailySales    []DailySales   `json:"dailySales"`
	DailyUsers    []DailySignups `json:"dailyUsers"`
	ProductsCount int64          `json:"productsCount"`
	OrdersCount   int64          `json:"ordersCount"`
	TotalSales    float64        `json:"totalSales"`
}

const orderCollection = "orders"

type orderMongoRepository struct {
	db *mongo.Database
}

// NewOrderMongoRepository creates a new MongoDB repository for orders.
func NewOrderMongoRepository(db *mongo.Database) OrderRepository {
	return &orderMongoRepository{db: db}
}

func (r *orderMongoRepository) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	result, err := r.db.Collection(orderCollection).InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		order.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return order, nil
}

func (r *orderMongoRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(orderCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var order model.Order
	if err := result.Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderMongoRepository) SaveOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	order.UpdatedAt = time.Now()

	_, err := r.db.Collection(orderCollection).ReplaceOne(ctx, bson.M{"_id": order.ID}, order)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderMongoRepository) DeleteOrder(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.db.Collection(orderCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *orderMongoRepository) ListOrdersByUser(
	ctx context.Context,
	userID bson.ObjectID,
) ([]*model.Order, error) {
	cursor, err := r.db.Collection(orderCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderMongoRepository) ListOrders(ctx context.Context) ([]*model.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(orderCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderMongoRepository) Summary(ctx context.Context) (*OrderSummary, error) {
	summary := &OrderSummary{
		DailySales: []DailySales{},
		DailyUsers: []DailySignups{},
	}

	byDay := bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}}

	salesCursor, err := r.db.Collection(orderCollection).Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":         byDay,
			"total_sales": bson.M{"$sum": "$total_price"},
			"count":       bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	})
	if err != nil {
		return nil, err
	}
	if err := salesCursor.All(ctx, &summary.DailySales); err != nil {
		return nil, err
	}

	usersCursor, err := r.db.Collection(userCollection).Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   byDay,
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	})
	if err != nil {
		return nil, err
	}
	if err := usersCursor.All(ctx, &summary.DailyUsers); err != nil {
		return nil, err
	}

	if summary.ProductsCount, err = r.db.Collection(productCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if summary.OrdersCount, err = r.db.Collection(orderCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}

	totalCursor, err := r.db.Collection(orderCollection).Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"total_sales": bson.M{"$sum": "$total_price"},
		}}},
	})
	if err != nil {
		return nil, err
	}

	var totals []struct {
		TotalSales float64 `bson:"total_sales"`
	}
	if err := totalCursor.All(ctx, &totals); err != nil {
		return nil, err
	}
	if len(totals) > 0 {
		summary.TotalSales = totals[0].TotalSales
	}

	return summary, nil
}
