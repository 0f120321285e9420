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

// ProductRepository defines the interface for product-related database
// operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProductsByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Product, error)

	// SaveProduct persists the whole document. Review mutations are
	// read-modify-write against this method; concurrent saves of the same
	// product race and the later write wins.
	SaveProduct(ctx context.Context, product *model.Product) (*model.Product, error)

	DeleteProduct(ctx context.Context, id string) (*model.Product, error)

	// SearchProducts runs a pre-built catalog filter and returns one page of
	// results together with the total match count.
	SearchProducts(ctx context.Context, filter bson.M, page, pageSize int) ([]*model.Product, int64, error)

	// TopProducts returns the highest rated products.
	TopProducts(ctx context.Context, limit int) ([]*model.Product, error)

	// SuggestProducts matches products whose name or category contains the
	// keyword, case-insensitively.
	SuggestProducts(ctx context.Context, keyword string, limit int) ([]*model.Product, error)

	// DecrementStock applies an atomic in-place decrement. There is no floor:
	// concurrent orders can drive the count negative.
	DecrementStock(ctx context.Context, id bson.ObjectID, qty int) error
}

const productCollection = "products"

type productMongoRepository struct {
	db *mongo.Database
}

// NewProductMongoRepository creates a new MongoDB repository for products.
func NewProductMongoRepository(db *mongo.Database) ProductRepository {
	return &productMongoRepository{db: db}
}

func (r *productMongoRepository) CreateProduct(
	ctx context.Context,
	product *model.Product,
) (*model.Product, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := r.db.Collection(productCollection).InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		product.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return product, nil
}

func (r *productMongoRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(productCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var product model.Product
	if err := result.Decode(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productMongoRepository) ListProductsByIDs(
	ctx context.Context,
	ids []bson.ObjectID,
) ([]*model.Product, error) {
	if len(ids) == 0 {
		return []*model.Product{}, nil
	}

	cursor, err := r.db.Collection(productCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productMongoRepository) SaveProduct(
	ctx context.Context,
	product *model.Product,
) (*model.Product, error) {
	product.UpdatedAt = time.Now()

	_, err := r.db.Collection(productCollection).ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productMongoRepository) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(productCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var product model.Product
	if err := result.Decode(&product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productMongoRepository) SearchProducts(
	ctx context.Context,
	filter bson.M,
	page, pageSize int,
) ([]*model.Product, int64, error) {
	collection := r.db.Collection(productCollection)

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetLimit(int64(pageSize)).
		SetSkip(int64(pageSize * (page - 1)))

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productMongoRepository) TopProducts(ctx context.Context, limit int) ([]*model.Product, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.db.Collection(productCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productMongoRepository) SuggestProducts(
	ctx context.Context,
	keyword string,
	limit int,
) ([]*model.Product, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"name": bson.M{"$regex": keyword, "$options": "i"}},
			bson.M{"category": bson.M{"$regex": keyword, "$options": "i"}},
		},
	}

	findOptions := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{"name": 1, "image": 1, "price": 1, "category": 1})

	cursor, err := r.db.Collection(productCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productMongoRepository) DecrementStock(ctx context.Context, id bson.ObjectID, qty int) error {
	_, err := r.db.Collection(productCollection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"count_in_stock": -qty}},
	)
	return err
}
