package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/nuraya/storefront-api/internal/model"
)

// SubscriberRepository defines the interface for newsletter subscriptions.
type SubscriberRepository interface {
	CreateSubscriber(ctx context.Context, subscriber *model.Subscriber) (*model.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]*model.Subscriber, error)
}

const subscriberCollection = "newsletter_subscribers"

type subscriberMongoRepository struct {
	db *mongo.Database
}

// NewSubscriberMongoRepository creates a new MongoDB repository for
// newsletter subscribers.
func NewSubscriberMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) SubscriberRepository {
	collection := db.Collection(subscriberCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create subscriber indexes")
	}

	return &subscriberMongoRepository{db: db}
}

func (r *subscriberMongoRepository) CreateSubscriber(
	ctx context.Context,
	subscriber *model.Subscriber,
) (*model.Subscriber, error) {
	subscriber.CreatedAt = time.Now()

	result, err := r.db.Collection(subscriberCollection).InsertOne(ctx, subscriber)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		subscriber.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return subscriber, nil
}

func (r *subscriberMongoRepository) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(subscriberCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subscribers []*model.Subscriber
	if err := cursor.All(ctx, &subscribers); err != nil {
		return nil, err
	}

	return subscribers, nil
}
