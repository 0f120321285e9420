package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/internal/sanitize"
)

// NewsletterUsecase covers newsletter subscriptions.
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, email string) error
	Subscribers(ctx context.Context) ([]*model.Subscriber, error)
}

var ErrAlreadySubscribed = errors.New("email already subscribed")

type newsletterUsecase struct {
	subscriberRepo repository.SubscriberRepository
}

// NewNewsletterUsecase creates a new instance of NewsletterUsecase.
func NewNewsletterUsecase(subscriberRepo repository.SubscriberRepository) NewsletterUsecase {
	return &newsletterUsecase{subscriberRepo: subscriberRepo}
}

func (u *newsletterUsecase) Subscribe(ctx context.Context, email string) error {
	if !sanitize.IsValidEmail(email) {
		return ErrInvalidEmail
	}

	_, err := u.subscriberRepo.CreateSubscriber(ctx, &model.Subscriber{
		Email: sanitize.String(email),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadySubscribed
		}
		return err
	}

	return nil
}

func (u *newsletterUsecase) Subscribers(ctx context.Context) ([]*model.Subscriber, error) {
	return u.subscriberRepo.ListSubscribers(ctx)
}
