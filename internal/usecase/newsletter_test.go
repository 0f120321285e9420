package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/model"
)

func TestNewsletterUsecase_Subscribe(t *testing.T) {
	t.Run("stores the subscription", func(t *testing.T) {
		var created *model.Subscriber
		repo := &mockSubscriberRepository{
			CreateSubscriberFunc: func(_ context.Context, subscriber *model.Subscriber) (*model.Subscriber, error) {
				created = subscriber
				return subscriber, nil
			},
		}

		u := NewNewsletterUsecase(repo)
		err := u.Subscribe(context.Background(), "reader@example.com")

		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", created.Email)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := &mockSubscriberRepository{
			CreateSubscriberFunc: func(_ context.Context, subscriber *model.Subscriber) (*model.Subscriber, error) {
				return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
			},
		}

		u := NewNewsletterUsecase(repo)
		err := u.Subscribe(context.Background(), "reader@example.com")

		assert.ErrorIs(t, err, ErrAlreadySubscribed)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		u := NewNewsletterUsecase(&mockSubscriberRepository{})

		assert.ErrorIs(t, u.Subscribe(context.Background(), "nope"), ErrInvalidEmail)
	})
}

func TestContactUsecase_Send(t *testing.T) {
	t.Run("relays the sanitized message to the shop inbox", func(t *testing.T) {
		var gotTo []string
		var gotSubject, gotBody string
		sender := &mockEmailSender{
			SendHTMLFunc: func(to []string, subject, htmlBody string) error {
				gotTo = to
				gotSubject = subject
				gotBody = htmlBody
				return nil
			},
		}

		u := NewContactUsecase(sender, testConfig())
		err := u.Send(context.Background(), ContactParams{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Subject: "Strap question",
			Message: "Does the $lt diver come with a rubber strap?",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"shop@example.com"}, gotTo)
		assert.Equal(t, "[Contact] Strap question", gotSubject)
		assert.Contains(t, gotBody, "lt diver")
		assert.NotContains(t, gotBody, "$lt")
	})

	t.Run("invalid sender email rejected", func(t *testing.T) {
		u := NewContactUsecase(&mockEmailSender{}, testConfig())

		err := u.Send(context.Background(), ContactParams{Email: "broken"})

		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}
