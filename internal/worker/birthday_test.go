package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/shared/mailer"
)

type mockUserRepository struct {
	ListUsersWithBirthdayFunc func(ctx context.Context, month time.Month, day int) ([]*model.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return user, nil
}

func (m *mockUserRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) GetUserByVerification(ctx context.Context, email, code string, now time.Time) (*model.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) GetUserByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	return user, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
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

type mockBulkSender struct {
	SendBulkFunc func(emails []mailer.Email) error
}

func (m *mockBulkSender) SendBulk(emails []mailer.Email) error {
	if m.SendBulkFunc != nil {
		return m.SendBulkFunc(emails)
	}
	return nil
}

func workerLogger() *zerolog.Logger {
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	return &logger
}

func TestSendGreetings(t *testing.T) {
	t.Run("emails every user with a birthday today", func(t *testing.T) {
		repo := &mockUserRepository{
			ListUsersWithBirthdayFunc: func(_ context.Context, month time.Month, day int) ([]*model.User, error) {
				now := time.Now()
				assert.Equal(t, now.Month(), month)
				assert.Equal(t, now.Day(), day)
				return []*model.User{
					{Name: "Amina", Email: "amina@example.com"},
					{Name: "Badr", Email: "badr@example.com"},
				}, nil
			},
		}

		var sent []mailer.Email
		sender := &mockBulkSender{
			SendBulkFunc: func(emails []mailer.Email) error {
				sent = emails
				return nil
			},
		}

		w := NewBirthdayWorker(repo, sender, workerLogger())
		err := w.SendGreetings(context.Background())

		require.NoError(t, err)
		require.Len(t, sent, 2)
		assert.Equal(t, []string{"amina@example.com"}, sent[0].To)
		assert.Contains(t, sent[0].HTMLBody, "Amina")
	})

	t.Run("no birthdays means no send", func(t *testing.T) {
		sender := &mockBulkSender{
			SendBulkFunc: func(emails []mailer.Email) error {
				t.Fatal("sender must not be called without recipients")
				return nil
			},
		}

		w := NewBirthdayWorker(&mockUserRepository{}, sender, workerLogger())

		assert.NoError(t, w.SendGreetings(context.Background()))
	})

	t.Run("lookup failure surfaces", func(t *testing.T) {
		repo := &mockUserRepository{
			ListUsersWithBirthdayFunc: func(_ context.Context, month time.Month, day int) ([]*model.User, error) {
				return nil, errors.New("db down")
			},
		}

		w := NewBirthdayWorker(repo, &mockBulkSender{}, workerLogger())

		assert.Error(t, w.SendGreetings(context.Background()))
	})
}

func TestUntilNextRun(t *testing.T) {
	t.Run("before send hour targets today", func(t *testing.T) {
		now := time.Date(2026, time.March, 10, 7, 30, 0, 0, time.UTC)
		assert.Equal(t, 90*time.Minute, untilNextRun(now))
	})

	t.Run("after send hour targets tomorrow", func(t *testing.T) {
		now := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, 23*time.Hour, untilNextRun(now))
	})

	t.Run("exactly at send hour targets tomorrow", func(t *testing.T) {
		now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, 24*time.Hour, untilNextRun(now))
	})
}
