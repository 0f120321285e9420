// Package worker holds the background jobs that run alongside the HTTP
// server.
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/shared/mailer"
)

// birthdaySendHour is the local hour at which the daily greeting run
// fires.
const birthdaySendHour = 9

// BulkEmailSender sends a batch of emails over one connection.
type BulkEmailSender interface {
	SendBulk(emails []mailer.Email) error
}

// BirthdayWorker sends a greeting email to every user whose birthday
// falls on the current day.
type BirthdayWorker struct {
	userRepo repository.UserRepository
	sender   BulkEmailSender
	logger   *zerolog.Logger
}

// NewBirthdayWorker creates a new instance of BirthdayWorker.
func NewBirthdayWorker(
	userRepo repository.UserRepository,
	sender BulkEmailSender,
	logger *zerolog.Logger,
) *BirthdayWorker {
	return &BirthdayWorker{
		userRepo: userRepo,
		sender:   sender,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, firing one greeting pass per day.
func (w *BirthdayWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(untilNextRun(time.Now())):
			if err := w.SendGreetings(ctx); err != nil {
				w.logger.Error().Err(err).Msg("birthday greeting run failed")
			}
		}
	}
}

// SendGreetings emails every user whose birthday is today.
func (w *BirthdayWorker) SendGreetings(ctx context.Context) error {
	now := time.Now()

	users, err := w.userRepo.ListUsersWithBirthday(ctx, now.Month(), now.Day())
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	emails := make([]mailer.Email, 0, len(users))
	for _, user := range users {
		emails = append(emails, mailer.Email{
			To:       []string{user.Email},
			Subject:  "Happy birthday!",
			HTMLBody: mailer.BirthdayEmail(user.Name),
		})
	}

	if err := w.sender.SendBulk(emails); err != nil {
		return err
	}

	w.logger.Info().Int("count", len(emails)).Msg("sent birthday greetings")
	return nil
}

// untilNextRun returns the duration until the next daily send time.
func untilNextRun(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), birthdaySendHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
