// Package usecase holds the storefront business rules. Every mutation takes
// the authenticated actor as an explicit argument; nothing here reads ambient
// request state. All mutations are read-modify-write sequences without
// transactions: concurrent requests against the same document race and the
// later write wins (see the repository interfaces).
package usecase

import "go.mongodb.org/mongo-driver/v2/bson"

// Actor identifies the authenticated caller of an operation. Authentication
// itself happens at the transport boundary; this layer only makes
// authorization decisions from the flags carried here.
type Actor struct {
	ID      bson.ObjectID
	Name    string
	IsAdmin bool
}

// EmailSender sends transactional email. Satisfied by *mailer.Mailer.
type EmailSender interface {
	SendHTML(to []string, subject, htmlBody string) error
}
