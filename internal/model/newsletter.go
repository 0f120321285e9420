package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscriber is a newsletter subscription. Create-only; the email is unique.
type Subscriber struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string        `bson:"email"         json:"email"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
}
