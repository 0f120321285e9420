package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product is the catalog aggregate root. Reviews are embedded and the
// rating/review-count fields are derived from them, recomputed eagerly after
// every structural change rather than lazily on read.
type Product struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"_id"`
	UserID       bson.ObjectID `bson:"user_id"        json:"user"`
	Name         string        `bson:"name"           json:"name"`
	Price        float64       `bson:"price"          json:"price"`
	Brand        string        `bson:"brand"          json:"brand"`
	Category     string        `bson:"category"       json:"category"`
	Description  string        `bson:"description"    json:"description"`
	Image        string        `bson:"image"          json:"image"`
	Images       []string      `bson:"images"         json:"images"`
	CountInStock int           `bson:"count_in_stock" json:"countInStock"`
	NumReviews   int           `bson:"num_reviews"    json:"numReviews"`
	Rating       float64       `bson:"rating"         json:"rating"`
	Reviews      []Review      `bson:"reviews"        json:"reviews"`
	Variations   []Variation   `bson:"variations"     json:"variations"`
	CreatedAt    time.Time     `bson:"created_at"     json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"updatedAt"`
}

// Review is a customer review embedded in its product. The author name is a
// snapshot taken when the review is written, not a live join. A user may hold
// at most one review per product.
type Review struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    bson.ObjectID `bson:"user_id"       json:"user"`
	Name      string        `bson:"name"          json:"name"`
	Rating    int           `bson:"rating"        json:"rating"`
	Comment   string        `bson:"comment"       json:"comment"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
}

// Variation is an option group on a product, e.g. size or strap color.
type Variation struct {
	Name    string   `bson:"name"    json:"name"`
	Options []string `bson:"options" json:"options"`
}

// ReviewBy returns the index of the review written by userID, or -1.
// Identity is compared on the string form of the identifier.
func (p *Product) ReviewBy(userID bson.ObjectID) int {
	for i, review := range p.Reviews {
		if review.UserID.Hex() == userID.Hex() {
			return i
		}
	}
	return -1
}

// RecomputeReviewStats refreshes the derived rating fields. It must be called
// after every mutation of the embedded review list. A product without reviews
// has a rating of exactly 0, not NaN.
func (p *Product) RecomputeReviewStats() {
	p.NumReviews = len(p.Reviews)
	if len(p.Reviews) == 0 {
		p.Rating = 0
		return
	}

	var sum int
	for _, review := range p.Reviews {
		sum += review.Rating
	}
	p.Rating = float64(sum) / float64(len(p.Reviews))
}
