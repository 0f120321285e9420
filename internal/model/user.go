package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a storefront account. Accounts are created unverified and
// become usable once the emailed verification code is confirmed.
type User struct {
	ID                        bson.ObjectID   `bson:"_id,omitempty"                          json:"_id"`
	Name                      string          `bson:"name"                                   json:"name"`
	Email                     string          `bson:"email"                                  json:"email"`
	PasswordHash              string          `bson:"password_hash"                          json:"-"`
	IsAdmin                   bool            `bson:"is_admin"                               json:"isAdmin"`
	IsVerified                bool            `bson:"is_verified"                            json:"isVerified"`
	VerificationCode          string          `bson:"verification_code,omitempty"            json:"-"`
	VerificationCodeExpiresAt time.Time       `bson:"verification_code_expires_at,omitempty" json:"-"`
	ResetPasswordToken        string          `bson:"reset_password_token,omitempty"         json:"-"`
	ResetPasswordExpiresAt    time.Time       `bson:"reset_password_expires_at,omitempty"    json:"-"`
	Birthday                  *time.Time      `bson:"birthday,omitempty"                     json:"birthday,omitempty"`
	Wishlist                  []bson.ObjectID `bson:"wishlist"                               json:"wishlist"`
	Addresses                 []Address       `bson:"addresses"                              json:"addresses"`
	CreatedAt                 time.Time       `bson:"created_at"                             json:"createdAt"`
	UpdatedAt                 time.Time       `bson:"updated_at"                             json:"updatedAt"`
}

// Address is a shipping address embedded in a user document. At most one
// address carries the default flag.
type Address struct {
	AddressLine1 string `bson:"address_line1"           json:"addressLine1"`
	AddressLine2 string `bson:"address_line2,omitempty" json:"addressLine2,omitempty"`
	City         string `bson:"city"                    json:"city"`
	PostalCode   string `bson:"postal_code"             json:"postalCode"`
	Country      string `bson:"country"                 json:"country"`
	IsDefault    bool   `bson:"is_default"              json:"isDefault"`
}

// InWishlist reports whether productID is already present in the wishlist.
func (u *User) InWishlist(productID bson.ObjectID) bool {
	for _, id := range u.Wishlist {
		if id.Hex() == productID.Hex() {
			return true
		}
	}
	return false
}

// RemoveFromWishlist filters productID out of the wishlist by the string form
// of the identifier. Removing an absent identifier is a no-op.
func (u *User) RemoveFromWishlist(productID string) {
	filtered := make([]bson.ObjectID, 0, len(u.Wishlist))
	for _, id := range u.Wishlist {
		if id.Hex() != productID {
			filtered = append(filtered, id)
		}
	}
	u.Wishlist = filtered
}
