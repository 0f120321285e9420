package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestWishlist(t *testing.T) {
	first := bson.NewObjectID()
	second := bson.NewObjectID()

	u := &User{Wishlist: []bson.ObjectID{first, second}}

	t.Run("membership", func(t *testing.T) {
		assert.True(t, u.InWishlist(first))
		assert.False(t, u.InWishlist(bson.NewObjectID()))
	})

	t.Run("remove filters by hex", func(t *testing.T) {
		u := &User{Wishlist: []bson.ObjectID{first, second}}

		u.RemoveFromWishlist(first.Hex())

		assert.Equal(t, []bson.ObjectID{second}, u.Wishlist)
	})

	t.Run("removing absent id is a no-op", func(t *testing.T) {
		u := &User{Wishlist: []bson.ObjectID{first}}

		u.RemoveFromWishlist(bson.NewObjectID().Hex())

		assert.Equal(t, []bson.ObjectID{first}, u.Wishlist)
	})
}
