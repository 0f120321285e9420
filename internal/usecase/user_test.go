package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/shared/auth"
)

func newTestAuthenticator() auth.JWTAuthenticator {
	return auth.NewJWTAuthenticator("test-secret", "storefront-test", time.Hour)
}

func TestUserUsecase_Wishlist(t *testing.T) {
	actor := Actor{ID: bson.NewObjectID()}
	productID := bson.NewObjectID()

	newUserRepo := func(user *model.User, saved **model.User) *mockUserRepository {
		return &mockUserRepository{
			GetUserFunc: func(_ context.Context, id string) (*model.User, error) {
				return user, nil
			},
			SaveUserFunc: func(_ context.Context, u *model.User) (*model.User, error) {
				if saved != nil {
					*saved = u
				}
				return u, nil
			},
		}
	}

	t.Run("add appends the product", func(t *testing.T) {
		user := &model.User{ID: actor.ID, Wishlist: []bson.ObjectID{}}
		var saved *model.User

		u := NewUserUsecase(newUserRepo(user, &saved), &mockProductRepository{}, newTestAuthenticator())
		err := u.AddToWishlist(context.Background(), actor, productID.Hex())

		require.NoError(t, err)
		assert.Equal(t, []bson.ObjectID{productID}, saved.Wishlist)
	})

	t.Run("duplicate add is a conflict", func(t *testing.T) {
		user := &model.User{ID: actor.ID, Wishlist: []bson.ObjectID{productID}}

		u := NewUserUsecase(newUserRepo(user, nil), &mockProductRepository{}, newTestAuthenticator())
		err := u.AddToWishlist(context.Background(), actor, productID.Hex())

		assert.ErrorIs(t, err, ErrAlreadyInWishlist)
	})

	t.Run("remove filters the product out", func(t *testing.T) {
		other := bson.NewObjectID()
		user := &model.User{ID: actor.ID, Wishlist: []bson.ObjectID{productID, other}}
		var saved *model.User

		u := NewUserUsecase(newUserRepo(user, &saved), &mockProductRepository{}, newTestAuthenticator())
		err := u.RemoveFromWishlist(context.Background(), actor, productID.Hex())

		require.NoError(t, err)
		assert.Equal(t, []bson.ObjectID{other}, saved.Wishlist)
	})

	t.Run("removing an absent product succeeds", func(t *testing.T) {
		user := &model.User{ID: actor.ID, Wishlist: []bson.ObjectID{productID}}
		var saved *model.User

		u := NewUserUsecase(newUserRepo(user, &saved), &mockProductRepository{}, newTestAuthenticator())
		err := u.RemoveFromWishlist(context.Background(), actor, bson.NewObjectID().Hex())

		require.NoError(t, err)
		assert.Equal(t, []bson.ObjectID{productID}, saved.Wishlist)
	})

	t.Run("malformed product id rejected", func(t *testing.T) {
		u := NewUserUsecase(&mockUserRepository{}, &mockProductRepository{}, newTestAuthenticator())

		assert.ErrorIs(t, u.AddToWishlist(context.Background(), actor, "junk"), ErrInvalidProductID)
		assert.ErrorIs(t, u.RemoveFromWishlist(context.Background(), actor, "junk"), ErrInvalidProductID)
	})

	t.Run("wishlist resolves to products", func(t *testing.T) {
		user := &model.User{ID: actor.ID, Wishlist: []bson.ObjectID{productID}}
		want := []*model.Product{{ID: productID, Name: "Diver"}}

		userRepo := newUserRepo(user, nil)
		productRepo := &mockProductRepository{
			ListProductsByIDsFunc: func(_ context.Context, ids []bson.ObjectID) ([]*model.Product, error) {
				assert.Equal(t, user.Wishlist, ids)
				return want, nil
			},
		}

		u := NewUserUsecase(userRepo, productRepo, newTestAuthenticator())
		got, err := u.GetWishlist(context.Background(), actor)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestUserUsecase_UpdateProfile(t *testing.T) {
	actor := Actor{ID: bson.NewObjectID()}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		user := &model.User{ID: actor.ID, Name: "Old", Email: "old@example.com"}
		var saved *model.User

		repo := &mockUserRepository{
			GetUserFunc: func(_ context.Context, id string) (*model.User, error) {
				return user, nil
			},
			SaveUserFunc: func(_ context.Context, u *model.User) (*model.User, error) {
				saved = u
				return u, nil
			},
		}

		name := "New Name"
		u := NewUserUsecase(repo, &mockProductRepository{}, newTestAuthenticator())
		got, err := u.UpdateProfile(context.Background(), actor, UpdateProfileParams{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "New Name", saved.Name)
		assert.Equal(t, "old@example.com", saved.Email)
		assert.NotEmpty(t, got.Token)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		user := &model.User{ID: actor.ID}
		repo := &mockUserRepository{
			GetUserFunc: func(_ context.Context, id string) (*model.User, error) {
				return user, nil
			},
		}

		email := "not-an-email"
		u := NewUserUsecase(repo, &mockProductRepository{}, newTestAuthenticator())
		_, err := u.UpdateProfile(context.Background(), actor, UpdateProfileParams{Email: &email})

		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		user := &model.User{ID: actor.ID}
		repo := &mockUserRepository{
			GetUserFunc: func(_ context.Context, id string) (*model.User, error) {
				return user, nil
			},
		}

		password := "short"
		u := NewUserUsecase(repo, &mockProductRepository{}, newTestAuthenticator())
		_, err := u.UpdateProfile(context.Background(), actor, UpdateProfileParams{Password: &password})

		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestUserUsecase_DeleteUser(t *testing.T) {
	u := NewUserUsecase(&mockUserRepository{}, &mockProductRepository{}, newTestAuthenticator())

	t.Run("malformed id", func(t *testing.T) {
		assert.ErrorIs(t, u.DeleteUser(context.Background(), "junk"), ErrInvalidUserID)
	})

	t.Run("missing user", func(t *testing.T) {
		assert.ErrorIs(t, u.DeleteUser(context.Background(), bson.NewObjectID().Hex()), ErrUserNotFound)
	})
}
