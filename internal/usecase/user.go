package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/internal/sanitize"
	"github.com/nuraya/storefront-api/shared/auth"
	"github.com/nuraya/storefront-api/shared/security"
)

// UserUsecase covers profile management, the wishlist, and the admin user
// listing.
type UserUsecase interface {
	GetProfile(ctx context.Context, actor Actor) (*Profile, error)
	UpdateProfile(ctx context.Context, actor Actor, params UpdateProfileParams) (*AuthenticatedUser, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id string) error

	AddToWishlist(ctx context.Context, actor Actor, productID string) error
	RemoveFromWishlist(ctx context.Context, actor Actor, productID string) error
	GetWishlist(ctx context.Context, actor Actor) ([]*model.Product, error)
}

// Profile is the account view returned to its owner.
type Profile struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// UpdateProfileParams defines the optional profile fields. Only non-nil
// fields are updated.
type UpdateProfileParams struct {
	Name     *string
	Email    *string
	Password *string
}

var (
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
)

type userUsecase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	jwtAuth     auth.JWTAuthenticator
}

// NewUserUsecase creates a new instance of UserUsecase.
func NewUserUsecase(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	jwtAuth auth.JWTAuthenticator,
) UserUsecase {
	return &userUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
		jwtAuth:     jwtAuth,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, actor Actor) (*Profile, error) {
	user, err := u.loadUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:      user.ID.Hex(),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}

func (u *userUsecase) UpdateProfile(
	ctx context.Context,
	actor Actor,
	params UpdateProfileParams,
) (*AuthenticatedUser, error) {
	user, err := u.loadUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := sanitize.String(*params.Name)
		if name == "" {
			return nil, ErrInvalidName
		}
		user.Name = name
	}

	if params.Email != nil {
		if !sanitize.IsValidEmail(*params.Email) {
			return nil, ErrInvalidEmail
		}
		user.Email = sanitize.String(*params.Email)
	}

	if params.Password != nil {
		if !sanitize.IsStrongPassword(*params.Password) {
			return nil, ErrWeakPassword
		}
		passwordHash, err := security.HashPassword(sanitize.String(*params.Password))
		if err != nil {
			return nil, err
		}
		user.PasswordHash = passwordHash
	}

	updated, err := u.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := u.jwtAuth.GenerateToken(updated.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &AuthenticatedUser{
		ID:      updated.ID.Hex(),
		Name:    updated.Name,
		Email:   updated.Email,
		IsAdmin: updated.IsAdmin,
		Token:   token,
	}, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]*model.User, error) {
	return u.userRepo.ListUsers(ctx)
}

func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	if !sanitize.IsValidObjectID(id) {
		return ErrInvalidUserID
	}

	if _, err := u.userRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

func (u *userUsecase) AddToWishlist(ctx context.Context, actor Actor, productID string) error {
	if !sanitize.IsValidObjectID(productID) {
		return ErrInvalidProductID
	}

	user, err := u.loadUser(ctx, actor)
	if err != nil {
		return err
	}

	objectID, err := bson.ObjectIDFromHex(productID)
	if err != nil {
		return ErrInvalidProductID
	}

	if user.InWishlist(objectID) {
		return ErrAlreadyInWishlist
	}

	user.Wishlist = append(user.Wishlist, objectID)
	_, err = u.userRepo.SaveUser(ctx, user)
	return err
}

func (u *userUsecase) RemoveFromWishlist(ctx context.Context, actor Actor, productID string) error {
	if !sanitize.IsValidObjectID(productID) {
		return ErrInvalidProductID
	}

	user, err := u.loadUser(ctx, actor)
	if err != nil {
		return err
	}

	// Removing an identifier that is not present is a no-op, not an error.
	user.RemoveFromWishlist(productID)

	_, err = u.userRepo.SaveUser(ctx, user)
	return err
}

func (u *userUsecase) GetWishlist(ctx context.Context, actor Actor) ([]*model.Product, error) {
	user, err := u.loadUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	return u.productRepo.ListProductsByIDs(ctx, user.Wishlist)
}

func (u *userUsecase) loadUser(ctx context.Context, actor Actor) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, actor.ID.Hex())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
