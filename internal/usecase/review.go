package usecase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/internal/sanitize"
)

// ReviewUsecase covers the review lifecycle on a product. A user holds at
// most one review per product; the derived rating fields are recomputed
// eagerly after every mutation.
type ReviewUsecase interface {
	Create(ctx context.Context, actor Actor, productID string, params ReviewParams) error
	Update(ctx context.Context, actor Actor, productID string, params ReviewParams) error
	Delete(ctx context.Context, actor Actor, productID string) error
}

// ReviewParams defines the caller-supplied review fields.
type ReviewParams struct {
	Rating  int
	Comment string
}

var (
	ErrInvalidRating   = errors.New("rating is required and must be between 1 and 5")
	ErrAlreadyReviewed = errors.New("product already reviewed")
	ErrReviewNotFound  = errors.New("review not found")
)

type reviewUsecase struct {
	productRepo repository.ProductRepository
}

// NewReviewUsecase creates a new instance of ReviewUsecase.
func NewReviewUsecase(productRepo repository.ProductRepository) ReviewUsecase {
	return &reviewUsecase{productRepo: productRepo}
}

func (u *reviewUsecase) Create(
	ctx context.Context,
	actor Actor,
	productID string,
	params ReviewParams,
) error {
	if params.Rating < 1 || params.Rating > 5 {
		return ErrInvalidRating
	}

	product, err := u.loadProduct(ctx, productID)
	if err != nil {
		return err
	}

	if product.ReviewBy(actor.ID) != -1 {
		return ErrAlreadyReviewed
	}

	product.Reviews = append(product.Reviews, model.Review{
		ID:        bson.NewObjectID(),
		UserID:    actor.ID,
		Name:      actor.Name,
		Rating:    params.Rating,
		Comment:   sanitize.String(params.Comment),
		CreatedAt: time.Now(),
	})
	product.RecomputeReviewStats()

	_, err = u.productRepo.SaveProduct(ctx, product)
	return err
}

func (u *reviewUsecase) Update(
	ctx context.Context,
	actor Actor,
	productID string,
	params ReviewParams,
) error {
	if params.Rating < 1 || params.Rating > 5 {
		return ErrInvalidRating
	}

	product, err := u.loadProduct(ctx, productID)
	if err != nil {
		return err
	}

	i := product.ReviewBy(actor.ID)
	if i == -1 {
		return ErrReviewNotFound
	}

	product.Reviews[i].Rating = params.Rating
	// The author name follows the account; the comment is only replaced when
	// a non-empty value was supplied.
	product.Reviews[i].Name = actor.Name
	if comment := sanitize.String(params.Comment); comment != "" {
		product.Reviews[i].Comment = comment
	}
	product.RecomputeReviewStats()

	_, err = u.productRepo.SaveProduct(ctx, product)
	return err
}

func (u *reviewUsecase) Delete(ctx context.Context, actor Actor, productID string) error {
	product, err := u.loadProduct(ctx, productID)
	if err != nil {
		return err
	}

	i := product.ReviewBy(actor.ID)
	if i == -1 {
		return ErrReviewNotFound
	}

	product.Reviews = append(product.Reviews[:i], product.Reviews[i+1:]...)
	product.RecomputeReviewStats()

	_, err = u.productRepo.SaveProduct(ctx, product)
	return err
}

func (u *reviewUsecase) loadProduct(ctx context.Context, productID string) (*model.Product, error) {
	if !sanitize.IsValidObjectID(productID) {
		return nil, ErrInvalidProductID
	}

	product, err := u.productRepo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}
