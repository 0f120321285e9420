package usecase

import (
	"context"
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/internal/sanitize"
)

// CatalogUsecase covers catalog browsing and the admin product CRUD.
type CatalogUsecase interface {
	// Search runs a sanitized catalog query. The params map must already have
	// passed the sanitize.QueryParams allowlist.
	Search(ctx context.Context, params map[string]string) (*ProductPage, error)

	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, actor Actor, params CreateProductParams) (*model.Product, error)
	Update(ctx context.Context, id string, params UpdateProductParams) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	Top(ctx context.Context) ([]*model.Product, error)
	Suggestions(ctx context.Context, query string) ([]*model.Product, error)
}

// ProductPage is one page of catalog search results.
type ProductPage struct {
	Products []*model.Product `json:"products"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

// CreateProductParams defines the fields for a new product.
type CreateProductParams struct {
	Name         string
	Price        float64
	Image        string
	Brand        string
	Category     string
	Description  string
	CountInStock int
	Images       []string
	Variations   []model.Variation
}

// UpdateProductParams defines the optional parameters for updating a product.
// Only the fields that are not nil will be updated.
type UpdateProductParams struct {
	Name         *string
	Price        *float64
	Image        *string
	Brand        *string
	Category     *string
	Description  *string
	CountInStock *int
	Images       []string
	Variations   []model.Variation
}

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrMissingFields    = errors.New("all product fields are required")
	ErrInvalidPrice     = errors.New("price must be a positive number")
	ErrInvalidStock     = errors.New("stock count must be a positive number")
)

const (
	topProductsLimit = 3
	suggestionsLimit = 5
)

type catalogUsecase struct {
	productRepo repository.ProductRepository
	pageSize    int
}

// NewCatalogUsecase creates a new instance of CatalogUsecase.
func NewCatalogUsecase(productRepo repository.ProductRepository, pageSize int) CatalogUsecase {
	return &catalogUsecase{
		productRepo: productRepo,
		pageSize:    pageSize,
	}
}

func (u *catalogUsecase) Search(ctx context.Context, params map[string]string) (*ProductPage, error) {
	page, err := strconv.Atoi(params["pageNumber"])
	if err != nil || page < 1 {
		page = 1
	}

	filter := sanitize.BuildSafeQuery(params)

	products, count, err := u.productRepo.SearchProducts(ctx, filter, page, u.pageSize)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*model.Product{}
	}

	pages := int((count + int64(u.pageSize) - 1) / int64(u.pageSize))

	return &ProductPage{
		Products: products,
		Page:     page,
		Pages:    pages,
	}, nil
}

func (u *catalogUsecase) Get(ctx context.Context, id string) (*model.Product, error) {
	if !sanitize.IsValidObjectID(id) {
		return nil, ErrInvalidProductID
	}

	product, err := u.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

func (u *catalogUsecase) Create(
	ctx context.Context,
	actor Actor,
	params CreateProductParams,
) (*model.Product, error) {
	if params.Name == "" || params.Image == "" || params.Brand == "" ||
		params.Category == "" || params.Description == "" {
		return nil, ErrMissingFields
	}
	if params.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if params.CountInStock < 0 {
		return nil, ErrInvalidStock
	}

	images := make([]string, 0, len(params.Images))
	for _, image := range params.Images {
		images = append(images, sanitize.String(image))
	}
	variations := params.Variations
	if variations == nil {
		variations = []model.Variation{}
	}

	return u.productRepo.CreateProduct(ctx, &model.Product{
		UserID:       actor.ID,
		Name:         sanitize.String(params.Name),
		Price:        params.Price,
		Image:        sanitize.String(params.Image),
		Brand:        sanitize.String(params.Brand),
		Category:     sanitize.String(params.Category),
		Description:  sanitize.String(params.Description),
		CountInStock: params.CountInStock,
		Images:       images,
		Variations:   variations,
		Reviews:      []model.Review{},
	})
}

func (u *catalogUsecase) Update(
	ctx context.Context,
	id string,
	params UpdateProductParams,
) (*model.Product, error) {
	product, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		product.Name = sanitize.String(*params.Name)
	}
	if params.Price != nil {
		if *params.Price < 0 {
			return nil, ErrInvalidPrice
		}
		product.Price = *params.Price
	}
	if params.Description != nil {
		product.Description = sanitize.String(*params.Description)
	}
	if params.Image != nil {
		product.Image = sanitize.String(*params.Image)
	}
	if params.Images != nil {
		images := make([]string, 0, len(params.Images))
		for _, image := range params.Images {
			images = append(images, sanitize.String(image))
		}
		product.Images = images
	}
	if params.Brand != nil {
		product.Brand = sanitize.String(*params.Brand)
	}
	if params.Category != nil {
		product.Category = sanitize.String(*params.Category)
	}
	if params.CountInStock != nil {
		if *params.CountInStock < 0 {
			return nil, ErrInvalidStock
		}
		product.CountInStock = *params.CountInStock
	}
	if params.Variations != nil {
		product.Variations = params.Variations
	}

	return u.productRepo.SaveProduct(ctx, product)
}

func (u *catalogUsecase) Delete(ctx context.Context, id string) error {
	if !sanitize.IsValidObjectID(id) {
		return ErrInvalidProductID
	}

	if _, err := u.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProductNotFound
		}
		return err
	}

	return nil
}

func (u *catalogUsecase) Top(ctx context.Context) ([]*model.Product, error) {
	return u.productRepo.TopProducts(ctx, topProductsLimit)
}

func (u *catalogUsecase) Suggestions(ctx context.Context, query string) ([]*model.Product, error) {
	keyword := sanitize.String(query)
	if keyword == "" {
		return []*model.Product{}, nil
	}

	return u.productRepo.SuggestProducts(ctx, keyword, suggestionsLimit)
}
