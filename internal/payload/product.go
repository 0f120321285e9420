package payload

type VariationPayload struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type CreateProductRequest struct {
	Name         string             `json:"name"         validate:"required"`
	Price        float64            `json:"price"        validate:"gte=0"`
	Image        string             `json:"image"        validate:"required"`
	Brand        string             `json:"brand"        validate:"required"`
	Category     string             `json:"category"     validate:"required"`
	Description  string             `json:"description"  validate:"required"`
	CountInStock int                `json:"countInStock" validate:"gte=0"`
	Images       []string           `json:"images,omitempty"`
	Variations   []VariationPayload `json:"variations,omitempty"`
}

type UpdateProductRequest struct {
	Name         *string            `json:"name,omitempty"`
	Price        *float64           `json:"price,omitempty"`
	Image        *string            `json:"image,omitempty"`
	Brand        *string            `json:"brand,omitempty"`
	Category     *string            `json:"category,omitempty"`
	Description  *string            `json:"description,omitempty"`
	CountInStock *int               `json:"countInStock,omitempty"`
	Images       []string           `json:"images,omitempty"`
	Variations   []VariationPayload `json:"variations,omitempty"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}
