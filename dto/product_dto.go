package dto

// CreateProductDTO is parsed from the "data" multipart field (JSON);
// images ride alongside as files.
type CreateProductDTO struct {
	Name          string   `json:"name" binding:"required,min=3"`
	Slug          string   `json:"slug"` // auto-generated from Name if empty
	Brand         string   `json:"brand"`
	Category      string   `json:"category"` // display text, matched fuzzily on reads
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gte=0"`
	SalePrice     *float64 `json:"salePrice"`
	StockQuantity *int     `json:"stockQuantity"`
	IsActive      bool     `json:"isActive"`
	IsFeatured    bool     `json:"isFeatured"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
}

type UpdateProductDTO struct {
	Name              *string   `json:"name,omitempty"`
	Slug              *string   `json:"slug,omitempty"`
	Brand             *string   `json:"brand,omitempty"`
	Category          *string   `json:"category,omitempty"`
	Description       *string   `json:"description,omitempty"`
	Price             *float64  `json:"price,omitempty"`
	SalePrice         *float64  `json:"salePrice,omitempty"`
	ClearSalePrice    bool      `json:"clearSalePrice,omitempty"`
	StockQuantity     *int      `json:"stockQuantity,omitempty"`
	IsActive          *bool     `json:"isActive,omitempty"`
	IsFeatured        *bool     `json:"isFeatured,omitempty"`
	Sizes             *[]string `json:"sizes,omitempty"`
	Colors            *[]string `json:"colors,omitempty"`
	RemovedImagesUrls []string  `json:"removedImagesUrls,omitempty"`
}
