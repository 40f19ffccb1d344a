package catalog

import (
	"github.com/roycode360/theglamstore-sub001/models"
)

// ProductView is the public listing shape. Optional fields absent in storage
// come back as empty strings/arrays instead of nulls so clients never branch
// on missing keys.
type ProductView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	SalePrice     *float64 `json:"salePrice"`
	StockQuantity *int     `json:"stockQuantity"`
	IsActive      bool     `json:"isActive"`
	IsFeatured    bool     `json:"isFeatured"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
}

type Page struct {
	Items      []ProductView `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

func projectProduct(p models.Product) ProductView {
	v := ProductView{
		ID:            p.Id.Hex(),
		Name:          p.Name,
		Slug:          p.Slug,
		Brand:         p.Brand,
		Category:      p.Category,
		Description:   p.Description,
		Price:         p.Price,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		IsFeatured:    p.IsFeatured,
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		Images:        p.Images,
	}
	if v.Sizes == nil {
		v.Sizes = []string{}
	}
	if v.Colors == nil {
		v.Colors = []string{}
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	return v
}

func projectPage(items []models.Product, total int64, page, pageSize int) *Page {
	views := make([]ProductView, 0, len(items))
	for _, p := range items {
		views = append(views, projectProduct(p))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	return &Page{
		Items:      views,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
