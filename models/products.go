package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product.Category holds the category's display text, not a Category id.
// Imported inventory predates the category collection, so listings match it
// by normalized text instead of joining on an id.
type Product struct {
	Id            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string        `bson:"name" json:"name"`
	Slug          string        `bson:"slug,omitempty" json:"slug"`
	Brand         string        `bson:"brand,omitempty" json:"brand"`
	Category      string        `bson:"category,omitempty" json:"category"`
	Description   string        `bson:"description,omitempty" json:"description"`
	Price         float64       `bson:"price" json:"price"`
	SalePrice     *float64      `bson:"salePrice,omitempty" json:"salePrice,omitempty"`
	StockQuantity *int          `bson:"stockQuantity,omitempty" json:"stockQuantity,omitempty"` // nil means not tracked
	IsActive      bool          `bson:"isActive" json:"isActive"`
	IsFeatured    bool          `bson:"isFeatured,omitempty" json:"isFeatured"`
	Sizes         []string      `bson:"sizes,omitempty" json:"sizes"`
	Colors        []string      `bson:"colors,omitempty" json:"colors"`
	Images        []string      `bson:"images,omitempty" json:"images"`
	CreatedAt     time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// EffectivePrice is the price a shopper would actually pay.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice < p.Price {
		return *p.SalePrice
	}
	return p.Price
}
