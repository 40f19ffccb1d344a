package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CartItem keeps one document per (user, product, size, color). Name, image
// and price are copied from the product at add time so the cart stays
// renderable if the product is later edited or disabled.
type CartItem struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"userId" json:"userId"`
	ProductID bson.ObjectID `bson:"productId" json:"productId"`
	Name      string        `bson:"name" json:"name"`
	Image     string        `bson:"image,omitempty" json:"image,omitempty"`
	UnitPrice float64       `bson:"unitPrice" json:"unitPrice"`
	Size      string        `bson:"size,omitempty" json:"size,omitempty"`
	Color     string        `bson:"color,omitempty" json:"color,omitempty"`
	Quantity  int           `bson:"quantity" json:"quantity"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}
