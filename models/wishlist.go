package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// WishlistItem is unique per (user, product).
type WishlistItem struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"userId" json:"userId"`
	ProductID bson.ObjectID `bson:"productId" json:"productId"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
