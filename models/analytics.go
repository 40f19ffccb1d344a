package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type AnalyticsEventType string

const (
	EventPageView    AnalyticsEventType = "page_view"
	EventProductView AnalyticsEventType = "product_view"
	EventAddToCart   AnalyticsEventType = "add_to_cart"
	EventOrderPlaced AnalyticsEventType = "order_placed"
)

type AnalyticsEvent struct {
	ID        bson.ObjectID      `bson:"_id,omitempty" json:"id"`
	Type      AnalyticsEventType `bson:"type" json:"type"`
	Path      string             `bson:"path,omitempty" json:"path,omitempty"`
	ProductID *bson.ObjectID     `bson:"productId,omitempty" json:"productId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
