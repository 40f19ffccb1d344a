package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CouponType string

const (
	CouponTypePercent CouponType = "PERCENT"
	CouponTypeFixed   CouponType = "FIXED"
)

type Coupon struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Code        string        `bson:"code" json:"code"` // stored uppercased, unique
	Type        CouponType    `bson:"type" json:"type"`
	Value       float64       `bson:"value" json:"value"`
	MinSubtotal float64       `bson:"minSubtotal,omitempty" json:"minSubtotal,omitempty"`
	ExpiresAt   *time.Time    `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
