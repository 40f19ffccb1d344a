package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type OrderItem struct {
	ProductID bson.ObjectID `bson:"productId" json:"productId"`
	Name      string        `bson:"name" json:"name"`
	Image     string        `bson:"image,omitempty" json:"image,omitempty"`
	UnitPrice float64       `bson:"unitPrice" json:"unitPrice"` // effective price at order time
	Size      string        `bson:"size,omitempty" json:"size,omitempty"`
	Color     string        `bson:"color,omitempty" json:"color,omitempty"`
	Quantity  int           `bson:"quantity" json:"quantity"`
}

type ShippingAddress struct {
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country" json:"country"`
}

type Order struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	OrderNumber string          `bson:"orderNumber" json:"orderNumber"`
	UserID      bson.ObjectID   `bson:"userId" json:"userId"`
	FullName    string          `bson:"fullName" json:"fullName"`
	Email       string          `bson:"email" json:"email"`
	Phone       string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     ShippingAddress `bson:"address" json:"address"`
	Items       []OrderItem     `bson:"items" json:"items"`
	Subtotal    float64         `bson:"subtotal" json:"subtotal"`
	CouponCode  string          `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	Status      OrderStatus     `bson:"status" json:"status"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}
