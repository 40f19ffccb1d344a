package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusApproved ReviewStatus = "APPROVED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

type Review struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID   bson.ObjectID `bson:"productId" json:"productId"`
	AuthorName  string        `bson:"authorName" json:"authorName"`
	AuthorEmail string        `bson:"authorEmail,omitempty" json:"-"`
	Rating      int           `bson:"rating" json:"rating"` // 1..5
	Title       string        `bson:"title,omitempty" json:"title,omitempty"`
	Body        string        `bson:"body,omitempty" json:"body,omitempty"`
	Status      ReviewStatus  `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
