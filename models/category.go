package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Category struct {
	Id          bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string         `bson:"name" json:"name"`
	Slug        string         `bson:"slug" json:"slug"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	ParentId    *bson.ObjectID `bson:"parentId,omitempty" json:"parentId,omitempty"` // nil means root
	IsActive    bool           `bson:"isActive" json:"isActive"`
	ImageUrl    string         `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
