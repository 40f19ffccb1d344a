package catalog

import (
	"context"
	"errors"

	"github.com/roycode360/theglamstore-sub001/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoCategoryStore adapts a categories collection to CategoryStore.
type MongoCategoryStore struct {
	Col *mongo.Collection
}

func (s *MongoCategoryStore) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.findOne(ctx, bson.M{"slug": slug})
}

func (s *MongoCategoryStore) FindBySlugPattern(ctx context.Context, p Pattern) (*models.Category, error) {
	return s.findOne(ctx, bson.M{"slug": p.Regex()})
}

func (s *MongoCategoryStore) findOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	var cat models.Category
	err := s.Col.FindOne(ctx, filter).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *MongoCategoryStore) FindByParent(ctx context.Context, parentID bson.ObjectID) ([]models.Category, error) {
	cursor, err := s.Col.Find(ctx, bson.M{"parentId": parentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	children := make([]models.Category, 0)
	for cursor.Next(ctx) {
		var cat models.Category
		if err := cursor.Decode(&cat); err != nil {
			return nil, err
		}
		children = append(children, cat)
	}
	return children, cursor.Err()
}

// MongoProductStore adapts a products collection to ProductStore.
type MongoProductStore struct {
	Col *mongo.Collection
}

func (s *MongoProductStore) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(sort).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, cursor.Err()
}

func (s *MongoProductStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.Col.CountDocuments(ctx, filter)
}
