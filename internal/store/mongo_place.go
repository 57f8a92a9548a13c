package store

import (
	"context"
	"errors"
	"fmt"

	"pinboard-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoPlaceStore struct {
	col *mongo.Collection
}

func (s *mongoPlaceStore) Insert(ctx context.Context, place *models.Place) error {
	res, err := s.col.InsertOne(ctx, place)
	if err != nil {
		return fmt.Errorf("insert place: %w", err)
	}
	place.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoPlaceStore) Get(ctx context.Context, owner string, id primitive.ObjectID) (*models.Place, error) {
	var place models.Place
	err := s.col.FindOne(ctx, bson.M{"_id": id, "owner": owner}).Decode(&place)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return &place, nil
}
