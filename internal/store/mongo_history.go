package store

import (
	"context"
	"fmt"

	"pinboard-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoHistoryStore struct {
	col *mongo.Collection
}

func (s *mongoHistoryStore) ListByPlace(ctx context.Context, owner string, placeID primitive.ObjectID) ([]models.HistoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{"place_id": placeID, "owner": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}
	defer cur.Close(ctx)

	entries := []models.HistoryEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

func (s *mongoHistoryStore) Insert(ctx context.Context, entry *models.HistoryEntry) error {
	res, err := s.col.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

type mongoMoveStore struct {
	col *mongo.Collection
}

func (s *mongoMoveStore) Insert(ctx context.Context, entry *models.MoveEntry) error {
	res, err := s.col.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("insert move entry: %w", err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
