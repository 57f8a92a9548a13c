package store

import (
	"context"
	"errors"
	"fmt"

	"pinboard-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoSettingStore struct {
	col *mongo.Collection
}

func (s *mongoSettingStore) GetLastPlace(ctx context.Context, owner string) (*models.LastPlace, error) {
	var lp models.LastPlace
	err := s.col.FindOne(ctx, bson.M{"owner": owner}).Decode(&lp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find last place: %w", err)
	}
	return &lp, nil
}

func (s *mongoSettingStore) SetLastPlace(ctx context.Context, lp *models.LastPlace) error {
	filter := bson.M{"owner": lp.Owner}
	update := bson.M{"$set": bson.M{"place_id": lp.PlaceID, "place_name": lp.PlaceName}}
	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert last place: %w", err)
	}
	return nil
}

func (s *mongoSettingStore) ClearLastPlace(ctx context.Context, owner string) error {
	if _, err := s.col.DeleteOne(ctx, bson.M{"owner": owner}); err != nil {
		return fmt.Errorf("delete last place: %w", err)
	}
	return nil
}
