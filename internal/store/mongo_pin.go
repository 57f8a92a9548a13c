package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pinboard-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPinStore struct {
	col *mongo.Collection
}

func (s *mongoPinStore) ListByPlace(ctx context.Context, owner string, placeID primitive.ObjectID) ([]models.Pin, error) {
	cur, err := s.col.Find(ctx, bson.M{"place_id": placeID, "owner": owner})
	if err != nil {
		return nil, fmt.Errorf("find pins: %w", err)
	}
	defer cur.Close(ctx)

	pins := []models.Pin{}
	if err := cur.All(ctx, &pins); err != nil {
		return nil, fmt.Errorf("decode pins: %w", err)
	}
	return pins, nil
}

func (s *mongoPinStore) Insert(ctx context.Context, pin *models.Pin) error {
	res, err := s.col.InsertOne(ctx, pin)
	if err != nil {
		return fmt.Errorf("insert pin: %w", err)
	}
	pin.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoPinStore) Update(ctx context.Context, owner string, id primitive.ObjectID, upd models.PinUpdate) (*models.Pin, error) {
	set := bson.M{"updated": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Emoji != nil {
		set["emoji"] = *upd.Emoji
	}
	if upd.Color != nil {
		set["color"] = *upd.Color
	}
	if upd.X != nil {
		set["x"] = *upd.X
	}
	if upd.Y != nil {
		set["y"] = *upd.Y
	}
	if upd.Comment != nil {
		set["comment"] = *upd.Comment
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var pin models.Pin
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "owner": owner}, bson.M{"$set": set}, opts).Decode(&pin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update pin: %w", err)
	}
	return &pin, nil
}

func (s *mongoPinStore) Delete(ctx context.Context, owner string, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return fmt.Errorf("delete pin: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
