package services

import (
	"context"
	"errors"
	"time"

	"pinboard-backend/internal/models"
	"pinboard-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PinService struct {
	pins  store.PinStore
	moves store.MoveStore
}

func NewPinService(pins store.PinStore, moves store.MoveStore) *PinService {
	return &PinService{pins: pins, moves: moves}
}

func (s *PinService) List(ctx context.Context, owner, placeID string) ([]models.Pin, error) {
	oid, err := primitive.ObjectIDFromHex(placeID)
	if err != nil {
		return nil, validation("invalid place_id")
	}
	return s.pins.ListByPlace(ctx, owner, oid)
}

func (s *PinService) Create(ctx context.Context, owner, placeID string, req models.CreatePinRequest) (*models.Pin, error) {
	oid, err := primitive.ObjectIDFromHex(placeID)
	if err != nil {
		return nil, validation("invalid place_id")
	}
	if req.Name == nil || req.Emoji == nil || req.Color == nil || req.X == nil || req.Y == nil {
		return nil, validation("fields 'name', 'emoji', 'color', 'x' and 'y' are required")
	}

	pin := &models.Pin{
		PlaceID: oid,
		Owner:   owner,
		Name:    *req.Name,
		Emoji:   *req.Emoji,
		Color:   *req.Color,
		X:       *req.X,
		Y:       *req.Y,
		Updated: time.Now().UTC(),
	}
	if req.Comment != nil {
		pin.Comment = *req.Comment
	}
	if err := s.pins.Insert(ctx, pin); err != nil {
		return nil, err
	}
	return pin, nil
}

func (s *PinService) Update(ctx context.Context, owner, pinID string, upd models.PinUpdate) (*models.Pin, error) {
	oid, err := primitive.ObjectIDFromHex(pinID)
	if err != nil {
		return nil, validation("invalid pin_id")
	}
	if upd.Empty() {
		return nil, validation("no updatable fields provided")
	}

	pin, err := s.pins.Update(ctx, owner, oid, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("pin not found")
		}
		return nil, err
	}
	return pin, nil
}

func (s *PinService) Delete(ctx context.Context, owner, pinID string) error {
	oid, err := primitive.ObjectIDFromHex(pinID)
	if err != nil {
		return validation("invalid pin_id")
	}
	if err := s.pins.Delete(ctx, owner, oid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("pin not found")
		}
		return err
	}
	return nil
}

// Move appends an audit-log entry for the legacy move endpoint. The item id
// is recorded as-is and the item itself is never touched.
func (s *PinService) Move(ctx context.Context, owner, itemID string, req models.MoveRequest) (*models.MoveEntry, error) {
	if req.NewX == nil || req.NewY == nil {
		return nil, validation("missing 'newX' or 'newY'")
	}

	entry := &models.MoveEntry{
		ItemID:  itemID,
		Owner:   owner,
		NewX:    *req.NewX,
		NewY:    *req.NewY,
		MovedAt: time.Now().UTC(),
	}
	if err := s.moves.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
