package services

import (
	"context"
	"time"

	"pinboard-backend/internal/models"
	"pinboard-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HistoryService struct {
	history store.HistoryStore
}

func NewHistoryService(history store.HistoryStore) *HistoryService {
	return &HistoryService{history: history}
}

// List returns the place's history ordered by time ascending.
func (s *HistoryService) List(ctx context.Context, owner, placeID string) ([]models.HistoryEntry, error) {
	oid, err := primitive.ObjectIDFromHex(placeID)
	if err != nil {
		return nil, validation("invalid place_id")
	}
	return s.history.ListByPlace(ctx, owner, oid)
}

// Record appends one immutable entry with a server-assigned timestamp.
func (s *HistoryService) Record(ctx context.Context, owner, placeID string, req models.RecordHistoryRequest) (*models.HistoryEntry, error) {
	if req.PinID == nil || req.X == nil || req.Y == nil {
		return nil, validation("fields 'pin_id', 'x' and 'y' are required")
	}

	placeOID, err := primitive.ObjectIDFromHex(placeID)
	if err != nil {
		return nil, validation("invalid ids")
	}
	pinOID, err := primitive.ObjectIDFromHex(*req.PinID)
	if err != nil {
		return nil, validation("invalid ids")
	}

	entry := &models.HistoryEntry{
		PlaceID: placeOID,
		PinID:   pinOID,
		Owner:   owner,
		X:       *req.X,
		Y:       *req.Y,
		Time:    time.Now().UTC(),
	}
	if err := s.history.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
