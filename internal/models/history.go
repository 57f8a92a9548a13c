package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HistoryEntry records one pin position change. Entries are append-only.
type HistoryEntry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PlaceID primitive.ObjectID `bson:"place_id" json:"place_id"`
	PinID   primitive.ObjectID `bson:"pin_id" json:"pin_id"`
	Owner   string             `bson:"owner" json:"-"`
	X       float64            `bson:"x" json:"x"`
	Y       float64            `bson:"y" json:"y"`
	Time    time.Time          `bson:"time" json:"time"`
}

type RecordHistoryRequest struct {
	PinID *string  `json:"pin_id"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
}

// MoveEntry is an audit log row written by the legacy /items/:id/move
// endpoint. The item id is kept as an opaque string and the referenced
// item itself is never mutated.
type MoveEntry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID  string             `bson:"itemId" json:"itemId"`
	Owner   string             `bson:"owner" json:"-"`
	NewX    float64            `bson:"newX" json:"newX"`
	NewY    float64            `bson:"newY" json:"newY"`
	MovedAt time.Time          `bson:"movedAt" json:"movedAt"`
}

type MoveRequest struct {
	NewX *float64 `json:"newX"`
	NewY *float64 `json:"newY"`
}
