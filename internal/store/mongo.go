package store

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names match the original deployment so existing data keeps
// working.
const (
	colUsers    = "users"
	colPlaces   = "places"
	colPins     = "pins"
	colHistory  = "history"
	colMoves    = "changeLocation"
	colSettings = "settings"
)

// NewMongoStores wires every store to collections of the given database.
func NewMongoStores(db *mongo.Database) *Stores {
	return &Stores{
		Users:    &mongoUserStore{col: db.Collection(colUsers)},
		Places:   &mongoPlaceStore{col: db.Collection(colPlaces)},
		Pins:     &mongoPinStore{col: db.Collection(colPins)},
		History:  &mongoHistoryStore{col: db.Collection(colHistory)},
		Moves:    &mongoMoveStore{col: db.Collection(colMoves)},
		Settings: &mongoSettingStore{col: db.Collection(colSettings)},
	}
}
