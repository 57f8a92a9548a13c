package store

import (
	"context"
	"errors"

	"pinboard-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

type UserStore interface {
	// Create inserts a new user. Returns ErrDuplicate if the username is taken.
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type PlaceStore interface {
	// Insert stores a place and fills in its generated id.
	Insert(ctx context.Context, place *models.Place) error
	// Get returns the place with the given id owned by owner.
	Get(ctx context.Context, owner string, id primitive.ObjectID) (*models.Place, error)
}

type PinStore interface {
	ListByPlace(ctx context.Context, owner string, placeID primitive.ObjectID) ([]models.Pin, error)
	Insert(ctx context.Context, pin *models.Pin) error
	// Update applies the non-nil fields of upd to the owned pin and returns
	// the updated document.
	Update(ctx context.Context, owner string, id primitive.ObjectID, upd models.PinUpdate) (*models.Pin, error)
	Delete(ctx context.Context, owner string, id primitive.ObjectID) error
}

type HistoryStore interface {
	// ListByPlace returns entries ordered by time ascending.
	ListByPlace(ctx context.Context, owner string, placeID primitive.ObjectID) ([]models.HistoryEntry, error)
	Insert(ctx context.Context, entry *models.HistoryEntry) error
}

type MoveStore interface {
	Insert(ctx context.Context, entry *models.MoveEntry) error
}

type SettingStore interface {
	// GetLastPlace returns ErrNotFound when the owner has no record.
	GetLastPlace(ctx context.Context, owner string) (*models.LastPlace, error)
	SetLastPlace(ctx context.Context, lp *models.LastPlace) error
	// ClearLastPlace is idempotent.
	ClearLastPlace(ctx context.Context, owner string) error
}

// Stores bundles every store the services need, so the whole persistence
// layer can be swapped at once (Mongo in production, in-memory in tests).
type Stores struct {
	Users    UserStore
	Places   PlaceStore
	Pins     PinStore
	History  HistoryStore
	Moves    MoveStore
	Settings SettingStore
}
