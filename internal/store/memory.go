package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"pinboard-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryStores returns fully in-memory stores with the same semantics as
// the Mongo ones. Used by tests and local development without a database.
func NewMemoryStores() *Stores {
	return &Stores{
		Users:    &memoryUserStore{users: map[string]models.User{}},
		Places:   &memoryPlaceStore{places: map[primitive.ObjectID]models.Place{}},
		Pins:     &memoryPinStore{pins: map[primitive.ObjectID]models.Pin{}},
		History:  &memoryHistoryStore{},
		Moves:    &memoryMoveStore{},
		Settings: &memorySettingStore{lastPlaces: map[string]models.LastPlace{}},
	}
}

type memoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by username
}

func (s *memoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	s.users[user.Username] = *user
	return nil
}

func (s *memoryUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *memoryUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[username]
	return ok, nil
}

type memoryPlaceStore struct {
	mu     sync.RWMutex
	places map[primitive.ObjectID]models.Place
}

func (s *memoryPlaceStore) Insert(_ context.Context, place *models.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	place.ID = primitive.NewObjectID()
	s.places[place.ID] = *place
	return nil
}

func (s *memoryPlaceStore) Get(_ context.Context, owner string, id primitive.ObjectID) (*models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	place, ok := s.places[id]
	if !ok || place.Owner != owner {
		return nil, ErrNotFound
	}
	return &place, nil
}

type memoryPinStore struct {
	mu   sync.RWMutex
	pins map[primitive.ObjectID]models.Pin
}

func (s *memoryPinStore) ListByPlace(_ context.Context, owner string, placeID primitive.ObjectID) ([]models.Pin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pins := []models.Pin{}
	for _, pin := range s.pins {
		if pin.PlaceID == placeID && pin.Owner == owner {
			pins = append(pins, pin)
		}
	}
	sort.Slice(pins, func(i, j int) bool { return pins[i].ID.Hex() < pins[j].ID.Hex() })
	return pins, nil
}

func (s *memoryPinStore) Insert(_ context.Context, pin *models.Pin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pin.ID = primitive.NewObjectID()
	s.pins[pin.ID] = *pin
	return nil
}

func (s *memoryPinStore) Update(_ context.Context, owner string, id primitive.ObjectID, upd models.PinUpdate) (*models.Pin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pin, ok := s.pins[id]
	if !ok || pin.Owner != owner {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		pin.Name = *upd.Name
	}
	if upd.Emoji != nil {
		pin.Emoji = *upd.Emoji
	}
	if upd.Color != nil {
		pin.Color = *upd.Color
	}
	if upd.X != nil {
		pin.X = *upd.X
	}
	if upd.Y != nil {
		pin.Y = *upd.Y
	}
	if upd.Comment != nil {
		pin.Comment = *upd.Comment
	}
	pin.Updated = time.Now().UTC()
	s.pins[id] = pin
	return &pin, nil
}

func (s *memoryPinStore) Delete(_ context.Context, owner string, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pin, ok := s.pins[id]
	if !ok || pin.Owner != owner {
		return ErrNotFound
	}
	delete(s.pins, id)
	return nil
}

type memoryHistoryStore struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
}

func (s *memoryHistoryStore) ListByPlace(_ context.Context, owner string, placeID primitive.ObjectID) ([]models.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := []models.HistoryEntry{}
	for _, e := range s.entries {
		if e.PlaceID == placeID && e.Owner == owner {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Time.Before(entries[j].Time) })
	return entries, nil
}

func (s *memoryHistoryStore) Insert(_ context.Context, entry *models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = primitive.NewObjectID()
	s.entries = append(s.entries, *entry)
	return nil
}

type memoryMoveStore struct {
	mu      sync.Mutex
	entries []models.MoveEntry
}

func (s *memoryMoveStore) Insert(_ context.Context, entry *models.MoveEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = primitive.NewObjectID()
	s.entries = append(s.entries, *entry)
	return nil
}

type memorySettingStore struct {
	mu         sync.RWMutex
	lastPlaces map[string]models.LastPlace
}

func (s *memorySettingStore) GetLastPlace(_ context.Context, owner string) (*models.LastPlace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lp, ok := s.lastPlaces[owner]
	if !ok {
		return nil, ErrNotFound
	}
	return &lp, nil
}

func (s *memorySettingStore) SetLastPlace(_ context.Context, lp *models.LastPlace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPlaces[lp.Owner] = *lp
	return nil
}

func (s *memorySettingStore) ClearLastPlace(_ context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lastPlaces, owner)
	return nil
}
