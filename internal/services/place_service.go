package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pinboard-backend/internal/blobstore"
	"pinboard-backend/internal/models"
	"pinboard-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaceService struct {
	places store.PlaceStore
	blobs  blobstore.Store
}

func NewPlaceService(places store.PlaceStore, blobs blobstore.Store) *PlaceService {
	return &PlaceService{places: places, blobs: blobs}
}

// Create stores the uploaded image in the blob store and inserts a place
// document referencing it. An owner may hold any number of places.
func (s *PlaceService) Create(ctx context.Context, owner, name string, image []byte, filename, contentType string) (*models.Place, error) {
	if name == "" || len(image) == 0 {
		return nil, validation("both 'name' and image file are required")
	}

	imageID, err := s.blobs.Put(ctx, image, filename, contentType)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	place := &models.Place{
		Owner:   owner,
		Name:    name,
		ImageID: imageID,
		Created: time.Now().UTC(),
	}
	if err := s.places.Insert(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *PlaceService) Get(ctx context.Context, owner, placeID string) (*models.Place, error) {
	oid, err := primitive.ObjectIDFromHex(placeID)
	if err != nil {
		return nil, validation("invalid place_id")
	}

	place, err := s.places.Get(ctx, owner, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("place not found")
		}
		return nil, err
	}
	return place, nil
}

// GetImage returns the place's stored image bytes. Any malformed id, missing
// place, or missing blob comes back as a not-found.
func (s *PlaceService) GetImage(ctx context.Context, owner, placeID string) (*blobstore.Blob, error) {
	oid, err := primitive.ObjectIDFromHex(placeID)
	if err != nil {
		return nil, notFound("place not found")
	}

	place, err := s.places.Get(ctx, owner, oid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("place not found")
		}
		return nil, err
	}
	if place.ImageID == "" {
		return nil, notFound("place has no image")
	}

	blob, err := s.blobs.Get(ctx, place.ImageID)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, notFound("image not found")
		}
		return nil, err
	}
	return blob, nil
}
