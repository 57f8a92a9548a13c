package services

import (
	"context"
	"errors"

	"pinboard-backend/internal/models"
	"pinboard-backend/internal/store"
)

type SettingsService struct {
	settings store.SettingStore
}

func NewSettingsService(settings store.SettingStore) *SettingsService {
	return &SettingsService{settings: settings}
}

// GetLastPlace returns nil (not an error) when the owner has no record.
func (s *SettingsService) GetLastPlace(ctx context.Context, owner string) (*models.LastPlace, error) {
	lp, err := s.settings.GetLastPlace(ctx, owner)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return lp, nil
}

func (s *SettingsService) SetLastPlace(ctx context.Context, owner string, req models.LastPlaceRequest) error {
	return s.settings.SetLastPlace(ctx, &models.LastPlace{
		Owner:     owner,
		PlaceID:   req.PlaceID,
		PlaceName: req.PlaceName,
	})
}

func (s *SettingsService) ClearLastPlace(ctx context.Context, owner string) error {
	return s.settings.ClearLastPlace(ctx, owner)
}
