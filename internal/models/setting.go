package models

// LastPlace is the per-user "last opened place" pointer, upserted into the
// settings collection. At most one exists per owner.
type LastPlace struct {
	Owner     string `bson:"owner" json:"-"`
	PlaceID   string `bson:"place_id" json:"placeId"`
	PlaceName string `bson:"place_name" json:"placeName"`
}

type LastPlaceRequest struct {
	PlaceID   string `json:"placeId"`
	PlaceName string `json:"placeName"`
}
