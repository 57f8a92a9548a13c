package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Pin struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PlaceID primitive.ObjectID `bson:"place_id" json:"place_id"`
	Owner   string             `bson:"owner" json:"-"`
	Name    string             `bson:"name" json:"name"`
	Emoji   string             `bson:"emoji" json:"emoji"`
	Color   string             `bson:"color" json:"color"`
	X       float64            `bson:"x" json:"x"`
	Y       float64            `bson:"y" json:"y"`
	Comment string             `bson:"comment" json:"comment"`
	Updated time.Time          `bson:"updated" json:"updated"`
}

// CreatePinRequest uses pointers so missing fields can be told apart from
// zero values.
type CreatePinRequest struct {
	Name    *string  `json:"name"`
	Emoji   *string  `json:"emoji"`
	Color   *string  `json:"color"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Comment *string  `json:"comment"`
}

// PinUpdate carries the subset of pin fields a PUT may change. Nil fields
// are left untouched.
type PinUpdate struct {
	Name    *string  `json:"name"`
	Emoji   *string  `json:"emoji"`
	Color   *string  `json:"color"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Comment *string  `json:"comment"`
}

// Empty reports whether the update contains no recognized fields.
func (u PinUpdate) Empty() bool {
	return u.Name == nil && u.Emoji == nil && u.Color == nil &&
		u.X == nil && u.Y == nil && u.Comment == nil
}
