package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Place is a background image that pins are attached to. ImageID refers to
// the blob store object holding the uploaded image.
type Place struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Owner   string             `bson:"owner" json:"-"`
	Name    string             `bson:"name" json:"name"`
	ImageID string             `bson:"image_id,omitempty" json:"-"`
	Created time.Time          `bson:"created" json:"created"`
}
