// Package gridfs stores blobs in MongoDB GridFS, next to the document
// collections. Blob ids are the hex form of the GridFS file id.
package gridfs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"pinboard-backend/internal/blobstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	bucket *gridfs.Bucket
}

func New(db *mongo.Database) (*Store, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, fmt.Errorf("create gridfs bucket: %w", err)
	}
	return &Store{bucket: bucket}, nil
}

type fileMetadata struct {
	ContentType string `bson:"contentType"`
}

func (s *Store) Put(_ context.Context, data []byte, filename, contentType string) (string, error) {
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	id, err := s.bucket.UploadFromStream(filename, bytes.NewReader(data), opts)
	if err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	return id.Hex(), nil
}

func (s *Store) Get(_ context.Context, id string) (*blobstore.Blob, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, blobstore.ErrNotFound
	}

	ds, err := s.bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, blobstore.ErrNotFound
		}
		return nil, fmt.Errorf("gridfs open: %w", err)
	}
	defer ds.Close()

	data, err := io.ReadAll(ds)
	if err != nil {
		return nil, fmt.Errorf("gridfs read: %w", err)
	}

	file := ds.GetFile()
	var meta fileMetadata
	if len(file.Metadata) > 0 {
		// Content type is best effort; old files may lack metadata.
		_ = bson.Unmarshal(file.Metadata, &meta)
	}

	return &blobstore.Blob{
		Data:        data,
		Filename:    file.Name,
		ContentType: meta.ContentType,
	}, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return blobstore.ErrNotFound
	}
	if err := s.bucket.Delete(oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return blobstore.ErrNotFound
		}
		return fmt.Errorf("gridfs delete: %w", err)
	}
	return nil
}
