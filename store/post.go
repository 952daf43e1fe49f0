package store

import (
	"context"

	"github.com/questhub/services-multimedia/health"
	"github.com/questhub/services-multimedia/models"
)

// PostStore is the document-store surface the commit and download paths
// depend on. AppendMultimedia must be atomic with respect to concurrent
// appends to the same post: two simultaneous commits may not lose either
// record.
type PostStore interface {
	FindByID(ctx context.Context, postID string) (*models.Post, error)
	AppendMultimedia(ctx context.Context, postID string, rec models.MultimediaRecord) error

	health.ReadinessCheck
}
