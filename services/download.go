package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/caching"
	"github.com/questhub/services-multimedia/logging"
	"github.com/questhub/services-multimedia/models"
	"github.com/questhub/services-multimedia/store"
)

const multimediaCacheTTL = 30 * time.Second

type DownloadService interface {
	Get(ctx context.Context, postID string) ([]models.DownloadItem, error)
}

type DownloadServiceImpl struct {
	postStore   store.PostStore
	fileStorage store.FileStorage
	cachingSvc  caching.CachingService

	logger logging.Logger
}

func NewDownloadServiceImpl(
	postStore store.PostStore,
	fileStorage store.FileStorage,
	cachingSvc caching.CachingService,
	l logging.Logger,
) *DownloadServiceImpl {
	return &DownloadServiceImpl{
		postStore:   postStore,
		fileStorage: fileStorage,
		cachingSvc:  cachingSvc,
		logger:      l,
	}
}

// Get loads the post's multimedia records and resolves each blob, in the
// order the records were committed. A missing blob degrades that one item
// to metadata with empty bytes; any other storage failure fails the call.
func (svc *DownloadServiceImpl) Get(ctx context.Context, postID string) ([]models.DownloadItem, error) {
	if postID == "" {
		return nil, apperror.MissingField("post_id")
	}

	records, err := svc.loadRecords(ctx, postID)
	if err != nil {
		return nil, err
	}

	items := make([]models.DownloadItem, 0, len(records))
	for _, rec := range records {
		item := models.DownloadItem{MultimediaRecord: rec}

		data, err := svc.fileStorage.Read(ctx, rec.FileURL)
		switch {
		case apperror.IsNotFound(err):
			svc.logger.Warn("blob missing for multimedia record, returning metadata only",
				"post_id", postID, "filename", rec.Filename, "locator", rec.FileURL)
		case err != nil:
			return nil, err
		default:
			item.Data = data
		}

		items = append(items, item)
	}

	return items, nil
}

func (svc *DownloadServiceImpl) loadRecords(ctx context.Context, postID string) ([]models.MultimediaRecord, error) {
	key := multimediaCacheKey(postID)

	if cached, err := svc.cachingSvc.Get(ctx, key); err == nil {
		var records []models.MultimediaRecord
		if err := json.Unmarshal(cached, &records); err == nil {
			return records, nil
		}
		svc.logger.Warn("corrupt multimedia cache entry, falling back to store", "post_id", postID)
	} else if !errors.Is(err, caching.ErrCacheMiss) {
		svc.logger.Warn("multimedia cache read failed", "post_id", postID, "error", err)
	}

	post, err := svc.postStore.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(post.Multimedia); err == nil {
		if err := svc.cachingSvc.Set(ctx, key, encoded, multimediaCacheTTL); err != nil {
			svc.logger.Warn("multimedia cache write failed", "post_id", postID, "error", err)
		}
	}

	return post.Multimedia, nil
}
