package services

import (
	"context"
	"fmt"
	"time"

	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/caching"
	"github.com/questhub/services-multimedia/logging"
	"github.com/questhub/services-multimedia/models"
	"github.com/questhub/services-multimedia/queues"
	"github.com/questhub/services-multimedia/store"
)

type UploadService interface {
	Commit(ctx context.Context, session *UploadSession) (*models.MultimediaRecord, error)
}

type UploadServiceImpl struct {
	postStore   store.PostStore
	fileStorage store.FileStorage
	cachingSvc  caching.CachingService
	notifier    queues.UploadsNotifier

	logger logging.Logger
	now    func() time.Time
}

func NewUploadServiceImpl(
	postStore store.PostStore,
	fileStorage store.FileStorage,
	cachingSvc caching.CachingService,
	notifier queues.UploadsNotifier,
	l logging.Logger,
) *UploadServiceImpl {
	return &UploadServiceImpl{
		postStore:   postStore,
		fileStorage: fileStorage,
		cachingSvc:  cachingSvc,
		notifier:    notifier,
		logger:      l,
		now:         time.Now,
	}
}

// Commit finalizes one upload session: assemble the buffered chunks, write
// the blob, append the metadata record to the owning post. Any failure
// aborts the commit; nothing is retried here, a retried upload is a fresh
// commit with a fresh generated filename. The blob write and the metadata
// append are not transactional across the two stores: a failed append can
// leave an orphaned blob behind, which is accepted.
func (svc *UploadServiceImpl) Commit(ctx context.Context, session *UploadSession) (*models.MultimediaRecord, error) {
	if session.Empty() || session.PostID() == "" {
		return nil, apperror.MissingField("post_id")
	}

	commitTime := svc.now().UTC()
	filename := session.StoredFilename(commitTime)

	locator, err := svc.fileStorage.Write(ctx, filename, session.Assemble())
	if err != nil {
		svc.logger.Error("blob write failed", "post_id", session.PostID(), "filename", filename, "error", err)
		return nil, err
	}

	rec := models.MultimediaRecord{
		Filename:         filename,
		OriginalFilename: session.OriginalFilename(),
		ContentType:      session.ContentType(),
		FileURL:          locator,
		UploadedAt:       commitTime,
	}

	if err := svc.postStore.AppendMultimedia(ctx, session.PostID(), rec); err != nil {
		// The blob is already durable; reconciliation of orphans is out of
		// scope here.
		svc.logger.Error("metadata append failed, blob orphaned",
			"post_id", session.PostID(), "locator", locator, "error", err)
		return nil, err
	}

	if err := svc.cachingSvc.Delete(ctx, multimediaCacheKey(session.PostID())); err != nil {
		svc.logger.Warn("multimedia cache invalidation failed", "post_id", session.PostID(), "error", err)
	}

	evt := models.UploadCompletedEvent{
		PostID:      session.PostID(),
		Filename:    rec.Filename,
		FileURL:     rec.FileURL,
		ContentType: rec.ContentType,
		UploadedAt:  rec.UploadedAt,
	}
	if err := svc.notifier.PublishUploadCompleted(ctx, evt); err != nil {
		svc.logger.Warn("upload notification failed", "post_id", session.PostID(), "error", err)
	}

	svc.logger.Info("upload committed",
		"post_id", session.PostID(), "filename", filename, "size", session.Size(), "locator", locator)

	return &rec, nil
}

func multimediaCacheKey(postID string) string {
	return fmt.Sprintf("post:multimedia:%s", postID)
}
