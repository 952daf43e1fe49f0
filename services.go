package main

import (
	"fmt"

	pb "github.com/questhub/services-multimedia/api"
	"github.com/questhub/services-multimedia/caching"
	"github.com/questhub/services-multimedia/config"
	"github.com/questhub/services-multimedia/handlers"
	"github.com/questhub/services-multimedia/queues"
	"github.com/questhub/services-multimedia/services"
	"github.com/questhub/services-multimedia/store"
)

type Stores struct {
	posts store.PostStore
	blobs store.FileStorage
}

type Services struct {
	Upload   services.UploadService
	Download services.DownloadService
	Notifier queues.UploadsNotifier

	Stores *Stores

	MultimediaHandler pb.MultimediaServiceServer
}

func BuildServices(app *App) (*Services, error) {
	var postStore store.PostStore
	switch app.Config.StorageConfig.PostsBackend {
	case config.PostsBackendDynamoDB:
		postStore = store.NewDynamoDbPostStoreImpl(app.DynamoDB, app.Config.DynamoDBConfig.PostsTableName)
	default:
		postStore = store.NewMongoPostStoreImpl(app.Mongo, app.Config.MongoConfig.Database)
	}

	var fileStorage store.FileStorage
	switch app.Config.StorageConfig.BlobBackend {
	case config.BlobBackendS3:
		fileStorage = store.NewS3FileStorageImpl(app.S3, app.Config.StorageConfig.S3Bucket, app.Logger)
	default:
		diskStorage, err := store.NewDiskStorageImpl(app.Config.StorageConfig.UploadDir, app.Logger)
		if err != nil {
			return nil, fmt.Errorf("init upload dir: %w", err)
		}
		fileStorage = diskStorage
	}

	var cachingSvc caching.CachingService = caching.NewNullCachingService()
	if app.Redis != nil {
		cachingSvc = caching.NewRedisCachingService(app.Redis)
	}

	var notifier queues.UploadsNotifier = queues.NewNullUploadsNotifier()
	if queueName := app.Config.ServiceConfig.UploadsNotificationsQueueName; queueName != "" {
		queueUrl := fmt.Sprintf("https://sqs.%s.amazonaws.com/%s/%s.fifo",
			app.Config.AWSConfig.Region, app.Config.AWSConfig.AccountID, queueName)
		notifier = queues.NewSqsUploadsNotifierImpl(app.Sqs, queueUrl, app.Logger)
	}

	uploadSvc := services.NewUploadServiceImpl(postStore, fileStorage, cachingSvc, notifier, app.Logger)
	downloadSvc := services.NewDownloadServiceImpl(postStore, fileStorage, cachingSvc, app.Logger)

	handler := handlers.NewGrpcHandler(uploadSvc, downloadSvc, app.Logger)

	return &Services{
		Upload:   uploadSvc,
		Download: downloadSvc,
		Notifier: notifier,

		Stores: &Stores{
			posts: postStore,
			blobs: fileStorage,
		},

		MultimediaHandler: handler,
	}, nil
}

func (a *App) RegisterHandlers() {
	pb.RegisterMultimediaServiceServer(a.Server, a.Services.MultimediaHandler)
}
