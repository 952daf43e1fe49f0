package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/logging"
	"github.com/questhub/services-multimedia/retries"
)

const blobKeyPrefix = "posts"

// S3FileStorageImpl keeps blobs as one object per committed file. Locators
// are object keys within the bucket.
type S3FileStorageImpl struct {
	client     *s3.Client
	bucketName string

	logger logging.Logger
}

func NewS3FileStorageImpl(client *s3.Client, bucketName string, l logging.Logger) *S3FileStorageImpl {
	return &S3FileStorageImpl{
		client:     client,
		bucketName: bucketName,
		logger:     l,
	}
}

func (s *S3FileStorageImpl) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	return retries.Retry(
		ctx,
		retries.HealthAttempts,
		retries.HealthBaseDelay,
		func() error {
			_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
				Bucket: aws.String(s.bucketName),
			})
			return err
		},
		retries.Always,
	)
}

func (s *S3FileStorageImpl) Name() string {
	return "FileStorage[s3]"
}

func (s *S3FileStorageImpl) Write(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(blobKeyPrefix, name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		s.logger.Error("failed to put blob", "key", key, "error", err)
		return "", apperror.Wrap(apperror.KindStorageUnavailable, "write blob", err)
	}

	s.logger.Debug("wrote blob", "key", key, "size", len(data))
	return key, nil
}

func (s *S3FileStorageImpl) Read(ctx context.Context, locator string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(locator),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, apperror.ErrBlobNotFound
		}
		s.logger.Error("failed to get blob", "key", locator, "error", err)
		return nil, apperror.Wrap(apperror.KindStorageUnavailable, "read blob", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		s.logger.Error("failed to read blob body", "key", locator, "error", err)
		return nil, apperror.Wrap(apperror.KindStorageUnavailable, "read blob", err)
	}

	return data, nil
}

func isNoSuchKey(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}

	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey"
}
