package store

import (
	"context"
	"errors"
	"time"

	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/models"
	"github.com/questhub/services-multimedia/retries"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const postsCollection = "posts"

type MongoPostStoreImpl struct {
	client *mongo.Client
	posts  *mongo.Collection
}

func NewMongoPostStoreImpl(client *mongo.Client, database string) *MongoPostStoreImpl {
	return &MongoPostStoreImpl{
		client: client,
		posts:  client.Database(database).Collection(postsCollection),
	}
}

func (s *MongoPostStoreImpl) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	return retries.Retry(
		ctx,
		retries.HealthAttempts,
		retries.HealthBaseDelay,
		func() error {
			return s.client.Ping(ctx, nil)
		},
		retries.Always,
	)
}

func (s *MongoPostStoreImpl) Name() string {
	return "PostStore[mongo]"
}

func (s *MongoPostStoreImpl) FindByID(ctx context.Context, postID string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidRequest, "malformed post id", err)
	}

	var post models.Post
	err = s.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.ErrPostNotFound
	}
	if err != nil {
		return nil, apperror.Wrap(apperror.KindStorageUnavailable, "find post", err)
	}

	post.ID = postID
	return &post, nil
}

// AppendMultimedia pushes one record onto the post's multimedia array. The
// single-document $push is atomic on the server, so concurrent commits to
// the same post never lose an element.
func (s *MongoPostStoreImpl) AppendMultimedia(ctx context.Context, postID string, rec models.MultimediaRecord) error {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return apperror.Wrap(apperror.KindInvalidRequest, "malformed post id", err)
	}

	res, err := s.posts.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"multimedia": rec}},
	)
	if err != nil {
		return apperror.Wrap(apperror.KindStorageUnavailable, "append multimedia record", err)
	}
	if res.MatchedCount == 0 {
		return apperror.ErrPostNotFound
	}

	return nil
}
