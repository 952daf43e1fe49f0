package test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamotypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/models"
	"github.com/questhub/services-multimedia/store"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testDatabase = "questhub_test"

func setupMongo(t *testing.T) *mongo.Client {
	t.Helper()

	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	t.Cleanup(func() {
		_ = client.Database(testDatabase).Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return client
}

func insertPost(t *testing.T, client *mongo.Client) string {
	t.Helper()

	res, err := client.Database(testDatabase).Collection("posts").InsertOne(
		context.Background(),
		bson.M{"title": "integration post", "multimedia": bson.A{}},
	)
	require.NoError(t, err)

	oid, ok := res.InsertedID.(interface{ Hex() string })
	require.True(t, ok)
	return oid.Hex()
}

func TestMongoAppendIsAtomicUnderConcurrency(t *testing.T) {
	client := setupMongo(t)
	postStore := store.NewMongoPostStoreImpl(client, testDatabase)
	postID := insertPost(t, client)

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = postStore.AppendMultimedia(context.Background(), postID, models.MultimediaRecord{
				Filename:         fmt.Sprintf("file_%d.jpg", i),
				OriginalFilename: "file.jpg",
				ContentType:      "image/jpeg",
				FileURL:          fmt.Sprintf("posts/file_%d.jpg", i),
				UploadedAt:       time.Now().UTC(),
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "append %d", i)
	}

	post, err := postStore.FindByID(context.Background(), postID)
	require.NoError(t, err)
	require.Len(t, post.Multimedia, n)
}

func TestMongoFindMissingPost(t *testing.T) {
	client := setupMongo(t)
	postStore := store.NewMongoPostStoreImpl(client, testDatabase)

	_, err := postStore.FindByID(context.Background(), "ffffffffffffffffffffffff")
	require.True(t, errors.Is(err, apperror.ErrPostNotFound))
}

func TestMongoMalformedPostID(t *testing.T) {
	client := setupMongo(t)
	postStore := store.NewMongoPostStoreImpl(client, testDatabase)

	_, err := postStore.FindByID(context.Background(), "not-an-object-id")
	require.Error(t, err)
	require.Equal(t, apperror.KindInvalidRequest, apperror.KindOf(err))
}

func setupDynamo(t *testing.T) *dynamodb.Client {
	t.Helper()

	endpoint := os.Getenv("AWS_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("AWS_TEST_ENDPOINT not set")
	}

	ctx := context.Background()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-1"))
	require.NoError(t, err)

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	_, err = client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String("posts"),
		AttributeDefinitions: []dynamotypes.AttributeDefinition{
			{
				AttributeName: aws.String("post_id"),
				AttributeType: dynamotypes.ScalarAttributeTypeS,
			},
		},
		KeySchema: []dynamotypes.KeySchemaElement{
			{
				AttributeName: aws.String("post_id"),
				KeyType:       dynamotypes.KeyTypeHash,
			},
		},
		BillingMode: dynamotypes.BillingModePayPerRequest,
	})

	var exists *dynamotypes.ResourceInUseException
	if err != nil && !errors.As(err, &exists) {
		require.NoError(t, err)
	}

	return client
}

func TestDynamoAppendToMissingPost(t *testing.T) {
	client := setupDynamo(t)
	postStore := store.NewDynamoDbPostStoreImpl(client, "posts")

	err := postStore.AppendMultimedia(context.Background(), "missing-post", models.MultimediaRecord{
		Filename: "file.jpg",
	})
	require.True(t, errors.Is(err, apperror.ErrPostNotFound))
}

func TestDynamoAppendAndReadBack(t *testing.T) {
	client := setupDynamo(t)
	postStore := store.NewDynamoDbPostStoreImpl(client, "posts")

	postID := fmt.Sprintf("post-%d", time.Now().UnixNano())
	_, err := client.PutItem(context.Background(), &dynamodb.PutItemInput{
		TableName: aws.String("posts"),
		Item: map[string]dynamotypes.AttributeValue{
			"post_id": &dynamotypes.AttributeValueMemberS{Value: postID},
			"title":   &dynamotypes.AttributeValueMemberS{Value: "integration post"},
		},
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, postStore.AppendMultimedia(context.Background(), postID, models.MultimediaRecord{
			Filename:    fmt.Sprintf("file_%d.jpg", i),
			ContentType: "image/jpeg",
			FileURL:     fmt.Sprintf("posts/file_%d.jpg", i),
			UploadedAt:  time.Now().UTC(),
		}))
	}

	post, err := postStore.FindByID(context.Background(), postID)
	require.NoError(t, err)
	require.Len(t, post.Multimedia, 3)
	require.Equal(t, "file_0.jpg", post.Multimedia[0].Filename)
	require.Equal(t, "file_2.jpg", post.Multimedia[2].Filename)
}
