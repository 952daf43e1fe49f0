package store

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/models"
	"github.com/questhub/services-multimedia/retries"
)

type DynamoDbPostStoreImpl struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoDbPostStoreImpl(client *dynamodb.Client, tableName string) *DynamoDbPostStoreImpl {
	return &DynamoDbPostStoreImpl{
		client:    client,
		tableName: tableName,
	}
}

func (s *DynamoDbPostStoreImpl) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	return retries.Retry(
		ctx,
		retries.HealthAttempts,
		retries.HealthBaseDelay,
		func() error {
			_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
				TableName: aws.String(s.tableName),
			})
			return err
		},
		retries.Always,
	)
}

func (s *DynamoDbPostStoreImpl) Name() string {
	return "PostStore[dynamodb]"
}

func (s *DynamoDbPostStoreImpl) FindByID(ctx context.Context, postID string) (*models.Post, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"post_id": &types.AttributeValueMemberS{Value: postID},
		},
	})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindStorageUnavailable, "find post", err)
	}

	if out.Item == nil {
		return nil, apperror.ErrPostNotFound
	}

	var post models.Post
	if err = attributevalue.UnmarshalMap(out.Item, &post); err != nil {
		return nil, apperror.Wrap(apperror.KindStorageUnavailable, "decode post", err)
	}

	return &post, nil
}

// AppendMultimedia appends one record with a single conditional list_append
// update, which DynamoDB applies atomically per item. Missing posts fail
// the condition rather than creating a dangling document.
func (s *DynamoDbPostStoreImpl) AppendMultimedia(ctx context.Context, postID string, rec models.MultimediaRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return apperror.Wrap(apperror.KindStorageUnavailable, "encode multimedia record", err)
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"post_id": &types.AttributeValueMemberS{Value: postID},
		},
		UpdateExpression:    aws.String("SET multimedia = list_append(if_not_exists(multimedia, :empty), :rec)"),
		ConditionExpression: aws.String("attribute_exists(post_id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rec": &types.AttributeValueMemberL{
				Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: item}},
			},
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return apperror.ErrPostNotFound
		}
		return apperror.Wrap(apperror.KindStorageUnavailable, "append multimedia record", err)
	}

	return nil
}
