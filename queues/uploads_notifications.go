package queues

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/questhub/services-multimedia/logging"
	"github.com/questhub/services-multimedia/models"
)

// UploadsNotifier announces committed uploads to downstream consumers.
// Publishing is best-effort: a failure never rolls back the commit.
type UploadsNotifier interface {
	PublishUploadCompleted(ctx context.Context, evt models.UploadCompletedEvent) error
}

type SqsUploadsNotifierImpl struct {
	client   *sqs.Client
	queueUrl string

	logger logging.Logger
}

func NewSqsUploadsNotifierImpl(client *sqs.Client, queueUrl string, l logging.Logger) *SqsUploadsNotifierImpl {
	return &SqsUploadsNotifierImpl{
		client:   client,
		queueUrl: queueUrl,
		logger:   l,
	}
}

func (n *SqsUploadsNotifierImpl) PublishUploadCompleted(ctx context.Context, evt models.UploadCompletedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	// FIFO queue: group by post so events for one post keep commit order.
	_, err = n.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:               aws.String(n.queueUrl),
		MessageBody:            aws.String(string(body)),
		MessageGroupId:         aws.String(evt.PostID),
		MessageDeduplicationId: aws.String(uuid.NewString()),
	})
	if err != nil {
		return err
	}

	n.logger.Debug("published upload completed event", "post_id", evt.PostID, "filename", evt.Filename)
	return nil
}

// NullUploadsNotifier drops every event. Used when no queue is configured
// and in tests.
type NullUploadsNotifier struct{}

func NewNullUploadsNotifier() *NullUploadsNotifier { return &NullUploadsNotifier{} }

func (*NullUploadsNotifier) PublishUploadCompleted(ctx context.Context, evt models.UploadCompletedEvent) error {
	return nil
}
