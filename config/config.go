package config

import (
	"fmt"
	"os"
)

const (
	PostsBackendMongo    = "mongo"
	PostsBackendDynamoDB = "dynamodb"

	BlobBackendDisk = "disk"
	BlobBackendS3   = "s3"
)

type ServiceConfig struct {
	GRPCAddr                      string
	UploadsNotificationsQueueName string
}

type MongoConfig struct {
	URI      string
	Database string
}

type DynamoDBConfig struct {
	PostsTableName string
}

type StorageConfig struct {
	PostsBackend string
	BlobBackend  string
	UploadDir    string
	S3Bucket     string
}

type AWSConfig struct {
	Region    string
	AccountID string
}

type RedisConfig struct {
	Host string
}

type Config struct {
	Env         string
	Tracing     bool
	TracingAddr string

	ServiceConfig  ServiceConfig
	MongoConfig    MongoConfig
	DynamoDBConfig DynamoDBConfig
	StorageConfig  StorageConfig
	AWSConfig      AWSConfig
	RedisConfig    RedisConfig
}

func LoadConfig() Config {
	return Config{
		Env:         getEnv("ENV", "dev"),
		Tracing:     getEnv("TRACING", "") == "true",
		TracingAddr: getEnv("TRACING_ADDR", "localhost:4318"),
		ServiceConfig: ServiceConfig{
			GRPCAddr:                      getEnv("GRPC_ADDR", ":9300"),
			UploadsNotificationsQueueName: getEnv("UPLOADS_NOTIFICATIONS_QUEUE", ""),
		},
		MongoConfig: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DB", "questhub"),
		},
		DynamoDBConfig: DynamoDBConfig{
			PostsTableName: getEnv("POSTS_TABLE_NAME", "posts"),
		},
		StorageConfig: StorageConfig{
			PostsBackend: getEnv("POSTS_BACKEND", PostsBackendMongo),
			BlobBackend:  getEnv("BLOB_BACKEND", BlobBackendDisk),
			UploadDir:    getEnv("UPLOAD_DIR", "/var/lib/questhub/uploads/posts"),
			S3Bucket:     getEnv("S3_BUCKET", ""),
		},
		AWSConfig: AWSConfig{
			Region:    getEnv("AWS_REGION", "us-east-1"),
			AccountID: getEnv("AWS_ACCOUNT_ID", ""),
		},
		RedisConfig: RedisConfig{
			Host: getEnv("REDIS_HOST", ""),
		},
	}
}

// NeedsAWS reports whether any configured backend talks to AWS.
func (c Config) NeedsAWS() bool {
	return c.StorageConfig.PostsBackend == PostsBackendDynamoDB ||
		c.StorageConfig.BlobBackend == BlobBackendS3 ||
		c.ServiceConfig.UploadsNotificationsQueueName != ""
}

func (c Config) Validate() error {
	switch c.StorageConfig.PostsBackend {
	case PostsBackendMongo, PostsBackendDynamoDB:
	default:
		return fmt.Errorf("unknown posts backend %q", c.StorageConfig.PostsBackend)
	}

	switch c.StorageConfig.BlobBackend {
	case BlobBackendDisk:
	case BlobBackendS3:
		if c.StorageConfig.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for the s3 blob backend")
		}
	default:
		return fmt.Errorf("unknown blob backend %q", c.StorageConfig.BlobBackend)
	}

	if c.NeedsAWS() {
		if err := c.AWSConfig.ValidateSecrets(); err != nil {
			return err
		}
	}

	return nil
}

func (c AWSConfig) ValidateSecrets() error {
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" || os.Getenv("AWS_SECRET_ACCESS_KEY") == "" {
		return fmt.Errorf("aws security credentials were not found")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
