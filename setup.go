package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/questhub/services-multimedia/config"
	"github.com/questhub/services-multimedia/health"
	"github.com/questhub/services-multimedia/logging"
	"github.com/questhub/services-multimedia/tracing"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// maxFrameSize bounds a single stream message. Files larger than this must
// be split into multiple chunks by the client.
const maxFrameSize = 20 * 1024 * 1024

type App struct {
	Server       *grpc.Server
	HealthServer *grpchealth.Server

	Mongo    *mongo.Client
	DynamoDB *dynamodb.Client
	S3       *s3.Client
	Sqs      *sqs.Client
	Redis    *redis.Client

	Config    config.Config
	AwsConfig aws.Config

	Services       *Services
	TracerProvider *trace.TracerProvider
	Logger         logging.Logger
}

func SetupApp(ctx context.Context) (*App, error) {
	cfg := config.LoadConfig()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	appLogger := logging.NewSlogLogger(logging.CreateAppLogger(cfg.Env))

	app := &App{
		Config: cfg,
		Logger: appLogger,
	}

	if cfg.NeedsAWS() {
		awsCfg, err := initAWS(ctx, cfg.AWSConfig)
		if err != nil {
			return nil, err
		}
		app.AwsConfig = awsCfg

		if cfg.StorageConfig.PostsBackend == config.PostsBackendDynamoDB {
			app.DynamoDB = dynamodb.NewFromConfig(awsCfg)
		}
		if cfg.StorageConfig.BlobBackend == config.BlobBackendS3 {
			app.S3 = s3.NewFromConfig(awsCfg)
		}
		if cfg.ServiceConfig.UploadsNotificationsQueueName != "" {
			app.Sqs = sqs.NewFromConfig(awsCfg)
		}
	}

	if cfg.StorageConfig.PostsBackend == config.PostsBackendMongo {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoConfig.URI))
		if err != nil {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}
		app.Mongo = client
	}

	if cfg.RedisConfig.Host != "" {
		app.Redis = redis.NewClient(&redis.Options{
			Addr: cfg.RedisConfig.Host,
		})
	}

	if cfg.Tracing {
		tp, err := tracing.InitTracer(ctx, "multimedia", cfg.TracingAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to start tracing: %w", err)
		}
		app.TracerProvider = tp
	}

	services, err := BuildServices(app)
	if err != nil {
		return nil, err
	}
	app.Services = services

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(maxFrameSize),
	}
	if a.Config.Tracing {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	a.Server = grpc.NewServer(opts...)
	a.createHealthServer(ctx)
	a.RegisterHandlers()

	l, err := net.Listen("tcp", a.Config.ServiceConfig.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.Config.ServiceConfig.GRPCAddr, err)
	}

	a.Logger.Info("grpc server started",
		"addr", a.Config.ServiceConfig.GRPCAddr,
		"posts_backend", a.Config.StorageConfig.PostsBackend,
		"blob_backend", a.Config.StorageConfig.BlobBackend)

	return a.Server.Serve(l)
}

func (a *App) createHealthServer(ctx context.Context) {
	a.HealthServer = grpchealth.NewServer()

	// start pessimistic
	a.HealthServer.SetServingStatus(
		"",
		healthpb.HealthCheckResponse_NOT_SERVING,
	)
	healthpb.RegisterHealthServer(a.Server, a.HealthServer)

	checks := []health.ReadinessCheck{
		a.Services.Stores.posts,
		a.Services.Stores.blobs,
	}

	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				status := healthpb.HealthCheckResponse_SERVING

				for _, c := range checks {
					cctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
					err := c.IsReady(cctx)
					cancel()

					if err != nil {
						a.Logger.Warn("readiness check failed", "check", c.Name(), "error", err)
						status = healthpb.HealthCheckResponse_NOT_SERVING
						break
					}
				}

				a.HealthServer.SetServingStatus("", status)
			}
		}
	}()
}

func initAWS(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}

func (a *App) Shutdown(ctx context.Context) error {
	log.Println("starting graceful shutdown")

	if a.Server != nil {
		done := make(chan struct{})
		go func() {
			a.Server.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			a.Server.Stop() // force
		}
	}

	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			log.Printf("mongodb disconnect error: %v", err)
		}
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Printf("redis close error: %v", err)
		}
	}

	if a.TracerProvider != nil {
		if err := a.TracerProvider.Shutdown(ctx); err != nil {
			log.Printf("tracer shutdown error: %v", err)
		}
	}

	log.Println("graceful shutdown complete")
	return nil
}
