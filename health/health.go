package health

import "context"

// ReadinessCheck is implemented by every external collaborator (document
// store, blob store) and polled by the gRPC health server.
type ReadinessCheck interface {
	IsReady(ctx context.Context) error
	Name() string
}
