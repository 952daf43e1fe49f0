package store

import (
	"context"

	"github.com/questhub/services-multimedia/health"
)

// FileStorage writes assembled payloads to the content store and reads them
// back. Write returns the locator persisted on the multimedia record; Read
// takes that locator and fails with a NotFound kind when the blob has gone
// missing out-of-band.
type FileStorage interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
	Read(ctx context.Context, locator string) ([]byte, error)

	health.ReadinessCheck
}
