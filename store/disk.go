package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/logging"
)

// DiskStorageImpl keeps blobs as plain files under a single upload
// directory. Locators are absolute paths.
type DiskStorageImpl struct {
	dir string

	logger logging.Logger
}

func NewDiskStorageImpl(dir string, l logging.Logger) (*DiskStorageImpl, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}

	return &DiskStorageImpl{dir: abs, logger: l}, nil
}

func (s *DiskStorageImpl) IsReady(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("upload dir is not a directory")
	}
	return nil
}

func (s *DiskStorageImpl) Name() string {
	return "FileStorage[disk]"
}

func (s *DiskStorageImpl) Write(ctx context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("failed to write blob", "path", path, "error", err)
		return "", apperror.Wrap(apperror.KindStorageUnavailable, "write blob", err)
	}

	s.logger.Debug("wrote blob", "path", path, "size", len(data))
	return path, nil
}

func (s *DiskStorageImpl) Read(ctx context.Context, locator string) ([]byte, error) {
	data, err := os.ReadFile(locator)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.ErrBlobNotFound
	}
	if err != nil {
		return nil, apperror.Wrap(apperror.KindStorageUnavailable, "read blob", err)
	}

	return data, nil
}
