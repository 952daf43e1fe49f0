package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/logging"
	"github.com/stretchr/testify/require"
)

func TestDiskStorageWriteReadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskStorageImpl(dir, logging.NewNullLogger())
	require.NoError(t, err)

	locator, err := storage.Write(context.Background(), "photo_1700000000000.jpg", []byte("payload"))
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(locator))

	data, err := storage.Read(context.Background(), locator)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)
}

func TestDiskStorageReadMissingBlob(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskStorageImpl(dir, logging.NewNullLogger())
	require.NoError(t, err)

	_, err = storage.Read(context.Background(), filepath.Join(dir, "nope.jpg"))
	require.Error(t, err)
	require.True(t, errors.Is(err, apperror.ErrBlobNotFound))
	require.True(t, apperror.IsNotFound(err))
}

func TestDiskStorageCreatesUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	storage, err := NewDiskStorageImpl(dir, logging.NewNullLogger())
	require.NoError(t, err)
	require.NoError(t, storage.IsReady(context.Background()))
}
