package handlers

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	pb "github.com/questhub/services-multimedia/api"
	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/caching"
	"github.com/questhub/services-multimedia/logging"
	"github.com/questhub/services-multimedia/models"
	"github.com/questhub/services-multimedia/queues"
	"github.com/questhub/services-multimedia/services"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type memPostStore struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func newMemPostStore(postIDs ...string) *memPostStore {
	posts := make(map[string]*models.Post)
	for _, id := range postIDs {
		posts[id] = &models.Post{ID: id}
	}
	return &memPostStore{posts: posts}
}

func (s *memPostStore) FindByID(ctx context.Context, postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return nil, apperror.ErrPostNotFound
	}
	copied := *post
	copied.Multimedia = append([]models.MultimediaRecord(nil), post.Multimedia...)
	return &copied, nil
}

func (s *memPostStore) AppendMultimedia(ctx context.Context, postID string, rec models.MultimediaRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return apperror.ErrPostNotFound
	}
	post.Multimedia = append(post.Multimedia, rec)
	return nil
}

func (s *memPostStore) IsReady(ctx context.Context) error { return nil }
func (s *memPostStore) Name() string                      { return "PostStore[mem]" }

type memFileStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemFileStorage() *memFileStorage {
	return &memFileStorage{blobs: make(map[string][]byte)}
}

func (s *memFileStorage) Write(ctx context.Context, name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	locator := "mem://" + name
	s.blobs[locator] = append([]byte(nil), data...)
	return locator, nil
}

func (s *memFileStorage) Read(ctx context.Context, locator string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[locator]
	if !ok {
		return nil, apperror.ErrBlobNotFound
	}
	return data, nil
}

func (s *memFileStorage) IsReady(ctx context.Context) error { return nil }
func (s *memFileStorage) Name() string                      { return "FileStorage[mem]" }

// fakeUploadStream feeds canned requests to the handler and captures the
// final response.
type fakeUploadStream struct {
	grpc.ServerStream

	ctx     context.Context
	reqs    []*pb.UploadRequest
	recvErr error
	resp    *pb.UploadResponse
}

func (s *fakeUploadStream) Recv() (*pb.UploadRequest, error) {
	if len(s.reqs) > 0 {
		req := s.reqs[0]
		s.reqs = s.reqs[1:]
		return req, nil
	}
	if s.recvErr != nil {
		return nil, s.recvErr
	}
	return nil, io.EOF
}

func (s *fakeUploadStream) SendAndClose(resp *pb.UploadResponse) error {
	s.resp = resp
	return nil
}

func (s *fakeUploadStream) Context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func newTestHandler(posts *memPostStore, blobs *memFileStorage) *GrpcHandler {
	logger := logging.NewNullLogger()
	cache := caching.NewNullCachingService()
	notifier := queues.NewNullUploadsNotifier()

	uploadSvc := services.NewUploadServiceImpl(posts, blobs, cache, notifier, logger)
	downloadSvc := services.NewDownloadServiceImpl(posts, blobs, cache, logger)
	return NewGrpcHandler(uploadSvc, downloadSvc, logger)
}

func TestUploadStreamCommitsAndReplies(t *testing.T) {
	posts := newMemPostStore("post-1")
	blobs := newMemFileStorage()
	h := newTestHandler(posts, blobs)

	stream := &fakeUploadStream{reqs: []*pb.UploadRequest{
		{PostId: "post-1", Filename: "photo.jpg", ContentType: "image/jpeg", Data: []byte("abc")},
		{PostId: "post-1", Data: []byte("def")},
	}}

	require.NoError(t, h.Upload(stream))
	require.NotNil(t, stream.resp)
	require.NotEmpty(t, stream.resp.Url)

	require.Equal(t, []byte("abcdef"), blobs.blobs[stream.resp.Url])

	post, err := posts.FindByID(context.Background(), "post-1")
	require.NoError(t, err)
	require.Len(t, post.Multimedia, 1)
	require.Equal(t, "photo.jpg", post.Multimedia[0].OriginalFilename)
}

func TestUploadStreamRejectsPostIDMismatch(t *testing.T) {
	posts := newMemPostStore("post-1", "post-2")
	blobs := newMemFileStorage()
	h := newTestHandler(posts, blobs)

	stream := &fakeUploadStream{reqs: []*pb.UploadRequest{
		{PostId: "post-1", Filename: "photo.jpg", Data: []byte("abc")},
		{PostId: "post-2", Data: []byte("def")},
	}}

	err := h.Upload(stream)
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Empty(t, blobs.blobs)
}

func TestUploadStreamWithoutChunks(t *testing.T) {
	h := newTestHandler(newMemPostStore(), newMemFileStorage())

	stream := &fakeUploadStream{}

	err := h.Upload(stream)
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUploadCancellationIsNotAFault(t *testing.T) {
	posts := newMemPostStore("post-1")
	blobs := newMemFileStorage()
	h := newTestHandler(posts, blobs)

	stream := &fakeUploadStream{
		reqs: []*pb.UploadRequest{
			{PostId: "post-1", Filename: "photo.jpg", Data: []byte("abc")},
		},
		recvErr: status.Error(codes.Canceled, "context canceled"),
	}

	err := h.Upload(stream)
	require.Equal(t, codes.Canceled, status.Code(err))

	// nothing committed
	require.Empty(t, blobs.blobs)
	post, findErr := posts.FindByID(context.Background(), "post-1")
	require.NoError(t, findErr)
	require.Empty(t, post.Multimedia)
}

func TestDownloadMapsItems(t *testing.T) {
	posts := newMemPostStore("post-1")
	blobs := newMemFileStorage()
	h := newTestHandler(posts, blobs)

	for _, name := range []string{"a.png", "b.png"} {
		stream := &fakeUploadStream{reqs: []*pb.UploadRequest{
			{PostId: "post-1", Filename: name, ContentType: "image/png", Data: []byte("data-" + name)},
		}}
		require.NoError(t, h.Upload(stream))
		time.Sleep(2 * time.Millisecond) // distinct commit millis
	}

	resp, err := h.Download(context.Background(), &pb.DownloadRequest{PostId: "post-1"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	require.Equal(t, "a.png", resp.Items[0].OriginalFilename)
	require.Equal(t, "b.png", resp.Items[1].OriginalFilename)
	require.Equal(t, []byte("data-a.png"), resp.Items[0].Data)
	require.NotNil(t, resp.Items[0].UploadedAt)
	require.NotEqual(t, resp.Items[0].Filename, resp.Items[1].Filename)
}

func TestDownloadMissingPost(t *testing.T) {
	h := newTestHandler(newMemPostStore(), newMemFileStorage())

	_, err := h.Download(context.Background(), &pb.DownloadRequest{PostId: "missing-post"})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestDownloadEmptyPostID(t *testing.T) {
	h := newTestHandler(newMemPostStore(), newMemFileStorage())

	_, err := h.Download(context.Background(), &pb.DownloadRequest{})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
