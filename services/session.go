package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/questhub/services-multimedia/apperror"
)

// Chunk is one message of an upload stream. The first chunk of a session
// carries the routing metadata; later chunks only contribute Data.
type Chunk struct {
	PostID      string
	Filename    string
	ContentType string
	Data        []byte
}

// UploadSession accumulates the state of one upload stream. It has a single
// writer (the stream's receive loop), so it needs no locking. A session is
// finalized exactly once, by Commit or by being dropped on cancellation.
type UploadSession struct {
	captured         bool
	postID           string
	originalFilename string
	contentType      string
	chunks           [][]byte
	size             int
}

func NewUploadSession() *UploadSession {
	return &UploadSession{}
}

// Append records one chunk. The first chunk captures post id, filename and
// content type for the whole session; later chunks must carry the same post
// id, and their filename/content-type fields are ignored.
func (s *UploadSession) Append(chunk Chunk) error {
	if !s.captured {
		s.captured = true
		s.postID = chunk.PostID
		s.originalFilename = chunk.Filename
		s.contentType = chunk.ContentType
	} else if chunk.PostID != s.postID {
		return apperror.New(
			apperror.KindInvalidRequest,
			fmt.Sprintf("post id changed mid-stream: %q then %q", s.postID, chunk.PostID),
		)
	}

	s.chunks = append(s.chunks, chunk.Data)
	s.size += len(chunk.Data)
	return nil
}

// Empty reports whether no chunk was ever received.
func (s *UploadSession) Empty() bool {
	return !s.captured
}

func (s *UploadSession) PostID() string {
	return s.postID
}

func (s *UploadSession) OriginalFilename() string {
	return s.originalFilename
}

func (s *UploadSession) ContentType() string {
	return s.contentType
}

func (s *UploadSession) Size() int {
	return s.size
}

// Assemble concatenates every buffered chunk in arrival order.
func (s *UploadSession) Assemble() []byte {
	data := make([]byte, 0, s.size)
	for _, c := range s.chunks {
		data = append(data, c...)
	}
	return data
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9.\-_]`)

// StoredFilename derives the collision-resistant stored name from the
// client-sent filename and the commit time: the sanitized stem, the commit
// timestamp in milliseconds, and the preserved extension. Two uploads of
// the same name committed at different times therefore never collide.
func (s *UploadSession) StoredFilename(commitTime time.Time) string {
	safe := unsafeFilenameChars.ReplaceAllString(s.originalFilename, "_")

	stem, ext := safe, ""
	if i := strings.LastIndex(safe, "."); i >= 0 {
		stem, ext = safe[:i], safe[i:]
	}

	return fmt.Sprintf("%s_%d%s", stem, commitTime.UnixMilli(), ext)
}
