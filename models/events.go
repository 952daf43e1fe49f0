package models

import "time"

// UploadCompletedEvent is published to the notifications queue after a
// commit succeeds. Consumers (feed, search indexing) are outside this
// service.
type UploadCompletedEvent struct {
	PostID      string    `json:"post_id"`
	Filename    string    `json:"filename"`
	FileURL     string    `json:"file_url"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
