package models

import "time"

// MultimediaRecord is one committed upload, stored as an element of the
// post's multimedia array. Never mutated after the commit.
type MultimediaRecord struct {
	Filename         string    `bson:"filename" dynamodbav:"filename" json:"filename"`                            // generated, collision-resistant
	OriginalFilename string    `bson:"original_filename" dynamodbav:"original_filename" json:"original_filename"` // as sent by the client, untrusted
	ContentType      string    `bson:"content_type" dynamodbav:"content_type" json:"content_type"`
	FileURL          string    `bson:"file_url" dynamodbav:"file_url" json:"file_url"` // blob store locator
	UploadedAt       time.Time `bson:"uploaded_at" dynamodbav:"uploaded_at" json:"uploaded_at"`
}

// DownloadItem is a MultimediaRecord plus the blob's current bytes. Built
// per download request, never persisted. Data is empty when the blob has
// gone missing out-of-band.
type DownloadItem struct {
	MultimediaRecord
	Data []byte
}
