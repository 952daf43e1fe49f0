package models

import "time"

// Post is the owning document a multimedia record is attached to. The
// service only ever appends to Multimedia; the rest of the document is
// owned by the post service.
type Post struct {
	ID         string             `bson:"-" dynamodbav:"post_id" json:"id"`
	Title      string             `bson:"title" dynamodbav:"title" json:"title"`
	Content    string             `bson:"content" dynamodbav:"content" json:"content"`
	AuthorID   string             `bson:"author_id" dynamodbav:"author_id" json:"author_id"`
	CategoryID string             `bson:"category_id" dynamodbav:"category_id" json:"category_id"`
	IsResolved bool               `bson:"is_resolved" dynamodbav:"is_resolved" json:"is_resolved"`
	CreatedAt  time.Time          `bson:"created_at,omitempty" dynamodbav:"created_at" json:"created_at"`
	Multimedia []MultimediaRecord `bson:"multimedia" dynamodbav:"multimedia" json:"multimedia"`
}
