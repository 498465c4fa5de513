package domain

import "time"

// Comment belongs to exactly one post. AuthorID is immutable after creation.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"-"`
	Author    AuthorRef `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
