package domain

import "time"

// AuthorRef is the denormalized author projection embedded in post and
// comment responses. Only public fields are carried.
type AuthorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryRef is the denormalized category projection embedded in post responses.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is the core blog aggregate. AuthorID is set once at creation time and
// never reassigned.
type Post struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	Excerpt       string      `json:"excerpt,omitempty"`
	CategoryID    string      `json:"-"`
	Category      CategoryRef `json:"category"`
	AuthorID      string      `json:"-"`
	Author        AuthorRef   `json:"author"`
	Tags          []string    `json:"tags"`
	Published     bool        `json:"published"`
	FeaturedImage string      `json:"featured_image,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
