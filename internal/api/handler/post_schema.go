package handler

import "github.com/bloghub/blog-api/internal/core/domain"

// postForm is the multipart form payload for creating and updating posts. The
// featuredImage file part and the author are handled separately: the file goes
// through the upload store, the author always comes from the authenticated
// identity, never the form.
type postForm struct {
	Title     string `form:"title"     validate:"required,max=100"`
	Content   string `form:"content"   validate:"required"`
	Excerpt   string `form:"excerpt"   validate:"omitempty,max=200"`
	Category  string `form:"category"  validate:"required"`
	Tags      string `form:"tags"`
	Published string `form:"published"`
}

type listPostsResponse struct {
	Posts       []domain.Post `json:"posts"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalPosts  int64         `json:"totalPosts"`
}
