package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// ImageSaver persists an uploaded featured image and returns the relative
// path to store on the post record.
type ImageSaver interface {
	Save(file *multipart.FileHeader) (string, error)
}

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
	uploads ImageSaver
}

func NewPostHandler(service ports.PostService, uploads ImageSaver) *PostHandler {
	return &PostHandler{service: service, uploads: uploads}
}

// List handles GET /api/posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  listPostsResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListPostsInput{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Search handles GET /api/posts/search — full-text search over published posts.
//
// @Summary      Search posts
// @Tags         posts
// @Produce      json
// @Param        query     query     string  false  "Full-text query"
// @Param        category  query     string  false  "Category id filter"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  listPostsResponse
// @Router       /api/posts/search [get]
func (h *PostHandler) Search(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.Search(c.Request().Context(), ports.SearchPostsInput{
		Query:      c.QueryParam("query"),
		CategoryID: c.QueryParam("category"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /api/posts (multipart).
//
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title          formData  string  true   "Title"
// @Param        content        formData  string  true   "Content"
// @Param        category       formData  string  true   "Category id"
// @Param        excerpt        formData  string  false  "Excerpt"
// @Param        tags           formData  string  false  "Comma-separated tags"
// @Param        published      formData  string  false  "true to publish"
// @Param        featuredImage  formData  file    false  "Featured image"
// @Success      200            {object}  domain.Post
// @Failure      400            {object}  map[string]string
// @Failure      401            {object}  map[string]string
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var form postForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:         form.Title,
		Content:       form.Content,
		Excerpt:       form.Excerpt,
		CategoryID:    form.Category,
		Tags:          splitTags(form.Tags),
		Published:     form.Published == "true",
		FeaturedImage: imagePath,
		Author:        user,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(strconv.FormatBool(post.Published)).Inc()
	return c.JSON(http.StatusOK, post)
}

// Update handles PUT /api/posts/:id (multipart). Requires ownership.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id             path      string  true   "Post id"
// @Param        title          formData  string  true   "Title"
// @Param        content        formData  string  true   "Content"
// @Param        category       formData  string  true   "Category id"
// @Param        excerpt        formData  string  false  "Excerpt"
// @Param        tags           formData  string  false  "Comma-separated tags"
// @Param        published      formData  string  false  "true to publish"
// @Param        featuredImage  formData  file    false  "Replacement image"
// @Success      200            {object}  domain.Post
// @Failure      401            {object}  map[string]string
// @Failure      404            {object}  map[string]string
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var form postForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), ports.UpdatePostInput{
		ID:            c.Param("id"),
		Title:         form.Title,
		Content:       form.Content,
		Excerpt:       form.Excerpt,
		CategoryID:    form.Category,
		Tags:          splitTags(form.Tags),
		Published:     form.Published == "true",
		FeaturedImage: imagePath,
		Actor:         user,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id. Requires ownership.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Post removed"})
}

// saveImage stores the optional featuredImage file part. Absence is not an
// error; the returned path is empty when no file was sent.
func (h *PostHandler) saveImage(c echo.Context) (string, error) {
	file, err := c.FormFile("featuredImage")
	if err != nil {
		return "", nil
	}

	path, err := h.uploads.Save(file)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	return path, nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func toListResponse(page *ports.PostPage) listPostsResponse {
	posts := page.Posts
	if posts == nil {
		posts = []domain.Post{}
	}
	return listPostsResponse{
		Posts:       posts,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalPosts:  page.TotalPosts,
	}
}
