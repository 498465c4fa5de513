package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

type commentListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []domain.Comment `json:"data"`
}

// List handles GET /api/comments/:postId.
//
// @Summary      List comments on a post
// @Tags         comments
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  commentListResponse
// @Failure      404     {object}  map[string]string
// @Router       /api/comments/{postId} [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.ListForPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return c.JSON(http.StatusOK, commentListResponse{
		Success: true,
		Count:   len(comments),
		Data:    comments,
	})
}

// Add handles POST /api/comments/:postId.
//
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string             true  "Post id"
// @Param        body    body      addCommentRequest  true  "Comment content"
// @Success      201     {object}  domain.Comment
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/comments/{postId} [post]
func (h *CommentHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.service.Add(c.Request().Context(), c.Param("postId"), req.Content, user)
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "data": comment})
}

// Delete handles DELETE /api/comments/:id. Requires ownership.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": map[string]any{}})
}
