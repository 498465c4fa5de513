package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
)

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	created := *comment
	created.ID = fmt.Sprintf("cm%d", r.nextID)
	r.comments[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	if c, ok := r.comments[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCommentNotFound
}

func (r *stubCommentRepo) FindByPost(_ context.Context, postID string) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

type commentFixture struct {
	svc      *CommentService
	comments *stubCommentRepo
	post     *domain.Post
	author   *domain.User
	other    *domain.User
	admin    *domain.User
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	users := newStubUserRepo()
	posts := newStubPostRepo()
	comments := newStubCommentRepo()

	author, _ := users.Create(context.Background(), &domain.User{Name: "alice", Email: "alice@example.com", Role: domain.RoleUser})
	other, _ := users.Create(context.Background(), &domain.User{Name: "bob", Email: "bob@example.com", Role: domain.RoleUser})
	admin, _ := users.Create(context.Background(), &domain.User{Name: "root", Email: "root@example.com", Role: domain.RoleAdmin})

	post, _ := posts.Create(context.Background(), &domain.Post{
		Title:     "hello",
		AuthorID:  author.ID,
		CreatedAt: time.Now().UTC(),
	})

	return &commentFixture{
		svc:      NewCommentService(comments, posts, users, zerolog.Nop()),
		comments: comments,
		post:     post,
		author:   author,
		other:    other,
		admin:    admin,
	}
}

func TestCommentService_Add(t *testing.T) {
	f := newCommentFixture(t)

	comment, err := f.svc.Add(context.Background(), f.post.ID, "nice post", f.other)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if comment.AuthorID != f.other.ID {
		t.Fatalf("expected author %s, got %s", f.other.ID, comment.AuthorID)
	}
	if comment.PostID != f.post.ID {
		t.Fatalf("expected post %s, got %s", f.post.ID, comment.PostID)
	}
}

func TestCommentService_Add_MissingPost(t *testing.T) {
	f := newCommentFixture(t)

	if _, err := f.svc.Add(context.Background(), "nope", "nice post", f.other); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_ListForPost(t *testing.T) {
	f := newCommentFixture(t)

	if _, err := f.svc.Add(context.Background(), f.post.ID, "first", f.author); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := f.svc.Add(context.Background(), f.post.ID, "second", f.other); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	comments, err := f.svc.ListForPost(context.Background(), f.post.ID)
	if err != nil {
		t.Fatalf("ListForPost returned error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	for _, c := range comments {
		if c.Author.Name == "" {
			t.Fatalf("expected hydrated author on comment %s", c.ID)
		}
	}
}

func TestCommentService_ListForPost_MissingPost(t *testing.T) {
	f := newCommentFixture(t)

	if _, err := f.svc.ListForPost(context.Background(), "nope"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_Delete_OwnershipRule(t *testing.T) {
	f := newCommentFixture(t)

	comment, err := f.svc.Add(context.Background(), f.post.ID, "mine", f.author)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := f.svc.Delete(context.Background(), comment.ID, f.other); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("non-owner delete: expected ErrNotOwner, got %v", err)
	}
	if err := f.svc.Delete(context.Background(), comment.ID, f.author); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	// Admins bypass ownership.
	comment, err = f.svc.Add(context.Background(), f.post.ID, "another", f.author)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.svc.Delete(context.Background(), comment.ID, f.admin); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}

func TestCommentService_Delete_Missing(t *testing.T) {
	f := newCommentFixture(t)

	if err := f.svc.Delete(context.Background(), "nope", f.admin); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
