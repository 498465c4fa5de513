package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

func TestCategoryService_Create(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	category, err := svc.Create(context.Background(), ports.CreateCategoryInput{
		Name:        "Technology",
		Description: "Latest tech trends",
		Color:       "#007bff",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if category.ID == "" {
		t.Fatalf("expected an id")
	}
	if category.Name != "Technology" {
		t.Fatalf("unexpected name %q", category.Name)
	}
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	input := ports.CreateCategoryInput{Name: "Technology"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_List_SortedByName(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	for _, name := range []string{"Travel", "Business", "Food"} {
		if _, err := svc.Create(context.Background(), ports.CreateCategoryInput{Name: name}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	categories, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := []string{"Business", "Food", "Travel"}
	if len(categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(categories))
	}
	for i, name := range want {
		if categories[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, categories[i].Name)
		}
	}
}
