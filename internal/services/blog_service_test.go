package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

type stubBlogStore struct {
	posts         map[string]models.BlogPost
	listCalledFor []bool
	createErr     error
}

func (s *stubBlogStore) Create(context.Context, int64, repository.BlogPostInput) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	return 1, nil
}

func (s *stubBlogStore) List(_ context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	s.listCalledFor = append(s.listCalledFor, publishedOnly)
	return nil, nil
}

func (s *stubBlogStore) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	post, ok := s.posts[slug]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (s *stubBlogStore) GetByID(context.Context, int64) (*models.BlogPost, error) {
	return nil, nil
}

func (s *stubBlogStore) Update(context.Context, int64, repository.BlogPostPatch) error {
	return nil
}

func (s *stubBlogStore) Delete(context.Context, int64) error {
	return nil
}

var (
	adminViewer  = &models.User{ID: 1, Role: models.RoleAdmin}
	memberViewer = &models.User{ID: 2, Role: models.RoleUser}
)

func TestBlogListOnlyShowsDraftsToAdmins(t *testing.T) {
	store := &stubBlogStore{}
	service := NewBlogService(store)
	ctx := context.Background()

	_, _ = service.List(ctx, false, nil)
	_, _ = service.List(ctx, false, memberViewer)
	_, _ = service.List(ctx, false, adminViewer)
	_, _ = service.List(ctx, true, adminViewer)

	want := []bool{true, true, false, true}
	for i, publishedOnly := range want {
		if store.listCalledFor[i] != publishedOnly {
			t.Fatalf("call %d: expected publishedOnly=%v, got %v", i, publishedOnly, store.listCalledFor[i])
		}
	}
}

func TestBlogGetBySlugRendersMarkdown(t *testing.T) {
	store := &stubBlogStore{posts: map[string]models.BlogPost{
		"week-1": {Slug: "week-1", Content: "# Week 1\n\nDown **2 kg**.", Published: true},
		"draft":  {Slug: "draft", Content: "secret"},
	}}
	service := NewBlogService(store)
	ctx := context.Background()

	post, err := service.GetBySlug(ctx, "week-1", nil)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if !strings.Contains(post.ContentHTML, "<h1>Week 1</h1>") || !strings.Contains(post.ContentHTML, "<strong>2 kg</strong>") {
		t.Fatalf("unexpected html: %s", post.ContentHTML)
	}

	if draft, _ := service.GetBySlug(ctx, "draft", memberViewer); draft != nil {
		t.Fatalf("draft must be hidden from non admins")
	}
	if draft, _ := service.GetBySlug(ctx, "draft", adminViewer); draft == nil {
		t.Fatalf("admins should see drafts")
	}
	if missing, err := service.GetBySlug(ctx, "nope", adminViewer); missing != nil || err != nil {
		t.Fatalf("missing slug should be nil, got %+v (%v)", missing, err)
	}
}

func TestBlogRenderDropsRawHTML(t *testing.T) {
	html, err := NewBlogService(&stubBlogStore{}).Render("<script>alert(1)</script>\n\ntext")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("raw html should not be rendered: %s", html)
	}
}

func TestBlogCreateMapsDuplicateSlug(t *testing.T) {
	service := NewBlogService(&stubBlogStore{createErr: &pgconn.PgError{Code: "23505"}})

	_, err := service.Create(context.Background(), 1, repository.BlogPostInput{Slug: "taken"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
