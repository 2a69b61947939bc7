package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
	"github.com/yuin/goldmark"
)

type blogStore interface {
	Create(ctx context.Context, authorID int64, input repository.BlogPostInput) (int64, error)
	List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	Update(ctx context.Context, id int64, input repository.BlogPostPatch) error
	Delete(ctx context.Context, id int64) error
}

type BlogService struct {
	blogRepo blogStore
	markdown goldmark.Markdown
}

func NewBlogService(blogRepo blogStore) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		// Raw HTML in post bodies is dropped by goldmark's default renderer.
		markdown: goldmark.New(),
	}
}

// List only returns drafts to admins. Everybody else sees published posts.
func (s *BlogService) List(ctx context.Context, publishedOnly bool, viewer *models.User) ([]models.BlogPost, error) {
	if !viewer.IsAdmin() {
		publishedOnly = true
	}
	return s.blogRepo.List(ctx, publishedOnly)
}

// GetBySlug returns the post with its rendered body, or nil when it is missing
// or an unpublished draft the viewer may not see.
func (s *BlogService) GetBySlug(ctx context.Context, slug string, viewer *models.User) (*models.RenderedBlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug)
	if err != nil || post == nil {
		return nil, err
	}
	if !post.Published && !viewer.IsAdmin() {
		return nil, nil
	}

	html, err := s.Render(post.Content)
	if err != nil {
		return nil, err
	}
	return &models.RenderedBlogPost{BlogPost: *post, ContentHTML: html}, nil
}

func (s *BlogService) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

func (s *BlogService) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, authorID int64, input repository.BlogPostInput) (int64, error) {
	id, err := s.blogRepo.Create(ctx, authorID, input)
	if repository.IsUniqueViolation(err) {
		return 0, fmt.Errorf("%w: slug %q is already taken", ErrConflict, input.Slug)
	}
	return id, err
}

func (s *BlogService) Update(ctx context.Context, id int64, input repository.BlogPostPatch) error {
	err := s.blogRepo.Update(ctx, id, input)
	if repository.IsUniqueViolation(err) {
		return fmt.Errorf("%w: slug is already taken", ErrConflict)
	}
	return err
}

func (s *BlogService) Delete(ctx context.Context, id int64) error {
	return s.blogRepo.Delete(ctx, id)
}
