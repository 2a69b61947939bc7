package repository

import (
	"context"
	"fmt"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const blogPostColumns = `id, author_id, title, slug, excerpt, content, category, featured_image_url,
	video_url, published, published_at, created_at, updated_at`

type BlogPostInput struct {
	Title            string  `json:"title" validate:"required,max=255"`
	Slug             string  `json:"slug" validate:"required,max=255,slug"`
	Excerpt          *string `json:"excerpt"`
	Content          string  `json:"content" validate:"required"`
	Category         *string `json:"category" validate:"omitempty,oneof=update tips progress nutrition training mindset"`
	FeaturedImageURL *string `json:"featuredImageUrl" validate:"omitempty,max=2048"`
	VideoURL         *string `json:"videoUrl" validate:"omitempty,max=2048"`
	Published        *bool   `json:"published"`
}

type BlogPostPatch struct {
	Title            *string `json:"title" validate:"omitempty,min=1,max=255"`
	Slug             *string `json:"slug" validate:"omitempty,max=255,slug"`
	Excerpt          *string `json:"excerpt"`
	Content          *string `json:"content" validate:"omitempty,min=1"`
	Category         *string `json:"category" validate:"omitempty,oneof=update tips progress nutrition training mindset"`
	FeaturedImageURL *string `json:"featuredImageUrl" validate:"omitempty,max=2048"`
	VideoURL         *string `json:"videoUrl" validate:"omitempty,max=2048"`
	Published        *bool   `json:"published"`
}

type BlogRepository struct {
	store
}

func NewBlogRepository(db DBTX) *BlogRepository {
	return &BlogRepository{store{db: db}}
}

func scanBlogPost(row rowScanner) (*models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.Category,
		&post.FeaturedImageURL,
		&post.VideoURL,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create stamps published_at with the insert time when the post starts out published.
func (r *BlogRepository) Create(ctx context.Context, authorID int64, input BlogPostInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	published := input.Published != nil && *input.Published
	query := `
		INSERT INTO blog_posts (
			author_id, title, slug, excerpt, content, category, featured_image_url, video_url,
			published, published_at
		)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, 'update'), $7, $8, $9, CASE WHEN $9 THEN NOW() END)
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		authorID,
		input.Title,
		input.Slug,
		input.Excerpt,
		input.Content,
		input.Category,
		input.FeaturedImageURL,
		input.VideoURL,
		published,
	)
}

// List returns published posts newest first, or every post by creation time.
func (r *BlogRepository) List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE published = TRUE ORDER BY published_at DESC`
	}
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBlogPost)
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = $1`
	return queryOne(db.QueryRow(ctx, query, slug), scanBlogPost)
}

func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1`
	return queryOne(db.QueryRow(ctx, query, id), scanBlogPost)
}

// Update applies the patch. published_at is only stamped on a false to true transition;
// unpublishing keeps the previous timestamp.
func (r *BlogRepository) Update(ctx context.Context, id int64, input BlogPostPatch) error {
	var p patch
	setIfPresent(&p, "title", input.Title)
	setIfPresent(&p, "slug", input.Slug)
	setIfPresent(&p, "excerpt", input.Excerpt)
	setIfPresent(&p, "content", input.Content)
	setIfPresent(&p, "category", input.Category)
	setIfPresent(&p, "featured_image_url", input.FeaturedImageURL)
	setIfPresent(&p, "video_url", input.VideoURL)
	if input.Published != nil {
		p.set("published", *input.Published)
		p.setRaw(fmt.Sprintf(
			"published_at = CASE WHEN $%d::boolean AND NOT blog_posts.published THEN NOW() ELSE blog_posts.published_at END",
			len(p.args),
		))
	}
	return applyGlobal(ctx, r.store, "blog_posts", id, &p)
}

func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.store, "blog_posts", id)
}
