package models

import (
	"encoding/json"
	"time"
)

type BlogPost struct {
	ID               int64      `json:"id"`
	AuthorID         int64      `json:"authorId"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Excerpt          *string    `json:"excerpt"`
	Content          string     `json:"content"`
	Category         string     `json:"category"`
	FeaturedImageURL *string    `json:"featuredImageUrl"`
	VideoURL         *string    `json:"videoUrl"`
	Published        bool       `json:"published"`
	PublishedAt      *time.Time `json:"publishedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// RenderedBlogPost is a post together with its markdown rendered to HTML.
type RenderedBlogPost struct {
	BlogPost
	ContentHTML string `json:"contentHtml"`
}

type Service struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Features      json.RawMessage `json:"features"`
	Price         *float64        `json:"price"`
	Currency      string          `json:"currency"`
	BillingPeriod string          `json:"billingPeriod"`
	Category      string          `json:"category"`
	IsActive      bool            `json:"isActive"`
	SortOrder     int             `json:"sortOrder"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type Inquiry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	ServiceID *int64    `json:"serviceId"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
