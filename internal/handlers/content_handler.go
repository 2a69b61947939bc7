package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/middleware"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

type blogApplicationService interface {
	List(ctx context.Context, publishedOnly bool, viewer *models.User) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, viewer *models.User) (*models.RenderedBlogPost, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	Create(ctx context.Context, authorID int64, input repository.BlogPostInput) (int64, error)
	Update(ctx context.Context, id int64, input repository.BlogPostPatch) error
	Delete(ctx context.Context, id int64) error
}

type BlogHandler struct {
	service blogApplicationService
}

func NewBlogHandler(service blogApplicationService) *BlogHandler {
	return &BlogHandler{service: service}
}

type blogListInput struct {
	PublishedOnly *bool `json:"publishedOnly"`
}

type slugInput struct {
	Slug string `json:"slug" validate:"required"`
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	var input blogListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	publishedOnly := input.PublishedOnly == nil || *input.PublishedOnly
	posts, err := h.service.List(c.UserContext(), publishedOnly, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respondResult(c, posts)
}

func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	var input slugInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	post, err := h.service.GetBySlug(c.UserContext(), input.Slug, middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return respondResult(c, post)
}

func (h *BlogHandler) GetByID(c *fiber.Ctx) error {
	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	post, err := h.service.GetByID(c.UserContext(), input.ID)
	if err != nil {
		return err
	}
	return respondResult(c, post)
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	authorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input repository.BlogPostInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	id, err := h.service.Create(c.UserContext(), authorID, input)
	if err != nil {
		return err
	}
	return respondID(c, id)
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, patch, err := bindUpdate[repository.BlogPostPatch](c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.UserContext(), id, patch); err != nil {
		return err
	}
	return respondSuccess(c)
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.service.Delete(c.UserContext(), input.ID); err != nil {
		return err
	}
	return respondSuccess(c)
}

type catalogApplicationService interface {
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	CreateService(ctx context.Context, input repository.ServiceInput) (int64, error)
	UpdateService(ctx context.Context, id int64, input repository.ServicePatch) error
	DeleteService(ctx context.Context, id int64) error
	CreateInquiry(ctx context.Context, input repository.InquiryInput) (int64, error)
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, input repository.InquiryStatusInput) error
}

// CatalogHandler serves the services.* and inquiries.* procedures.
type CatalogHandler struct {
	service catalogApplicationService
}

func NewCatalogHandler(service catalogApplicationService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type serviceListInput struct {
	ActiveOnly *bool `json:"activeOnly"`
}

func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	var input serviceListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	activeOnly := input.ActiveOnly == nil || *input.ActiveOnly
	items, err := h.service.ListServices(c.UserContext(), activeOnly)
	if err != nil {
		return err
	}
	return respondResult(c, items)
}

func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	item, err := h.service.GetService(c.UserContext(), input.ID)
	if err != nil {
		return err
	}
	return respondResult(c, item)
}

func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var input repository.ServiceInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	id, err := h.service.CreateService(c.UserContext(), input)
	if err != nil {
		return err
	}
	return respondID(c, id)
}

func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	id, patch, err := bindUpdate[repository.ServicePatch](c)
	if err != nil {
		return err
	}

	if err := h.service.UpdateService(c.UserContext(), id, patch); err != nil {
		return err
	}
	return respondSuccess(c)
}

func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.service.DeleteService(c.UserContext(), input.ID); err != nil {
		return err
	}
	return respondSuccess(c)
}

func (h *CatalogHandler) CreateInquiry(c *fiber.Ctx) error {
	var input repository.InquiryInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	id, err := h.service.CreateInquiry(c.UserContext(), input)
	if err != nil {
		return err
	}
	return respondID(c, id)
}

func (h *CatalogHandler) ListInquiries(c *fiber.Ctx) error {
	inquiries, err := h.service.ListInquiries(c.UserContext())
	if err != nil {
		return err
	}
	return respondResult(c, inquiries)
}

func (h *CatalogHandler) UpdateInquiryStatus(c *fiber.Ctx) error {
	var input repository.InquiryStatusInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.service.UpdateInquiryStatus(c.UserContext(), input); err != nil {
		return err
	}
	return respondSuccess(c)
}
