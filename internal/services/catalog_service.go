package services

import (
	"context"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/validation"
)

type serviceStore interface {
	Create(ctx context.Context, input repository.ServiceInput) (int64, error)
	List(ctx context.Context, activeOnly bool) ([]models.Service, error)
	GetByID(ctx context.Context, id int64) (*models.Service, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, input repository.ServicePatch) error
	Delete(ctx context.Context, id int64) error
}

type inquiryStore interface {
	Create(ctx context.Context, input repository.InquiryInput) (int64, error)
	List(ctx context.Context) ([]models.Inquiry, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// CatalogService covers the public offering list and the contact inquiries that reference it.
type CatalogService struct {
	serviceRepo serviceStore
	inquiryRepo inquiryStore
}

func NewCatalogService(serviceRepo serviceStore, inquiryRepo inquiryStore) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo, inquiryRepo: inquiryRepo}
}

func (s *CatalogService) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	return s.serviceRepo.List(ctx, activeOnly)
}

func (s *CatalogService) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, input repository.ServiceInput) (int64, error) {
	return s.serviceRepo.Create(ctx, input)
}

func (s *CatalogService) UpdateService(ctx context.Context, id int64, input repository.ServicePatch) error {
	return s.serviceRepo.Update(ctx, id, input)
}

func (s *CatalogService) DeleteService(ctx context.Context, id int64) error {
	return s.serviceRepo.Delete(ctx, id)
}

func (s *CatalogService) CreateInquiry(ctx context.Context, input repository.InquiryInput) (int64, error) {
	if input.ServiceID != nil {
		exists, err := s.serviceRepo.Exists(ctx, *input.ServiceID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, validation.Invalid("serviceId", "serviceId does not reference an existing service")
		}
	}
	return s.inquiryRepo.Create(ctx, input)
}

func (s *CatalogService) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	return s.inquiryRepo.List(ctx)
}

func (s *CatalogService) UpdateInquiryStatus(ctx context.Context, input repository.InquiryStatusInput) error {
	return s.inquiryRepo.UpdateStatus(ctx, input.ID, input.Status)
}
