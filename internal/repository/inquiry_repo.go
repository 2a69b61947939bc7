package repository

import (
	"context"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const inquiryColumns = `id, name, email, phone, service_id, message, status, created_at, updated_at`

type InquiryInput struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email,max=320"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
	ServiceID *int64  `json:"serviceId" validate:"omitempty,gt=0"`
	Message   string  `json:"message" validate:"required"`
}

type InquiryStatusInput struct {
	ID     int64  `json:"id" validate:"required,gt=0"`
	Status string `json:"status" validate:"required,oneof=new contacted closed"`
}

type InquiryRepository struct {
	store
}

func NewInquiryRepository(db DBTX) *InquiryRepository {
	return &InquiryRepository{store{db: db}}
}

func scanInquiry(row rowScanner) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := row.Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.ServiceID,
		&inquiry.Message,
		&inquiry.Status,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepository) Create(ctx context.Context, input InquiryInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO inquiries (name, email, phone, service_id, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return insertReturningID(ctx, db, query, input.Name, input.Email, input.Phone, input.ServiceID, input.Message)
}

func (r *InquiryRepository) List(ctx context.Context) ([]models.Inquiry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, `SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanInquiry)
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	var p patch
	p.set("status", status)
	return applyGlobal(ctx, r.store, "inquiries", id, &p)
}
