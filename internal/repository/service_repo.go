package repository

import (
	"context"
	"encoding/json"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const serviceColumns = `id, name, description, features, price, currency, billing_period, category,
	is_active, sort_order, created_at, updated_at`

type ServiceInput struct {
	Name          string          `json:"name" validate:"required,max=255"`
	Description   *string         `json:"description"`
	Features      json.RawMessage `json:"features" validate:"omitempty,json_array"`
	Price         *models.Number  `json:"price" validate:"omitempty,gte=0"`
	Currency      *string         `json:"currency" validate:"omitempty,len=3"`
	BillingPeriod *string         `json:"billingPeriod" validate:"omitempty,oneof=once monthly yearly"`
	Category      *string         `json:"category" validate:"omitempty,oneof=coaching membership program"`
	IsActive      *bool           `json:"isActive"`
	SortOrder     *int            `json:"sortOrder"`
}

type ServicePatch struct {
	Name        *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string         `json:"description"`
	Features    json.RawMessage `json:"features" validate:"omitempty,json_array"`
	Price       *models.Number  `json:"price" validate:"omitempty,gte=0"`
	IsActive    *bool           `json:"isActive"`
	SortOrder   *int            `json:"sortOrder"`
}

type ServiceRepository struct {
	store
}

func NewServiceRepository(db DBTX) *ServiceRepository {
	return &ServiceRepository{store{db: db}}
}

func scanService(row rowScanner) (*models.Service, error) {
	var service models.Service
	var features []byte
	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&features,
		&service.Price,
		&service.Currency,
		&service.BillingPeriod,
		&service.Category,
		&service.IsActive,
		&service.SortOrder,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(features) > 0 {
		service.Features = json.RawMessage(features)
	}
	return &service, nil
}

func (r *ServiceRepository) Create(ctx context.Context, input ServiceInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO services (
			name, description, features, price, currency, billing_period, category, is_active, sort_order
		)
		VALUES (
			$1, $2, $3, $4, COALESCE($5, 'EUR'), COALESCE($6, 'once'), COALESCE($7, 'program'),
			COALESCE($8, TRUE), COALESCE($9, 0)
		)
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		input.Name,
		input.Description,
		jsonArg(input.Features),
		input.Price.Float64(),
		input.Currency,
		input.BillingPeriod,
		input.Category,
		input.IsActive,
		input.SortOrder,
	)
}

func (r *ServiceRepository) List(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY sort_order ASC, id ASC`
	if activeOnly {
		query = `SELECT ` + serviceColumns + ` FROM services WHERE is_active = TRUE ORDER BY sort_order ASC, id ASC`
	}
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanService)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	return queryOne(db.QueryRow(ctx, query, id), scanService)
}

func (r *ServiceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	db, err := r.conn()
	if err != nil {
		return false, err
	}
	var exists bool
	if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id int64, input ServicePatch) error {
	var p patch
	setIfPresent(&p, "name", input.Name)
	setIfPresent(&p, "description", input.Description)
	setJSONIfPresent(&p, "features", input.Features)
	setIfPresent(&p, "price", input.Price)
	setIfPresent(&p, "is_active", input.IsActive)
	setIfPresent(&p, "sort_order", input.SortOrder)
	return applyGlobal(ctx, r.store, "services", id, &p)
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.store, "services", id)
}
