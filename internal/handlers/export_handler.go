package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/services"
)

type exportApplicationService interface {
	All(ctx context.Context, userID int64, dateRange repository.DateRange) (*services.ExportBundle, error)
	CSV(ctx context.Context, userID int64, category string, dateRange repository.DateRange) (*services.CSVFile, error)
}

type ExportHandler struct {
	service exportApplicationService
}

func NewExportHandler(service exportApplicationService) *ExportHandler {
	return &ExportHandler{service: service}
}

type csvExportInput struct {
	Category string `json:"category" validate:"required,oneof=sleep body bloodPressure nutrition water training sauna"`
	rangeInput
}

func (h *ExportHandler) All(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input rangeInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	bundle, err := h.service.All(c.UserContext(), userID, input.dateRange())
	if err != nil {
		return err
	}
	return respondResult(c, bundle)
}

// CSV sends one category as a file download instead of the result envelope.
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input csvExportInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	file, err := h.service.CSV(c.UserContext(), userID, input.Category, input.dateRange())
	if err != nil {
		return err
	}

	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(file.Content)
}
