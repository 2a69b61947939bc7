package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/services"
)

type goalApplicationService interface {
	Create(ctx context.Context, userID int64, input repository.GoalInput) (int64, error)
	List(ctx context.Context, userID int64, activeOnly bool) ([]models.GoalWithProgress, error)
	Get(ctx context.Context, id, userID int64) (*models.GoalWithProgress, error)
	Progress(ctx context.Context, id, userID int64) (*services.GoalProgressResult, error)
	Update(ctx context.Context, id, userID int64, input repository.GoalPatch) error
	Complete(ctx context.Context, id, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}

type GoalHandler struct {
	service goalApplicationService
}

func NewGoalHandler(service goalApplicationService) *GoalHandler {
	return &GoalHandler{service: service}
}

type goalListInput struct {
	ActiveOnly *bool `json:"activeOnly"`
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input repository.GoalInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	id, err := h.service.Create(c.UserContext(), userID, input)
	if err != nil {
		return err
	}
	return respondID(c, id)
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input goalListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	activeOnly := input.ActiveOnly == nil || *input.ActiveOnly
	goals, err := h.service.List(c.UserContext(), userID, activeOnly)
	if err != nil {
		return err
	}
	return respondResult(c, goals)
}

func (h *GoalHandler) GetByID(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	goal, err := h.service.Get(c.UserContext(), input.ID, userID)
	if err != nil {
		return err
	}
	return respondResult(c, goal)
}

func (h *GoalHandler) Progress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	progress, err := h.service.Progress(c.UserContext(), input.ID, userID)
	if err != nil {
		return err
	}
	return respondResult(c, progress)
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, patch, err := bindUpdate[repository.GoalPatch](c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.UserContext(), id, userID, patch); err != nil {
		return err
	}
	return respondSuccess(c)
}

func (h *GoalHandler) Complete(c *fiber.Ctx) error {
	return h.byID(c, h.service.Complete)
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	return h.byID(c, h.service.Delete)
}

func (h *GoalHandler) byID(c *fiber.Ctx, action func(ctx context.Context, id, userID int64) error) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := action(c.UserContext(), input.ID, userID); err != nil {
		return err
	}
	return respondSuccess(c)
}
