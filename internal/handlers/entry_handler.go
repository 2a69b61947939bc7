package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

// entryStore is the shape shared by the per-user tracking repositories.
type entryStore[T, C, P any] interface {
	Create(ctx context.Context, userID int64, input C) (int64, error)
	ListByUser(ctx context.Context, userID int64, dateRange repository.DateRange) ([]T, error)
	Update(ctx context.Context, id, userID int64, input P) error
	Delete(ctx context.Context, id, userID int64) error
}

type datedStore[T any] interface {
	GetByUserAndDate(ctx context.Context, userID int64, date models.Date) (*T, error)
}

// EntryHandler serves create/list/update/delete for one tracking category.
// T is the stored row, C the create input and P the partial update.
type EntryHandler[T, C, P any] struct {
	store entryStore[T, C, P]
}

func NewEntryHandler[T, C, P any](store entryStore[T, C, P]) *EntryHandler[T, C, P] {
	return &EntryHandler[T, C, P]{store: store}
}

func (h *EntryHandler[T, C, P]) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input C
	if err := bindInput(c, &input); err != nil {
		return err
	}

	id, err := h.store.Create(c.UserContext(), userID, input)
	if err != nil {
		return err
	}
	return respondID(c, id)
}

func (h *EntryHandler[T, C, P]) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input rangeInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	entries, err := h.store.ListByUser(c.UserContext(), userID, input.dateRange())
	if err != nil {
		return err
	}
	return respondResult(c, entries)
}

func (h *EntryHandler[T, C, P]) Update(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, patch, err := bindUpdate[P](c)
	if err != nil {
		return err
	}

	if err := h.store.Update(c.UserContext(), id, userID, patch); err != nil {
		return err
	}
	return respondSuccess(c)
}

// Delete succeeds whether or not the entry existed for this user.
func (h *EntryHandler[T, C, P]) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.store.Delete(c.UserContext(), input.ID, userID); err != nil {
		return err
	}
	return respondSuccess(c)
}

// GetByDate serves the getByDate procedure of categories with one entry per day.
func GetByDate[T any](store datedStore[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return err
		}

		var input dateInput
		if err := bindInput(c, &input); err != nil {
			return err
		}

		entry, err := store.GetByUserAndDate(c.UserContext(), userID, input.Date)
		if err != nil {
			return err
		}
		return respondResult(c, entry)
	}
}
