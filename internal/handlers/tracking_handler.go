package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

type nutritionStore interface {
	entryStore[models.NutritionEntry, repository.NutritionEntryInput, repository.NutritionEntryPatch]
	ListByDate(ctx context.Context, userID int64, date models.Date) ([]models.NutritionEntry, error)
}

// NutritionHandler lists a single day when a date is given, else the whole range.
type NutritionHandler struct {
	*EntryHandler[models.NutritionEntry, repository.NutritionEntryInput, repository.NutritionEntryPatch]
	nutrition nutritionStore
}

func NewNutritionHandler(store nutritionStore) *NutritionHandler {
	return &NutritionHandler{
		EntryHandler: NewEntryHandler[models.NutritionEntry, repository.NutritionEntryInput, repository.NutritionEntryPatch](store),
		nutrition:    store,
	}
}

type nutritionListInput struct {
	Date *models.Date `json:"date"`
	rangeInput
}

func (h *NutritionHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input nutritionListInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	var entries []models.NutritionEntry
	if input.Date != nil && !input.Date.IsZero() {
		entries, err = h.nutrition.ListByDate(c.UserContext(), userID, *input.Date)
	} else {
		entries, err = h.nutrition.ListByUser(c.UserContext(), userID, input.dateRange())
	}
	if err != nil {
		return err
	}
	return respondResult(c, entries)
}

type waterStore interface {
	Add(ctx context.Context, userID int64, input repository.WaterEntryInput) (int64, error)
	ListByDate(ctx context.Context, userID int64, date models.Date) ([]models.WaterEntry, error)
	DailyTotal(ctx context.Context, userID int64, date models.Date) (int, error)
	Delete(ctx context.Context, id, userID int64) error
}

type WaterHandler struct {
	waterRepo waterStore
}

func NewWaterHandler(waterRepo waterStore) *WaterHandler {
	return &WaterHandler{waterRepo: waterRepo}
}

func (h *WaterHandler) Add(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input repository.WaterEntryInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	id, err := h.waterRepo.Add(c.UserContext(), userID, input)
	if err != nil {
		return err
	}
	return respondID(c, id)
}

func (h *WaterHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input dateInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	entries, err := h.waterRepo.ListByDate(c.UserContext(), userID, input.Date)
	if err != nil {
		return err
	}
	return respondResult(c, entries)
}

// DailyTotal answers 0 for a day without entries.
func (h *WaterHandler) DailyTotal(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input dateInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	total, err := h.waterRepo.DailyTotal(c.UserContext(), userID, input.Date)
	if err != nil {
		return err
	}
	return respondResult(c, total)
}

func (h *WaterHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input idInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.waterRepo.Delete(c.UserContext(), input.ID, userID); err != nil {
		return err
	}
	return respondSuccess(c)
}

type dailySummaryStore interface {
	Save(ctx context.Context, userID int64, input repository.DailySummaryInput) (int64, error)
	GetByUserAndDate(ctx context.Context, userID int64, date models.Date) (*models.DailySummary, error)
	ListByUser(ctx context.Context, userID int64, dateRange repository.DateRange) ([]models.DailySummary, error)
}

type DailySummaryHandler struct {
	summaryRepo dailySummaryStore
}

func NewDailySummaryHandler(summaryRepo dailySummaryStore) *DailySummaryHandler {
	return &DailySummaryHandler{summaryRepo: summaryRepo}
}

// Save creates the day's summary or fills in the provided fields of the existing one.
func (h *DailySummaryHandler) Save(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input repository.DailySummaryInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	id, err := h.summaryRepo.Save(c.UserContext(), userID, input)
	if err != nil {
		return err
	}
	return respondID(c, id)
}

func (h *DailySummaryHandler) Get(c *fiber.Ctx) error {
	return GetByDate[models.DailySummary](h.summaryRepo)(c)
}

func (h *DailySummaryHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input rangeInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	summaries, err := h.summaryRepo.ListByUser(c.UserContext(), userID, input.dateRange())
	if err != nil {
		return err
	}
	return respondResult(c, summaries)
}
