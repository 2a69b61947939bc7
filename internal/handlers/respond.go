package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/logging"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/middleware"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/services"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/validation"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorHandler renders every error returned by a handler or gate as the
// {"error": {...}} envelope. It is installed as the fiber app error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	if status >= fiber.StatusInternalServerError && status != fiber.StatusServiceUnavailable {
		logging.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("procedure failed")
	}
	return c.Status(status).JSON(fiber.Map{"error": body})
}

func mapError(err error) (int, apiError) {
	var reqErr *validation.RequestValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &reqErr):
		return fiber.StatusBadRequest, apiError{Code: "BAD_REQUEST", Message: reqErr.Error(), Details: reqErr.Fields}
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest, apiError{Code: "BAD_REQUEST", Message: err.Error()}
	case errors.Is(err, services.ErrUnauthenticated):
		return fiber.StatusUnauthorized, apiError{Code: "UNAUTHORIZED", Message: "Please login"}
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden, apiError{Code: "FORBIDDEN", Message: "Admin access required"}
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict, apiError{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, services.ErrRateLimited):
		return fiber.StatusTooManyRequests, apiError{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, try again later"}
	case errors.Is(err, repository.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable, apiError{Code: "SERVICE_UNAVAILABLE", Message: "Database not available"}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, apiError{Code: fiberErrorCode(fiberErr.Code), Message: fiberErr.Message}
	default:
		return fiber.StatusInternalServerError, apiError{Code: "INTERNAL_SERVER_ERROR", Message: "Internal server error"}
	}
}

func fiberErrorCode(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return "NOT_FOUND"
	case status == fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_SUPPORTED"
	case status == fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case status >= fiber.StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "BAD_REQUEST"
	}
}

func respondResult(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"result": data})
}

func respondSuccess(c *fiber.Ctx) error {
	return respondResult(c, fiber.Map{"success": true})
}

func respondID(c *fiber.Ctx, id int64) error {
	return respondResult(c, fiber.Map{"id": id})
}

// inputPayload returns the raw procedure input: the "input" query parameter
// for queries and the request body for mutations.
func inputPayload(c *fiber.Ctx) []byte {
	if c.Method() == fiber.MethodGet {
		return []byte(c.Query("input"))
	}
	return c.Body()
}

func decodeInput(raw []byte, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return validation.Invalid("input", "input is not valid JSON: "+err.Error())
	}
	return nil
}

// bindInput decodes the procedure input into dst and validates it. A missing
// input leaves dst untouched so optional inputs may be omitted.
func bindInput(c *fiber.Ctx, dst any) error {
	return bindInputBytes(inputPayload(c), dst)
}

type idInput struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// bindUpdate reads a flat {"id": ..., <fields>} input into the id and the patch.
func bindUpdate[P any](c *fiber.Ctx) (int64, P, error) {
	var (
		ref   idInput
		patch P
	)
	raw := inputPayload(c)
	if err := bindInputBytes(raw, &ref); err != nil {
		return 0, patch, err
	}
	if err := bindInputBytes(raw, &patch); err != nil {
		return 0, patch, err
	}
	return ref.ID, patch, nil
}

func bindInputBytes(raw []byte, dst any) error {
	if err := decodeInput(raw, dst); err != nil {
		return err
	}
	return validation.ValidateStruct(dst)
}

type rangeInput struct {
	StartDate *models.Date `json:"startDate"`
	EndDate   *models.Date `json:"endDate"`
}

func (in rangeInput) dateRange() repository.DateRange {
	return repository.DateRange{Start: in.StartDate, End: in.EndDate}
}

type dateInput struct {
	Date models.Date `json:"date" validate:"required"`
}

// currentUserID returns the caller's id. Gates guarantee a user on protected procedures.
func currentUserID(c *fiber.Ctx) (int64, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return 0, services.ErrUnauthenticated
	}
	return user.ID, nil
}
