package services

import (
	"errors"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/validation"
)

var (
	ErrUnauthenticated = errors.New("please login")
	ErrForbidden       = errors.New("admin access required")
	ErrConflict        = errors.New("conflict")
	ErrRateLimited     = errors.New("too many requests")

	ErrInvalidInput     = validation.ErrInvalidInput
	ErrStoreUnavailable = repository.ErrStoreUnavailable
)
