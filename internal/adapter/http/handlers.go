package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"credit-approval-system/internal/domain/credit"
	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Credit Approval System API"})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeDomainError maps usecase errors to HTTP codes: NotFound -> 404,
// business rejection and bad terms -> 400, anything else -> 500 (storage
// failures are surfaced, never retried here).
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, customer.ErrNotFound), errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, credit.ErrNotEligible), errors.Is(err, credit.ErrInvalidTerms):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
