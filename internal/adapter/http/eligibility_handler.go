package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credit-approval-system/internal/usecase/eligibility"
)

type EligibilityHandler struct{ uc *eligibility.Usecase }

func NewEligibilityHandler(uc *eligibility.Usecase) *EligibilityHandler {
	return &EligibilityHandler{uc: uc}
}

type checkEligibilityReq struct {
	CustomerID   string  `json:"customer_id"   validate:"required"`
	LoanAmount   float64 `json:"loan_amount"   validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,dec2"`
	Tenure       int     `json:"tenure"        validate:"required,gte=1"`
}

// CheckEligibility is read-only; a reject comes back as approval=false with
// status 200, not as an error.
func (h *EligibilityHandler) CheckEligibility(c echo.Context) error {
	var req checkEligibilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Check(c.Request().Context(), eligibility.CheckInput{
		CustomerID:   req.CustomerID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Tenure:       req.Tenure,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
