package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credit-approval-system/internal/usecase/customer"
)

type CustomerHandler struct{ uc *customer.Usecase }

func NewCustomerHandler(uc *customer.Usecase) *CustomerHandler { return &CustomerHandler{uc: uc} }

type registerReq struct {
	FirstName     string  `json:"first_name"     validate:"required"`
	LastName      string  `json:"last_name"      validate:"required"`
	PhoneNumber   *string `json:"phone_number"`
	MonthlySalary float64 `json:"monthly_salary" validate:"required,gt=0,dec2"`
}

func (h *CustomerHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Register(c.Request().Context(), customer.RegisterInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PhoneNumber:   req.PhoneNumber,
		MonthlySalary: req.MonthlySalary,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	customerID := c.Param("customer_id")
	if customerID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing customer_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), customerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
