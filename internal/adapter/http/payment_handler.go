package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credit-approval-system/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

// payment_amount is deliberately unconstrained: any amount is a valid
// event, only on-schedule ones move the counter.
type makePaymentReq struct {
	PaymentAmount float64 `json:"payment_amount"`
}

func (h *PaymentHandler) MakePayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req makePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Make(c.Request().Context(), payment.MakeInput{
		LoanID:        loanID,
		PaymentAmount: req.PaymentAmount,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
