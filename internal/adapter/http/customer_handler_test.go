package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	customerdomain "credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/testutil/customermock"
	"credit-approval-system/internal/testutil/loanmock"
	uc "credit-approval-system/internal/usecase/customer"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func jsonRequest(method, target string, body *bytes.Reader) *stdhttp.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// -------- tests --------

func TestRegister_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCustomerHandler(uc.NewUsecase(&customermock.Repo{}, &loanmock.Repo{}))

	req := jsonRequest(stdhttp.MethodPost, "/api/register", mustJSON(map[string]any{
		"first_name":     "Asha",
		"last_name":      "Verma",
		"phone_number":   "9876543210",
		"monthly_salary": 50000,
	}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got uc.RegisterDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ApprovedLimit != 1800000 {
		t.Fatalf("approved_limit = %v, want 1800000", got.ApprovedLimit)
	}
	if len(got.CustomerID) != 32 {
		t.Fatalf("customer_id = %q", got.CustomerID)
	}
}

func TestRegister_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCustomerHandler(uc.NewUsecase(&customermock.Repo{
		CreateFn: func(ctx context.Context, c *customerdomain.Customer) error {
			t.Fatal("Create must not be called")
			return nil
		},
	}, &loanmock.Repo{}))

	req := jsonRequest(stdhttp.MethodPost, "/api/register", mustJSON(map[string]any{
		"first_name":     "",
		"last_name":      "Verma",
		"monthly_salary": -50,
	}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "FirstName", "required") {
		t.Fatalf("details = %+v, want FirstName required", er.Details)
	}
	if !containsFieldMsg(er.Details, "MonthlySalary", "greater than") {
		t.Fatalf("details = %+v, want MonthlySalary > 0", er.Details)
	}
}

func TestRegister_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCustomerHandler(uc.NewUsecase(&customermock.Repo{}, &loanmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/register", strings.NewReader(`{"first_name":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := NewCustomerHandler(uc.NewUsecase(&customermock.Repo{}, &loanmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/get-customer/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customer_id")
	c.SetParamValues("ffffffffffffffffffffffffffffffff")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
