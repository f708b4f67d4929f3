package ingest

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"credit-approval-system/internal/domain/customer"
	"credit-approval-system/internal/domain/loan"
	"credit-approval-system/pkg/id"
)

// Accepted header spellings per logical field. Aliases are resolved once
// per imported sheet; matching is exact after trimming, independent of the
// decision engine.
var customerAliases = map[string][]string{
	"customer_id":    {"customer_id", "Customer ID", "customer id"},
	"first_name":     {"first_name", "First Name", "first name"},
	"last_name":      {"last_name", "Last Name", "last name"},
	"phone_number":   {"phone_number", "Phone Number", "phone number", "Phone"},
	"monthly_salary": {"monthly_salary", "Monthly Salary", "monthly salary", "Salary"},
	"approved_limit": {"approved_limit", "Approved Limit", "approved limit"},
	"current_debt":   {"current_debt", "Current Debt", "current debt"},
}

var loanAliases = map[string][]string{
	"loan_id":           {"loan_id", "Loan ID", "loan id"},
	"customer_id":       {"customer_id", "Customer ID", "customer id"},
	"loan_amount":       {"loan_amount", "Loan Amount", "loan amount"},
	"tenure":            {"tenure", "Tenure"},
	"interest_rate":     {"interest_rate", "Interest Rate", "interest rate"},
	"monthly_repayment": {"monthly_repayment", "Monthly payment", "monthly payment", "Monthly Payment", "EMI"},
	"emis_paid_on_time": {"emis_paid_on_time", "EMIs paid on Time", "emis paid on time"},
	"start_date":        {"start_date", "Date of Approval", "start date", "approval date"},
	"end_date":          {"end_date", "End Date", "end date"},
	"status":            {"status", "Status"},
}

type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
}

func NewUsecase(customers customer.Repository, loans loan.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans}
}

type Result struct {
	Message            string `json:"message"`
	ProcessedCustomers int    `json:"processed_customers"`
	ProcessedLoans     int    `json:"processed_loans"`
}

// ImportCustomers upserts customer rows from an xlsx workbook (first
// sheet). Rows missing required fields are skipped, not fatal.
func (u *Usecase) ImportCustomers(ctx context.Context, r io.Reader) (int, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, nil
	}
	cols := resolveColumns(rows[0], customerAliases)

	processed := 0
	for _, row := range rows[1:] {
		salary, okSalary := parseFloat(cell(row, cols["monthly_salary"]))
		limit, okLimit := parseFloat(cell(row, cols["approved_limit"]))
		first := cell(row, cols["first_name"])
		last := cell(row, cols["last_name"])
		if !okSalary || !okLimit || first == "" || last == "" {
			continue
		}

		c := &customer.Customer{
			CustomerID:    orNewID(cell(row, cols["customer_id"])),
			FirstName:     first,
			LastName:      last,
			MonthlySalary: salary,
			ApprovedLimit: limit,
			CreatedAt:     time.Now().UTC(),
		}
		if phone := cell(row, cols["phone_number"]); phone != "" {
			c.PhoneNumber = &phone
		}
		if debt, ok := parseFloat(cell(row, cols["current_debt"])); ok {
			c.CurrentDebt = debt
		}

		if err := u.customers.Upsert(ctx, c); err != nil {
			continue
		}
		processed++
	}
	return processed, nil
}

// ImportLoans upserts loan rows from an xlsx workbook (first sheet).
// Incoming status strings are preserved, defaulting to active.
func (u *Usecase) ImportLoans(ctx context.Context, r io.Reader) (int, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, nil
	}
	cols := resolveColumns(rows[0], loanAliases)

	processed := 0
	for _, row := range rows[1:] {
		customerID := cell(row, cols["customer_id"])
		amount, okAmount := parseFloat(cell(row, cols["loan_amount"]))
		tenure, okTenure := parseInt(cell(row, cols["tenure"]))
		rate, okRate := parseFloat(cell(row, cols["interest_rate"]))
		emi, okEMI := parseFloat(cell(row, cols["monthly_repayment"]))
		if customerID == "" || !okAmount || !okTenure || !okRate || !okEMI {
			continue
		}

		l := &loan.Loan{
			LoanID:           orNewID(cell(row, cols["loan_id"])),
			CustomerID:       customerID,
			LoanAmount:       amount,
			Tenure:           tenure,
			InterestRate:     rate,
			MonthlyRepayment: emi,
			StartDate:        parseDate(cell(row, cols["start_date"])),
			EndDate:          parseDate(cell(row, cols["end_date"])),
			Status:           loan.StatusActive,
			CreatedAt:        time.Now().UTC(),
		}
		if onTime, ok := parseInt(cell(row, cols["emis_paid_on_time"])); ok {
			l.EMIsPaidOnTime = onTime
		}
		if status := cell(row, cols["status"]); status != "" {
			l.Status = status
		}

		if err := u.loans.Upsert(ctx, l); err != nil {
			continue
		}
		processed++
	}
	return processed, nil
}

func sheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(f.GetSheetName(0))
}

// resolveColumns maps each logical field to its column index, -1 when no
// alias matches.
func resolveColumns(header []string, aliases map[string][]string) map[string]int {
	cols := make(map[string]int, len(aliases))
	for field, names := range aliases {
		cols[field] = -1
		for i, h := range header {
			h = strings.TrimSpace(h)
			for _, name := range names {
				if h == name {
					cols[field] = i
					break
				}
			}
			if cols[field] >= 0 {
				break
			}
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func orNewID(v string) string {
	if v == "" {
		return id.NewID32()
	}
	return v
}

func parseFloat(v string) (float64, bool) {
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	return f, err == nil
}

func parseInt(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	// spreadsheets frequently render ints as "12.0"
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
}

func parseDate(v string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}
