package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"credit-approval-system/internal/usecase/ingest"
)

type IngestHandler struct{ uc *ingest.Usecase }

func NewIngestHandler(uc *ingest.Usecase) *IngestHandler { return &IngestHandler{uc: uc} }

// IngestData accepts multipart uploads under "customer_data" and
// "loan_data"; either may be absent. Only xlsx/xls files are processed.
func (h *IngestHandler) IngestData(c echo.Context) error {
	res := ingest.Result{Message: "Data ingestion completed"}
	ctx := c.Request().Context()

	if fh, err := c.FormFile("customer_data"); err == nil && isSpreadsheet(fh.Filename) {
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data ingestion failed: " + err.Error()})
		}
		n, err := h.uc.ImportCustomers(ctx, f)
		f.Close()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data ingestion failed: " + err.Error()})
		}
		res.ProcessedCustomers = n
	}

	if fh, err := c.FormFile("loan_data"); err == nil && isSpreadsheet(fh.Filename) {
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data ingestion failed: " + err.Error()})
		}
		n, err := h.uc.ImportLoans(ctx, f)
		f.Close()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "data ingestion failed: " + err.Error()})
		}
		res.ProcessedLoans = n
	}

	return c.JSON(http.StatusOK, res)
}

func isSpreadsheet(name string) bool {
	return strings.HasSuffix(name, ".xlsx") || strings.HasSuffix(name, ".xls")
}
