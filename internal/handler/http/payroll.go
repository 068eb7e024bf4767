package http

import (
	"bytes"
	"net/http"

	"github.com/shiftline/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftline/timeclock-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Report implements PayrollHandler.
func (h *payrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := payroll.ReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.payrollService.Report(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements PayrollHandler. Streams the report as a CSV
// download; validation and permission failures still return the JSON
// error envelope.
func (h *payrollHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := payroll.ReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	// Buffer the CSV so errors can still go out as the JSON envelope
	var buf bytes.Buffer
	if err := h.payrollService.WriteCSV(r.Context(), principal, req, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payroll_report.csv"`)
	_, _ = w.Write(buf.Bytes())
}
