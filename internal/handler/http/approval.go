package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftline/timeclock-backend-go/internal/domain/approval"
	"github.com/shiftline/timeclock-backend-go/internal/handler/http/response"
)

type ApprovalHandler interface {
	ListInRange(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService approval.ApprovalService
}

func NewApprovalHandler(approvalService approval.ApprovalService) ApprovalHandler {
	return &approvalHandlerImpl{
		approvalService: approvalService,
	}
}

// ListInRange implements ApprovalHandler.
func (h *approvalHandlerImpl) ListInRange(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := approval.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.approvalService.ListInRange(r.Context(), principal, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Adjust implements ApprovalHandler.
func (h *approvalHandlerImpl) Adjust(w http.ResponseWriter, r *http.Request) {
	principal, err := PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req approval.AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Adjust decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PunchID = chi.URLParam(r, "id")

	result, err := h.approvalService.Adjust(r.Context(), principal, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch adjusted successfully", result)
}
