package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/universitio/hr-backend-go/internal/domain/leave"
	"github.com/universitio/hr-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeaveRequest(w http.ResponseWriter, r *http.Request)
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	ListMyLeaveRequests(w http.ResponseWriter, r *http.Request)
	ApproveLeaveRequest(w http.ResponseWriter, r *http.Request)
	RejectLeaveRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateLeaveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLeaveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, err := h.leaveService.CreateRequest(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request created", "leave_request_id", request.ID)
	response.Created(w, "Leave request submitted", request)
}

// ListLeaveRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	list, err := h.leaveService.ListRequests(r.Context())
	if err != nil {
		slog.Error("ListLeaveRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Requests, &response.Meta{TotalItems: list.TotalCount})
}

// ListMyLeaveRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	list, err := h.leaveService.ListMyRequests(r.Context())
	if err != nil {
		slog.Error("ListMyLeaveRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Requests, &response.Meta{TotalItems: list.TotalCount})
}

// ApproveLeaveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	request, err := h.leaveService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("ApproveLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request approved", "leave_request_id", id)
	response.SuccessWithMessage(w, "Leave request approved", request)
}

// RejectLeaveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	request, err := h.leaveService.Reject(r.Context(), id)
	if err != nil {
		slog.Error("RejectLeaveRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request rejected", "leave_request_id", id)
	response.SuccessWithMessage(w, "Leave request rejected", request)
}
