package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/workforce-backend-go/internal/domain/leave"
	"github.com/workpulse/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/workforce-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	GetMyLeaves(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.Apply(r.Context(), username, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave requested", created)
}

func (h *LeaveHandlerImpl) GetMyLeaves(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	leaves, err := h.leaveService.ListMine(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

func (h *LeaveHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	leaveID := chi.URLParam(r, "leaveID")
	if leaveID == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	var req leave.ProcessLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Process leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	processed, err := h.leaveService.Process(r.Context(), leaveID, username, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave processed", processed)
}
