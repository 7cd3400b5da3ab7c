package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/workforce-backend-go/internal/domain/adjustment"
	"github.com/workpulse/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/workforce-backend-go/internal/handler/http/response"
)

type AdjustmentHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetMyAdjustments(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type AdjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &AdjustmentHandlerImpl{adjustmentService: adjustmentService}
}

func (h *AdjustmentHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	var req adjustment.RequestAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Request adjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.adjustmentService.Request(r.Context(), username, &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment requested", created)
}

func (h *AdjustmentHandlerImpl) GetMyAdjustments(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	adjustments, err := h.adjustmentService.ListMine(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, adjustments)
}

func (h *AdjustmentHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	adjustments, err := h.adjustmentService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, adjustments)
}

func (h *AdjustmentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.adjustmentService.Approve, "Adjustment approved")
}

func (h *AdjustmentHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.adjustmentService.Reject, "Adjustment rejected")
}

func (h *AdjustmentHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, adjustmentID, approverUsername string) (*adjustment.AdjustmentResponse, error),
	message string,
) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	adjustmentID := chi.URLParam(r, "id")
	if adjustmentID == "" {
		response.BadRequest(w, "Adjustment ID is required", nil)
		return
	}

	decided, err := fn(r.Context(), adjustmentID, username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, decided)
}
