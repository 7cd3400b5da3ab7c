package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse/workforce-backend-go/internal/domain/attendance"
	"github.com/workpulse/workforce-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMySessions(w http.ResponseWriter, r *http.Request)
	GetUserSessions(w http.ResponseWriter, r *http.Request)
	GetMyWeeklyStats(w http.ResponseWriter, r *http.Request)
	GetMyMonthlyStats(w http.ResponseWriter, r *http.Request)
	GetUserWeeklyStats(w http.ResponseWriter, r *http.Request)
	GetUserMonthlyStats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	sessionService attendance.SessionService
}

func NewAttendanceHandler(sessionService attendance.SessionService) AttendanceHandler {
	return &AttendanceHandlerImpl{sessionService: sessionService}
}

func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	session, err := h.sessionService.CheckIn(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", session)
}

func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	session, err := h.sessionService.CheckOut(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", session)
}

func (h *AttendanceHandlerImpl) GetMySessions(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	sessions, err := h.sessionService.ListMine(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sessions)
}

func (h *AttendanceHandlerImpl) GetUserSessions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	sessions, err := h.sessionService.ListForUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sessions)
}

func (h *AttendanceHandlerImpl) GetMyWeeklyStats(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	year, week, ok := weekParams(w, r)
	if !ok {
		return
	}

	stats, err := h.sessionService.WeeklyStats(r.Context(), username, year, week)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *AttendanceHandlerImpl) GetMyMonthlyStats(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		response.Unauthorized(w, "Missing identity")
		return
	}

	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	stats, err := h.sessionService.MonthlyStats(r.Context(), username, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *AttendanceHandlerImpl) GetUserWeeklyStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	year, week, ok := weekParams(w, r)
	if !ok {
		return
	}

	stats, err := h.sessionService.WeeklyStatsForUser(r.Context(), userID, year, week)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

func (h *AttendanceHandlerImpl) GetUserMonthlyStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	year, month, ok := monthParams(w, r)
	if !ok {
		return
	}

	stats, err := h.sessionService.MonthlyStatsForUser(r.Context(), userID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// weekParams reads year and week query parameters, defaulting to the
// current ISO week.
func weekParams(w http.ResponseWriter, r *http.Request) (year, week int, ok bool) {
	now := time.Now()
	defaultYear, defaultWeek := now.ISOWeek()

	year, ok = intQueryParam(w, r, "year", defaultYear)
	if !ok {
		return 0, 0, false
	}
	week, ok = intQueryParam(w, r, "week", defaultWeek)
	if !ok {
		return 0, 0, false
	}
	if week < 1 || week > 53 {
		response.BadRequest(w, "week must be between 1 and 53", nil)
		return 0, 0, false
	}
	return year, week, true
}

// monthParams reads year and month query parameters, defaulting to the
// current month.
func monthParams(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	now := time.Now()

	year, ok = intQueryParam(w, r, "year", now.Year())
	if !ok {
		return 0, 0, false
	}
	month, ok = intQueryParam(w, r, "month", int(now.Month()))
	if !ok {
		return 0, 0, false
	}
	if month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return 0, 0, false
	}
	return year, month, true
}

func intQueryParam(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, name+" must be a number", nil)
		return 0, false
	}
	return value, true
}
