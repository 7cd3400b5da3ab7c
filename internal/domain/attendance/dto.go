package attendance

import (
	"github.com/workpulse/workforce-backend-go/internal/pkg/calendar"
)

// SessionResponse is the wire representation of a session. Duration is
// rendered as "H hours, M minutes, S seconds"; an open session reports "N/A".
type SessionResponse struct {
	ID                   string  `json:"id"`
	UserID               string  `json:"user_id"`
	CheckInTime          string  `json:"check_in_time"`
	CheckOutTime         *string `json:"check_out_time"`
	TotalDurationSeconds *int64  `json:"total_duration_seconds"`
	FormattedDuration    string  `json:"formatted_duration"`
}

func ToResponse(s Session) SessionResponse {
	resp := SessionResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		CheckInTime:       s.CheckInTime.Format(timeLayout),
		FormattedDuration: "N/A",
	}
	if s.CheckOutTime != nil {
		out := s.CheckOutTime.Format(timeLayout)
		resp.CheckOutTime = &out
	}
	if s.TotalDurationSeconds != nil {
		secs := *s.TotalDurationSeconds
		resp.TotalDurationSeconds = &secs
		resp.FormattedDuration = calendar.FormatSeconds(secs)
	}
	return resp
}

func ToResponses(sessions []Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ToResponse(s))
	}
	return out
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// DailyStat is one worked day inside a weekly report. TotalHours carries the
// day's total rendered as "H hours, M minutes, S seconds".
type DailyStat struct {
	Date       string `json:"date"`
	TotalHours string `json:"total_hours"`
}

// WeeklyStatsResponse summarizes the sessions of one calendar week. Totals
// are formatted duration strings, same rendering as a closed session.
type WeeklyStatsResponse struct {
	Year                     int         `json:"year"`
	WeekOfYear               int         `json:"week_of_year"`
	TotalHoursThisWeek       string      `json:"total_hours_this_week"`
	TotalWorkingDaysThisWeek int         `json:"total_working_days_this_week"`
	DailyBreakdown           []DailyStat `json:"daily_breakdown"`
}

// WeekStat is one week's total inside a monthly report. Week labels follow
// the ISO week of the session's check-in date, e.g. "Week 14".
type WeekStat struct {
	Week       string `json:"week"`
	TotalHours string `json:"total_hours"`
}

// MonthlyStatsResponse summarizes the sessions of one calendar month.
type MonthlyStatsResponse struct {
	Year                int        `json:"year"`
	Month               int        `json:"month"`
	TotalHoursThisMonth string     `json:"total_hours_this_month"`
	WeeklyBreakdown     []WeekStat `json:"weekly_breakdown"`
}
