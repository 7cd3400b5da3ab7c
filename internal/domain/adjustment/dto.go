package adjustment

import (
	"time"

	"github.com/workpulse/workforce-backend-go/internal/pkg/calendar"
	"github.com/workpulse/workforce-backend-go/internal/pkg/validator"
)

const timeLayout = time.RFC3339

type RequestAdjustmentRequest struct {
	RequestedCheckIn  string `json:"requested_check_in"`
	RequestedCheckOut string `json:"requested_check_out"`
	Reason            string `json:"reason"`
}

func (r *RequestAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestedCheckIn) {
		errs = append(errs, validator.ValidationError{Field: "requested_check_in", Message: "requested check-in is required"})
	} else if _, ok := validator.IsValidTimestamp(r.RequestedCheckIn); !ok {
		errs = append(errs, validator.ValidationError{Field: "requested_check_in", Message: "requested check-in must be a valid RFC 3339 timestamp"})
	}

	if validator.IsEmpty(r.RequestedCheckOut) {
		errs = append(errs, validator.ValidationError{Field: "requested_check_out", Message: "requested check-out is required"})
	} else if _, ok := validator.IsValidTimestamp(r.RequestedCheckOut); !ok {
		errs = append(errs, validator.ValidationError{Field: "requested_check_out", Message: "requested check-out must be a valid RFC 3339 timestamp"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Times parses the requested window. The range check lives here rather than
// in Validate so callers get the sentinel instead of a field error.
func (r *RequestAdjustmentRequest) Times() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(timeLayout, r.RequestedCheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(timeLayout, r.RequestedCheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	// Equal times are allowed; approval then yields a zero-length session.
	if checkIn.After(checkOut) {
		return time.Time{}, time.Time{}, ErrInvalidTimeRange
	}
	return checkIn, checkOut, nil
}

type AdjustmentResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	RequestedCheckIn  string  `json:"requested_check_in"`
	RequestedCheckOut string  `json:"requested_check_out"`
	Reason            string  `json:"reason"`
	Status            string  `json:"status"`
	ProcessedBy       *string `json:"processed_by"`
	ProcessedAt       *string `json:"processed_at"`
	RequestedDuration string  `json:"requested_duration"`
}

func ToResponse(a Adjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		RequestedCheckIn:  a.RequestedCheckIn.Format(timeLayout),
		RequestedCheckOut: a.RequestedCheckOut.Format(timeLayout),
		Reason:            a.Reason,
		Status:            string(a.Status),
		RequestedDuration: calendar.FormatDuration(a.RequestedCheckOut.Sub(a.RequestedCheckIn)),
	}
	if a.ProcessedBy != nil {
		by := *a.ProcessedBy
		resp.ProcessedBy = &by
	}
	if a.ProcessedAt != nil {
		at := a.ProcessedAt.Format(timeLayout)
		resp.ProcessedAt = &at
	}
	return resp
}

func ToResponses(adjustments []Adjustment) []AdjustmentResponse {
	out := make([]AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, ToResponse(a))
	}
	return out
}
