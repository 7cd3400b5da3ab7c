package leave

import (
	"time"

	"github.com/workpulse/workforce-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type ApplyLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date is required"})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date is required"})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates parses the already-validated request fields.
func (r *ApplyLeaveRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type ProcessLeaveRequest struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment"`
}

func (r *ProcessLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	} else if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be APPROVED or REJECTED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminComment *string `json:"admin_comment"`
	ProcessedBy  *string `json:"processed_by"`
	ProcessedAt  *string `json:"processed_at"`
}

func ToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		StartDate: l.StartDate.Format(dateLayout),
		EndDate:   l.EndDate.Format(dateLayout),
		Days:      l.Days,
		Reason:    l.Reason,
		Status:    string(l.Status),
	}
	if l.AdminComment != nil {
		c := *l.AdminComment
		resp.AdminComment = &c
	}
	if l.ProcessedBy != nil {
		by := *l.ProcessedBy
		resp.ProcessedBy = &by
	}
	if l.ProcessedAt != nil {
		at := l.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &at
	}
	return resp
}

func ToResponses(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, ToResponse(l))
	}
	return out
}
