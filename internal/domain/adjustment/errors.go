package adjustment

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("attendance adjustment not found")
	ErrAlreadyProcessed   = errors.New("attendance adjustment has already been processed")
	ErrInvalidTimeRange   = errors.New("requested check-in must not be after requested check-out")
)
