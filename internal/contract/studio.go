package contract

import (
	"time"

	"github.com/adelarue/backline/internal/timeline"
)

// StudioRequest carries the knobs for a timeline build. Nil fields fall back
// to stored settings or derived values in the service layer.
type StudioRequest struct {
	Now         *time.Time
	WindowStart *time.Time
	WindowEnd   *time.Time
	Granularity string   // empty = stored setting
	BufferHours *float64 // nil = stored setting
}

func NewStudioRequest() StudioRequest {
	return StudioRequest{}
}

type StudioResponse struct {
	GeneratedAt time.Time
	Result      timeline.Result
	BufferHours float64
	ItemCount   int
	EdgeCount   int
}

type StudioErrorCode string

const (
	ErrInvalidWindow StudioErrorCode = "INVALID_WINDOW"
	ErrInvalidBuffer StudioErrorCode = "INVALID_BUFFER"
	ErrDataIntegrity StudioErrorCode = "DATA_INTEGRITY"
	ErrInternalError StudioErrorCode = "INTERNAL_ERROR"
)

type StudioError struct {
	Code    StudioErrorCode
	Message string
}

func (e *StudioError) Error() string {
	return string(e.Code) + ": " + e.Message
}
