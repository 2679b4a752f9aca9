package contract

import (
	"time"

	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/timeline"
)

type CalendarMode string

const (
	CalendarDays  CalendarMode = "day"
	CalendarWeeks CalendarMode = "week"
)

// CalendarRequest asks for a column-per-day or column-per-week view of the
// schedule. Nil window bounds derive from the scheduled items.
type CalendarRequest struct {
	Now         *time.Time
	Mode        CalendarMode
	WindowStart *time.Time
	WindowEnd   *time.Time
	BufferHours *float64
}

func NewCalendarRequest() CalendarRequest {
	return CalendarRequest{Mode: CalendarWeeks}
}

// CalendarCell pairs a column with the items touching it and the conflicts
// among just those items.
type CalendarCell struct {
	Column    timeline.Column
	Items     []timeline.Scheduled
	Conflicts []timeline.Conflict
}

type CalendarResponse struct {
	GeneratedAt time.Time
	Mode        CalendarMode
	Window      timeline.Window
	Cells       []CalendarCell
	Unscheduled []domain.ScheduleItem
}

type CalendarErrorCode string

const (
	CalendarErrInvalidMode CalendarErrorCode = "INVALID_MODE"
)

type CalendarError struct {
	Code    CalendarErrorCode
	Message string
}

func (e *CalendarError) Error() string {
	return string(e.Code) + ": " + e.Message
}
