package task

import (
	"strings"
	"time"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidName   = apperror.New(apperror.ErrValidation, "task name is required")
	ErrInvalidType   = apperror.New(apperror.ErrValidation, "task type must be Meeting, Task or Issue Sorting")
	ErrInvalidDate   = apperror.New(apperror.ErrValidation, "task date must be YYYY-MM-DD")
	ErrInvalidTime   = apperror.New(apperror.ErrValidation, "task time must be HH:MM")
	ErrInvalidStatus = apperror.New(apperror.ErrValidation, "unknown task status")
)

type Type string

const (
	TypeMeeting      Type = "Meeting"
	TypeTask         Type = "Task"
	TypeIssueSorting Type = "Issue Sorting"
)

// Types lists every task type in display order.
func Types() []Type { return []Type{TypeMeeting, TypeTask, TypeIssueSorting} }

func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidType
}

// Status is a task's column on the scrum board.
type Status string

const (
	StatusToDo  Status = "To Do"
	StatusDoing Status = "Doing"
	StatusDone  Status = "Done"
	StatusIssue Status = "Issue Happened"
)

// Statuses lists the board columns left to right.
func Statuses() []Status { return []Status{StatusToDo, StatusDoing, StatusDone, StatusIssue} }

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// Open reports whether work on the task is still outstanding.
func (s Status) Open() bool { return s != StatusDone }

// Task is a scheduled meeting, task or issue-sorting session. Date and Time
// are kept as entered; CreatedAt is stamped by the store.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// New validates the scheduler form and returns a task in To Do.
func New(name, taskType, date, clock string) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, ErrInvalidName
	}
	t, err := ParseType(strings.TrimSpace(taskType))
	if err != nil {
		return Task{}, err
	}
	date = strings.TrimSpace(date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Task{}, ErrInvalidDate
	}
	clock = strings.TrimSpace(clock)
	if _, err := time.Parse(TimeLayout, clock); err != nil {
		return Task{}, ErrInvalidTime
	}
	return Task{Name: name, Type: t, Date: date, Time: clock, Status: StatusToDo}, nil
}
