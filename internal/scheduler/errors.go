package scheduler

import "errors"

var (
	// ErrInvalidConfiguration marks a generation request with unusable
	// settings or an empty roster.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrScheduleInfeasible is returned when a day ends with zero new
	// assignments while hours remain: the greedy policy cannot make
	// progress and would otherwise loop forever.
	ErrScheduleInfeasible = errors.New("schedule infeasible")
	// ErrDayLimitReached is returned when the configured day cap is hit
	// with hours still owed.
	ErrDayLimitReached = errors.New("day limit reached")
)
