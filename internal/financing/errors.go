package financing

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter marks out-of-range input detected before a simulation starts
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrEmptySchedule is returned when aggregating a schedule without rows
	ErrEmptySchedule = errors.New("empty schedule")
)

func invalidf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, a...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
