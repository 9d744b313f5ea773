package forecast

import "errors"

// Callers tell failures apart with errors.Is. The underlying cause, when
// there is one, is wrapped alongside.
var (
	// ErrInvalidArgument reports a day offset that is not a finite number >= 0.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNetwork reports a transport failure or a non-success upstream status.
	ErrNetwork = errors.New("could not load weather data")
	// ErrNoDailyData reports a response without a usable entry for the date.
	ErrNoDailyData = errors.New("no daily data for selected date")
)
