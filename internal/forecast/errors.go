package forecast

import "fmt"

// ErrorKind classifies a failed resolution by the hop that failed.
type ErrorKind int

const (
	KindLocationNotFound ErrorKind = iota
	KindOutOfCoverageArea
	KindForecastUnavailable
	KindFetchFailed
	KindUnexpected
)

// Error is a resolution failure with a message safe to show to the caller.
// The underlying transport or decode error, if any, is kept for logging.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func locationNotFound(location string, cause error) *Error {
	return &Error{
		Kind:    KindLocationNotFound,
		Message: fmt.Sprintf("Could not find location '%s'. Please try a valid US city or state name.", location),
		Err:     cause,
	}
}

func outOfCoverageArea(cause error) *Error {
	return &Error{
		Kind:    KindOutOfCoverageArea,
		Message: "This location is not in a US forecast area.",
		Err:     cause,
	}
}

func forecastUnavailable() *Error {
	return &Error{
		Kind:    KindForecastUnavailable,
		Message: "Forecast data not available for this location.",
	}
}

func fetchFailed(cause error) *Error {
	return &Error{
		Kind:    KindFetchFailed,
		Message: "Unable to fetch forecast data.",
		Err:     cause,
	}
}
