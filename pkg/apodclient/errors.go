package apodclient

import "fmt"

// UpstreamError is returned when the APOD API answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream request failed: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream request failed: %s", e.Status)
}

// Is allows for error checking with errors.Is().
func (e *UpstreamError) Is(target error) bool {
	_, ok := target.(*UpstreamError)
	return ok
}

// InvalidDateError is returned for dates that are not YYYY-MM-DD or that
// precede the first picture.
type InvalidDateError struct {
	Date   string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Date, e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *InvalidDateError) Is(target error) bool {
	_, ok := target.(*InvalidDateError)
	return ok
}

// DecodeError is returned when a successful response body is not a JSON object.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode APOD response: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}
