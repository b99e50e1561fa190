package fetch

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork = errors.New("network error")
	ErrDecode  = errors.New("decode error")
)

// FailedMessage is what the UI shows for any load failure.
const FailedMessage = "Failed to fetch data. Please check your internet connection and try again."

// NetworkError reports that the dataset could not be retrieved.
type NetworkError struct {
	Source string
	Status string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("fetch %s: unexpected status %s", e.Source, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNetwork}
	}
	return []error{ErrNetwork, e.Err}
}

// DecodeError reports a response body that does not match the country schema.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}
