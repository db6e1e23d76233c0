package scraper

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is matched by AuthenticationError through errors.Is.
var ErrInvalidCredentials = errors.New("invalid credentials")

// NetworkError is returned when a request could not be completed or the
// server answered with an unexpected status.
type NetworkError struct {
	URL    string
	Status int // 0 when the request never got a response
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("unexpected status code %d when fetching %s", e.Status, e.URL)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError means a page did not have the structure the login flow relies on.
// It usually means the site layout changed.
type ProtocolError struct {
	URL    string
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected page structure at %s: %s", e.URL, e.Reason)
}

// AuthenticationError is returned when the login form is still shown after
// the maximum number of attempts.
type AuthenticationError struct {
	Attempts int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("login rejected after %d attempts: please check your username and password", e.Attempts)
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrInvalidCredentials
}
