package dashboard

import (
	"context"
	"errors"
	"strings"
)

const UnsupportedMessage = "Geolocation is not supported by your browser."

type LocationErrorCode string

const (
	LocationPermissionDenied    LocationErrorCode = "PERMISSION_DENIED"
	LocationPositionUnavailable LocationErrorCode = "POSITION_UNAVAILABLE"
	LocationTimeout             LocationErrorCode = "TIMEOUT"
	LocationUnknown             LocationErrorCode = "UNKNOWN"
)

// ParseLocationErrorCode maps a browser error code to the closed set;
// anything unrecognised is LocationUnknown.
func ParseLocationErrorCode(code string) LocationErrorCode {
	switch c := LocationErrorCode(strings.ToUpper(strings.TrimSpace(code))); c {
	case LocationPermissionDenied, LocationPositionUnavailable, LocationTimeout:
		return c
	default:
		return LocationUnknown
	}
}

func (c LocationErrorCode) Message() string {
	switch c {
	case LocationPermissionDenied:
		return "You denied the request for Geolocation."
	case LocationPositionUnavailable:
		return "Location information is unavailable."
	case LocationTimeout:
		return "The request to get user location timed out."
	default:
		return "An unknown error occurred while getting location."
	}
}

type LocationError struct {
	Code LocationErrorCode
}

func (e *LocationError) Error() string {
	return "geolocation: " + string(e.Code)
}

// codeOf classifies a locator failure. A context deadline counts as a
// timeout.
func codeOf(err error) LocationErrorCode {
	var locErr *LocationError
	switch {
	case errors.As(err, &locErr):
		return locErr.Code
	case errors.Is(err, context.DeadlineExceeded):
		return LocationTimeout
	default:
		return LocationUnknown
	}
}

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locator supplies a single best-effort position fix
type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// FixLocator reports a fix already obtained by the browser
type FixLocator Position

func (f FixLocator) Locate(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return Position(f), nil
}

// FailedLocator reports a browser geolocation error
type FailedLocator LocationErrorCode

func (f FailedLocator) Locate(context.Context) (Position, error) {
	return Position{}, &LocationError{Code: LocationErrorCode(f)}
}
