package domain

import "errors"

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrVenueUnavailable  = errors.New("venue is not open for bookings")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeNotFound       = errors.New("verification code not found or expired")
	ErrCodeMismatch       = errors.New("verification code does not match")
)

var (
	ErrValidation = errors.New("validation error")
)

// ConflictError rejects an admission attempt and carries the confirmed
// bookings that block the requested slot so callers can display them.
type ConflictError struct {
	Conflicts []Booking
}

func (e *ConflictError) Error() string {
	return "venue is not available for the selected time slot"
}

// AsConflict unwraps err into a *ConflictError if one is in the chain.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
