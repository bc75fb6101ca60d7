package schedule

import "errors"

// ErrUnparsableSelection signals that the caller's chosen slot could not be
// understood. The dialogue layer is expected to re-prompt.
var ErrUnparsableSelection = errors.New("could not understand the selected time")

// FallbackConfirmation is the caller-safe message returned when the booking
// sink cannot be reached or rejects the submission.
const FallbackConfirmation = "There was an issue scheduling the appointment. Please try again later."
