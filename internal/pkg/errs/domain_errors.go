package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("slot already taken")

	// Validation errors
	ErrDateRequired = errors.New("date query parameter required")
)
