package appointment

import "strings"

// BookingRequest is the raw, untrusted input of a booking.
type BookingRequest struct {
	Name    string
	Phone   string
	Service string
	Date    string
	Time    string
}

// NormalizedBooking is a request that passed validation; strings are trimmed.
type NormalizedBooking struct {
	Name    ClientName
	Phone   Phone
	Service string
	Slot    Slot
}

// WithService returns a copy referencing the canonical service name.
func (b NormalizedBooking) WithService(name string) NormalizedBooking {
	b.Service = name
	return b
}

// Validate checks a booking request in a fixed order and stops at the first
// failure. It performs no I/O.
func Validate(req BookingRequest) (NormalizedBooking, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	service := strings.TrimSpace(req.Service)
	date := strings.TrimSpace(req.Date)
	tod := strings.TrimSpace(req.Time)

	var missing []string
	for _, f := range []struct {
		field string
		value string
	}{
		{FieldName, name},
		{FieldPhone, phone},
		{FieldService, service},
		{FieldDate, date},
		{FieldTime, tod},
	} {
		if f.value == "" {
			missing = append(missing, f.field)
		}
	}
	if len(missing) > 0 {
		return NormalizedBooking{}, newValidationError(KindMissingFields, missing...)
	}

	clientName, err := NewClientName(name)
	if err != nil {
		return NormalizedBooking{}, err
	}

	clientPhone, err := NewPhone(phone)
	if err != nil {
		return NormalizedBooking{}, err
	}

	d, err := ParseDate(date)
	if err != nil {
		return NormalizedBooking{}, newValidationError(KindInvalidDateFormat, FieldDate)
	}

	t, err := ParseTimeOfDay(tod)
	if err != nil {
		return NormalizedBooking{}, newValidationError(KindInvalidTimeFormat, FieldTime)
	}

	return NormalizedBooking{
		Name:    clientName,
		Phone:   clientPhone,
		Service: service,
		Slot:    Slot{Date: d, Time: t},
	}, nil
}
