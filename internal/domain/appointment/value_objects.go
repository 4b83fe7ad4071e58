package appointment

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinNameLength  = 3
	MinPhoneLength = 10
)

var (
	ErrInvalidDate = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidTime = errors.New("time must use the HH:MM or HH:MM:SS format")

	// Calendar validity (e.g. 2025-02-30) is not checked here; the store rejects it.
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)
)

// Date is a calendar date in YYYY-MM-DD form with no time component.
type Date struct {
	value string
}

func ParseDate(s string) (Date, error) {
	if !datePattern.MatchString(s) {
		return Date{}, ErrInvalidDate
	}
	return Date{value: s}, nil
}

func (d Date) String() string { return d.value }
func (d Date) IsZero() bool   { return d.value == "" }

const microsPerSecond = int64(1_000_000)

// TimeOfDay is a wall-clock time with no timezone, at second precision.
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, ErrInvalidTime
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec := 0
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
	}
	if h > 23 || mi > 59 || sec > 59 {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{hour: h, minute: mi, second: sec}, nil
}

// TimeOfDayFromMicros converts the microseconds-since-midnight of a TIME column.
func TimeOfDayFromMicros(us int64) TimeOfDay {
	secs := us / microsPerSecond
	return TimeOfDay{
		hour:   int(secs / 3600 % 24),
		minute: int(secs / 60 % 60),
		second: int(secs % 60),
	}
}

func (t TimeOfDay) Micros() int64 {
	return int64(t.hour*3600+t.minute*60+t.second) * microsPerSecond
}

// String renders HH:MM, or HH:MM:SS when seconds are set.
func (t TimeOfDay) String() string {
	if t.second == 0 {
		return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// SQLValue is the literal passed to the TIME column.
func (t TimeOfDay) SQLValue() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Micros() < other.Micros()
}

// Slot is one bookable unit.
type Slot struct {
	Date Date
	Time TimeOfDay
}

func (s Slot) String() string {
	return s.Date.String() + " " + s.Time.String()
}

// ClientName is trimmed and at least MinNameLength characters long.
type ClientName struct {
	value string
}

func NewClientName(raw string) (ClientName, error) {
	v := strings.TrimSpace(raw)
	if len([]rune(v)) < MinNameLength {
		return ClientName{}, newValidationError(KindInvalidName, FieldName)
	}
	return ClientName{value: v}, nil
}

func (n ClientName) String() string { return n.value }

// Phone is trimmed and at least MinPhoneLength characters long. No digit-only
// rule is applied; formatting characters count toward the length.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	v := strings.TrimSpace(raw)
	if len([]rune(v)) < MinPhoneLength {
		return Phone{}, newValidationError(KindInvalidPhone, FieldPhone)
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }
