package appointment

import (
	"sort"
	"time"
)

type Service struct {
	ID   int32
	Name string
}

type Appointment struct {
	id         int32
	clientName string
	phone      string
	service    string
	slot       Slot
	createdAt  time.Time
}

// ReconstructAppointment rebuilds a persisted appointment; id and createdAt
// are assigned by the store.
func ReconstructAppointment(
	id int32,
	clientName, phone, service string,
	slot Slot,
	createdAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		clientName: clientName,
		phone:      phone,
		service:    service,
		slot:       slot,
		createdAt:  createdAt,
	}
}

func (a *Appointment) ID() int32            { return a.id }
func (a *Appointment) ClientName() string   { return a.clientName }
func (a *Appointment) Phone() string        { return a.phone }
func (a *Appointment) Service() string      { return a.service }
func (a *Appointment) Slot() Slot           { return a.slot }
func (a *Appointment) Date() Date           { return a.slot.Date }
func (a *Appointment) Time() TimeOfDay      { return a.slot.Time }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }

// OccupiedSlot is what availability reports for a taken slot.
type OccupiedSlot struct {
	Time       TimeOfDay
	ClientName string
	Service    string
}

// SortByTime orders slots ascending by time of day, keeping the relative order of equal times.
func SortByTime(slots []OccupiedSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time.Before(slots[j].Time)
	})
}

// ContainsTime reports whether any slot starts at exactly t. There is no
// tolerance window.
func ContainsTime(slots []OccupiedSlot, t TimeOfDay) bool {
	for _, s := range slots {
		if s.Time == t {
			return true
		}
	}
	return false
}
