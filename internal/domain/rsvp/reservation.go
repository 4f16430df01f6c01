package rsvp

import (
	"encoding/json"
	"time"
)

// Status is the reservation lifecycle state. The string forms match the
// persisted rsvp.reservation_status enum; StatusUnknown is a wire sentinel
// and never reaches the table.
type Status int32

const (
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusBlocked
)

var statusNames = map[Status]string{
	StatusUnknown:   "unknown",
	StatusPending:   "pending",
	StatusConfirmed: "confirmed",
	StatusBlocked:   "blocked",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Known reports whether s is a member of the closed enum, including the
// StatusUnknown sentinel.
func (s Status) Known() bool {
	_, ok := statusNames[s]
	return ok
}

func ParseStatus(name string) Status {
	for s, n := range statusNames {
		if n == name {
			return s
		}
	}
	return StatusUnknown
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = ParseStatus(name)
	return nil
}

// Reservation is a time-bounded hold on a resource. The zero ID means
// "not yet persisted"; the store assigns ids on insert. [Start, End) is a
// half-open UTC interval.
type Reservation struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	ResourceID string    `json:"resource_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Note       string    `json:"note"`
	Status     Status    `json:"status"`
}

// NewPending builds an unpersisted reservation in the insert-default state.
func NewPending(userID, resourceID string, start, end time.Time, note string) Reservation {
	return Reservation{
		UserID:     userID,
		ResourceID: resourceID,
		Start:      start.UTC(),
		End:        end.UTC(),
		Note:       note,
		Status:     StatusPending,
	}
}

func (r Reservation) Validate() error {
	if r.UserID == "" {
		return &InvalidUserIDError{ID: r.UserID}
	}
	if r.ResourceID == "" {
		return &InvalidResourceIDError{ID: r.ResourceID}
	}
	return ValidateRange(r.Start, r.End)
}

// ValidateRange enforces the half-open interval invariant: both bounds
// present and start strictly before end.
func ValidateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrInvalidTime
	}
	if !start.Before(end) {
		return ErrInvalidTime
	}
	return nil
}

func ValidateReservationID(id int64) error {
	if id <= 0 {
		return &InvalidReservationIDError{ID: id}
	}
	return nil
}
