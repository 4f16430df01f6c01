package rsvp

import "time"

// ReservationQuery is the time-window read: reservations whose timespan is
// contained in [Start, End), matching the user/resource filters and the
// exact status (StatusUnknown means any). Nil bounds leave that side of the
// window open.
type ReservationQuery struct {
	UserID     string     `json:"user_id"`
	ResourceID string     `json:"resource_id"`
	Status     Status     `json:"status"`
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	Page       int32      `json:"page"`
	PageSize   int64      `json:"page_size"`
	Desc       bool       `json:"desc"`
}

// NewReservationQuery returns a query over all time for the given filters.
func NewReservationQuery(userID, resourceID string, status Status) ReservationQuery {
	return ReservationQuery{
		UserID:     userID,
		ResourceID: resourceID,
		Status:     status,
		PageSize:   DefaultPageSize,
	}
}

func (q *ReservationQuery) Validate() error {
	if !q.Status.Known() {
		return &InvalidStatusError{Status: q.Status}
	}
	if q.Start != nil && q.End != nil && !q.Start.Before(*q.End) {
		return ErrInvalidTime
	}
	return nil
}
