package rsvp

import (
	"fmt"
	"math"
)

const (
	MinPageSize     int64 = 10
	MaxPageSize     int64 = 100
	DefaultPageSize int64 = 10
)

// ReservationFilter selects reservations by user/resource/status and walks
// them in id order with a cursor. Status is required; Normalize coerces the
// StatusUnknown sentinel to StatusPending.
type ReservationFilter struct {
	UserID     string `json:"user_id"`
	ResourceID string `json:"resource_id"`
	Status     Status `json:"status"`
	Cursor     *int64 `json:"cursor,omitempty"`
	PageSize   int64  `json:"page_size"`
	Desc       bool   `json:"desc"`
}

// NewReservationFilter returns a filter with the conventional defaults:
// page size 10, ascending, pending status.
func NewReservationFilter(userID, resourceID string) ReservationFilter {
	return ReservationFilter{
		UserID:     userID,
		ResourceID: resourceID,
		Status:     StatusPending,
		PageSize:   DefaultPageSize,
	}
}

func (f *ReservationFilter) Validate() error {
	if f.PageSize < MinPageSize || f.PageSize > MaxPageSize {
		return &InvalidPageSizeError{Size: f.PageSize}
	}
	if f.Cursor != nil && *f.Cursor <= 0 {
		return &InvalidCursorError{Cursor: *f.Cursor}
	}
	if !f.Status.Known() {
		return &InvalidStatusError{Status: f.Status}
	}
	return nil
}

// Normalize validates the filter and coerces the wire sentinel status to the
// insert default. Call before building SQL.
func (f *ReservationFilter) Normalize() error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Status == StatusUnknown {
		f.Status = StatusPending
	}
	return nil
}

// CursorValue returns the effective cursor bound: 0 ascending and MaxInt64
// descending when no cursor is set, so the first page starts at the edge.
func (f *ReservationFilter) CursorValue() int64 {
	if f.Cursor != nil {
		return *f.Cursor
	}
	if f.Desc {
		return math.MaxInt64
	}
	return 0
}

// Limit is the over-fetch size: one extra row to detect a next page, plus one
// for the cursor row when a cursor is present.
func (f *ReservationFilter) Limit() int64 {
	limit := f.PageSize + 1
	if f.Cursor != nil {
		limit++
	}
	return limit
}

// ToSQL renders the filter as a complete statement. The output is bit-stable:
// the query tests and the pager arithmetic both depend on its exact shape.
func (f *ReservationFilter) ToSQL() string {
	cursorCond := fmt.Sprintf("id > %d", f.CursorValue())
	if f.Desc {
		cursorCond = fmt.Sprintf("id < %d", f.CursorValue())
	}

	var userCond string
	switch {
	case f.UserID == "" && f.ResourceID == "":
		userCond = "TRUE"
	case f.UserID == "":
		userCond = fmt.Sprintf("resource_id = '%s'", f.ResourceID)
	case f.ResourceID == "":
		userCond = fmt.Sprintf("user_id = '%s'", f.UserID)
	default:
		userCond = fmt.Sprintf("user_id = '%s' AND resource_id = '%s'", f.UserID, f.ResourceID)
	}

	direction := "ASC"
	if f.Desc {
		direction = "DESC"
	}

	return fmt.Sprintf(
		"SELECT * FROM rsvp.reservations WHERE status = '%s'::rsvp.reservation_status AND %s AND %s ORDER BY id %s LIMIT %d",
		f.Status, cursorCond, userCond, direction, f.Limit(),
	)
}
