package rsvp

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions without parameters. Storage faults are
// classified into these at the infra boundary and marked with ErrDatabase so
// callers can match with errors.Is while keeping the cause chain.
var (
	ErrDatabase    = errors.New("database error")
	ErrConfigRead  = errors.New("failed to read configuration file")
	ErrConfigParse = errors.New("failed to parse configuration file")
	ErrInvalidTime = errors.New("reservation start time or end time is invalid")
	ErrNotFound    = errors.New("no reservation found by the given condition")
	ErrUnknown     = errors.New("reservation error")
)

type InvalidUserIDError struct {
	ID string
}

func (e *InvalidUserIDError) Error() string {
	return fmt.Sprintf("invalid user id %s", e.ID)
}

type InvalidResourceIDError struct {
	ID string
}

func (e *InvalidResourceIDError) Error() string {
	return fmt.Sprintf("invalid resource id %s", e.ID)
}

type InvalidReservationIDError struct {
	ID int64
}

func (e *InvalidReservationIDError) Error() string {
	return fmt.Sprintf("invalid reservation id %d", e.ID)
}

type InvalidStatusError struct {
	Status Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid reservation status %d", int32(e.Status))
}

type InvalidPageSizeError struct {
	Size int64
}

func (e *InvalidPageSizeError) Error() string {
	return fmt.Sprintf("invalid page size %d", e.Size)
}

type InvalidCursorError struct {
	Cursor int64
}

func (e *InvalidCursorError) Error() string {
	return fmt.Sprintf("invalid cursor %d", e.Cursor)
}

// ConflictError reports an interval-exclusion rejection. Info carries the
// attempted and existing windows when the store diagnostic was parseable.
type ConflictError struct {
	Info ConflictInfo
}

func (e *ConflictError) Error() string {
	if e.Info.Parsed() {
		return fmt.Sprintf(
			"conflict reservation: new %s [%s, %s) overlaps old [%s, %s)",
			e.Info.New.RID,
			e.Info.New.Start.Format("2006-01-02T15:04:05Z07:00"),
			e.Info.New.End.Format("2006-01-02T15:04:05Z07:00"),
			e.Info.Old.Start.Format("2006-01-02T15:04:05Z07:00"),
			e.Info.Old.End.Format("2006-01-02T15:04:05Z07:00"),
		)
	}
	return "conflict reservation: " + e.Info.Raw
}
