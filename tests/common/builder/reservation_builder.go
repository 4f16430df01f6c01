//go:build unit || integration

package builder

import (
	"time"

	"rsvp-service/internal/domain/rsvp"
	"rsvp-service/internal/handler/dto"
	reqdto "rsvp-service/internal/handler/dto/request"
)

// ReservationBuilder produces consistent reservation fixtures for tests.
type ReservationBuilder struct {
	reservation rsvp.Reservation
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: rsvp.Reservation{
			ID:         1,
			UserID:     "alice",
			ResourceID: "ocean-view-room-713",
			Start:      time.Date(2025, 12, 25, 15, 0, 0, 0, time.UTC),
			End:        time.Date(2025, 12, 28, 12, 0, 0, 0, time.UTC),
			Note:       "I need to book this for xyz project for a month.",
			Status:     rsvp.StatusPending,
		},
	}
}

func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.reservation.ID = id
	return b
}

func (b *ReservationBuilder) WithUserID(userID string) *ReservationBuilder {
	b.reservation.UserID = userID
	return b
}

func (b *ReservationBuilder) WithResourceID(resourceID string) *ReservationBuilder {
	b.reservation.ResourceID = resourceID
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.reservation.Start = start
	b.reservation.End = end
	return b
}

func (b *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	b.reservation.Note = note
	return b
}

func (b *ReservationBuilder) WithStatus(status rsvp.Status) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

func (b *ReservationBuilder) Build() rsvp.Reservation {
	return b.reservation
}

func (b *ReservationBuilder) BuildReserveRequest() reqdto.ReserveRequest {
	r := b.reservation
	return reqdto.ReserveRequest{
		Reservation: &reqdto.ReservationPayload{
			UserID:     r.UserID,
			ResourceID: r.ResourceID,
			Start:      dto.FromTime(r.Start),
			End:        dto.FromTime(r.End),
			Note:       r.Note,
			Status:     r.Status.String(),
		},
	}
}
