package response

import (
	"rsvp-service/internal/domain/rsvp"
	"rsvp-service/internal/handler/dto"
	"rsvp-service/internal/infra/manager"
)

type ReservationPayload struct {
	ID         int64          `json:"id"`
	UserID     string         `json:"user_id"`
	ResourceID string         `json:"resource_id"`
	Start      *dto.Timestamp `json:"start"`
	End        *dto.Timestamp `json:"end"`
	Note       string         `json:"note"`
	Status     string         `json:"status"`
}

func FromReservation(r rsvp.Reservation) ReservationPayload {
	return ReservationPayload{
		ID:         r.ID,
		UserID:     r.UserID,
		ResourceID: r.ResourceID,
		Start:      dto.FromTime(r.Start),
		End:        dto.FromTime(r.End),
		Note:       r.Note,
		Status:     r.Status.String(),
	}
}

type ReservationResponse struct {
	Reservation ReservationPayload `json:"reservation"`
}

func FromReservationResponse(r rsvp.Reservation) ReservationResponse {
	return ReservationResponse{Reservation: FromReservation(r)}
}

type PagerPayload struct {
	Prev  int64 `json:"prev"`
	Next  int64 `json:"next"`
	Total int64 `json:"total"`
}

type FilterResponse struct {
	Reservations []ReservationPayload `json:"reservations"`
	Pager        PagerPayload         `json:"pager"`
}

func FromFilterResult(pager rsvp.FilterPager, reservations []rsvp.Reservation) FilterResponse {
	payloads := make([]ReservationPayload, len(reservations))
	for i, r := range reservations {
		payloads[i] = FromReservation(r)
	}
	return FilterResponse{
		Reservations: payloads,
		Pager:        PagerPayload{Prev: pager.Prev, Next: pager.Next, Total: pager.Total},
	}
}

type EventPayload struct {
	Op          string             `json:"op"`
	Reservation ReservationPayload `json:"reservation"`
}

func FromEvent(event manager.Event) EventPayload {
	return EventPayload{Op: event.Op, Reservation: FromReservation(event.Reservation)}
}

// WindowPayload and ConflictDetail shape the failed-precondition response
// body so callers can machine-read the conflicting interval.
type WindowPayload struct {
	RID   string         `json:"rid"`
	Start *dto.Timestamp `json:"start"`
	End   *dto.Timestamp `json:"end"`
}

type ConflictDetail struct {
	New *WindowPayload `json:"new,omitempty"`
	Old *WindowPayload `json:"old,omitempty"`
	Raw string         `json:"raw,omitempty"`
}

func FromConflictInfo(info rsvp.ConflictInfo) ConflictDetail {
	if !info.Parsed() {
		return ConflictDetail{Raw: info.Raw}
	}
	return ConflictDetail{
		New: &WindowPayload{RID: info.New.RID, Start: dto.FromTime(info.New.Start), End: dto.FromTime(info.New.End)},
		Old: &WindowPayload{RID: info.Old.RID, Start: dto.FromTime(info.Old.Start), End: dto.FromTime(info.Old.End)},
	}
}
