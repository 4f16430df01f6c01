package request

import (
	"rsvp-service/internal/domain/rsvp"
	"rsvp-service/internal/handler/dto"
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

func (p *ReservationPayload) ToDomain() rsvp.Reservation {
	return rsvp.Reservation{
		ID:         p.ID,
		UserID:     p.UserID,
		ResourceID: p.ResourceID,
		Start:      p.Start.Time(),
		End:        p.End.Time(),
		Note:       p.Note,
		Status:     rsvp.ParseStatus(p.Status),
	}
}

type ReserveRequest struct {
	Reservation *ReservationPayload `json:"reservation"`
}

type UpdateNoteRequest struct {
	Note string `json:"note"`
}

type QueryPayload struct {
	UserID     string         `json:"user_id"`
	ResourceID string         `json:"resource_id"`
	Status     string         `json:"status"`
	Start      *dto.Timestamp `json:"start"`
	End        *dto.Timestamp `json:"end"`
	Page       int32          `json:"page"`
	PageSize   int64          `json:"page_size"`
	Desc       bool           `json:"desc"`
}

func (p *QueryPayload) ToDomain() rsvp.ReservationQuery {
	query := rsvp.ReservationQuery{
		UserID:     p.UserID,
		ResourceID: p.ResourceID,
		Status:     rsvp.ParseStatus(p.Status),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Desc:       p.Desc,
	}
	if p.Start != nil {
		start := p.Start.Time()
		query.Start = &start
	}
	if p.End != nil {
		end := p.End.Time()
		query.End = &end
	}
	return query
}

type QueryRequest struct {
	Query *QueryPayload `json:"query"`
}

type FilterPayload struct {
	UserID     string `json:"user_id"`
	ResourceID string `json:"resource_id"`
	Status     string `json:"status"`
	Cursor     *int64 `json:"cursor"`
	PageSize   int64  `json:"page_size"`
	Desc       bool   `json:"desc"`
}

// ToDomain applies the constructor defaults for omitted fields; validation
// of the result stays with the engine.
func (p *FilterPayload) ToDomain() rsvp.ReservationFilter {
	filter := rsvp.ReservationFilter{
		UserID:     p.UserID,
		ResourceID: p.ResourceID,
		Status:     rsvp.ParseStatus(p.Status),
		Cursor:     p.Cursor,
		PageSize:   p.PageSize,
		Desc:       p.Desc,
	}
	if filter.PageSize == 0 {
		filter.PageSize = rsvp.DefaultPageSize
	}
	return filter
}

type FilterRequest struct {
	Filter *FilterPayload `json:"filter"`
}
