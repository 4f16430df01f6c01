package manager

import (
	"context"

	"rsvp-service/internal/domain/rsvp"
	"rsvp-service/internal/infra/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listenChannel    = "reservation_update"
	listenBufferSize = 16
)

// Listen acquires a dedicated connection, subscribes to the table trigger's
// notification channel and emits change events recorded after the call.
//
// The feed is best-effort and lossy: there is no replay, a burst of changes
// may be observed as a single drain, and a slow consumer backpressures the
// drain rather than buffering without bound. Callers needing completeness
// must read the table, not this feed.
func (m *ReservationManager) Listen(ctx context.Context) (<-chan Event, error) {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return nil, m.classify(err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+listenChannel); err != nil {
		conn.Release()
		return nil, m.classify(err)
	}

	// No replay: skip everything recorded before the subscription.
	var lastSeen int64
	if err := conn.QueryRow(ctx, "SELECT COALESCE(MAX(id), 0) FROM rsvp.reservation_changes").Scan(&lastSeen); err != nil {
		conn.Release()
		return nil, m.classify(err)
	}

	ch := make(chan Event, listenBufferSize)
	go m.produceEvents(ctx, conn, ch, lastSeen)
	return ch, nil
}

func (m *ReservationManager) produceEvents(ctx context.Context, conn *pgxpool.Conn, ch chan<- Event, lastSeen int64) {
	defer close(ch)
	defer conn.Release()

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return
		}

		next, err := m.drainChanges(ctx, conn, ch, lastSeen)
		if err != nil {
			m.logger.Warn("listen drain failed", "error", err)
			return
		}
		lastSeen = next
	}
}

// drainChanges forwards all change rows past lastSeen, joining the live row
// where it still exists. Deletes carry only the reservation id.
func (m *ReservationManager) drainChanges(ctx context.Context, conn *pgxpool.Conn, ch chan<- Event, lastSeen int64) (int64, error) {
	rows, err := conn.Query(ctx,
		`SELECT c.id, c.reservation_id, c.op,
		        r.user_id, r.resource_id, r.timespan, r.note, r.status
		 FROM rsvp.reservation_changes c
		 LEFT JOIN rsvp.reservations r ON r.id = c.reservation_id
		 WHERE c.id > $1
		 ORDER BY c.id`,
		lastSeen,
	)
	if err != nil {
		return lastSeen, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			changeID   int64
			event      Event
			userID     pgtype.Text
			resourceID pgtype.Text
			span       pgtype.Range[pgtype.Timestamptz]
			note       pgtype.Text
			status     pgtype.Text
		)
		if err := rows.Scan(&changeID, &event.Reservation.ID, &event.Op,
			&userID, &resourceID, &span, &note, &status); err != nil {
			return lastSeen, err
		}

		event.Reservation.UserID = userID.String
		event.Reservation.ResourceID = resourceID.String
		event.Reservation.Note = note.String
		if status.Valid {
			event.Reservation.Status = rsvp.ParseStatus(status.String)
		}
		if span.Valid {
			event.Reservation.Start, event.Reservation.End = pgconv.TimesFromRange(span)
		}

		events = append(events, event)
		lastSeen = changeID
	}
	if err := rows.Err(); err != nil {
		return lastSeen, err
	}

	// Sends happen after the cursor is closed so a slow consumer does not
	// hold the connection's result set open.
	for _, event := range events {
		select {
		case ch <- event:
		case <-ctx.Done():
			return lastSeen, ctx.Err()
		}
	}

	return lastSeen, nil
}
