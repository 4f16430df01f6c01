// Package manager implements the reservation engine on top of a Postgres
// pool. The interval-exclusion invariant lives in the store (a gist EXCLUDE
// constraint); this package owns the SQL and translates storage faults into
// the domain error taxonomy.
package manager

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rsvp-service/internal/domain/rsvp"
	"rsvp-service/internal/infra/pgconv"
	"rsvp-service/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QueryBufferSize bounds the streaming query channel. The producer blocks
// once the consumer falls this far behind.
const QueryBufferSize = 128

const reservationColumns = "id, user_id, resource_id, timespan, note, status"

// QueryResult is one item of the streaming query: a row or a terminating
// error. After an error item the channel closes.
type QueryResult struct {
	Reservation rsvp.Reservation
	Err         error
}

// Event is one reservation change observed by Listen.
type Event struct {
	Op          string           `json:"op"`
	Reservation rsvp.Reservation `json:"reservation"`
}

// Rsvp is the capability set of the reservation engine. Test stubs implement
// the same interface.
type Rsvp interface {
	// Reserve persists a new reservation, atomically rejecting interval
	// overlaps on the same resource.
	Reserve(ctx context.Context, reservation rsvp.Reservation) (rsvp.Reservation, error)
	// Confirm moves a pending reservation to confirmed. Idempotent: any
	// other current status is returned unchanged.
	Confirm(ctx context.Context, id int64) (rsvp.Reservation, error)
	// UpdateNote replaces the note unconditionally.
	UpdateNote(ctx context.Context, id int64, note string) (rsvp.Reservation, error)
	// Cancel deletes the reservation and returns the deleted row.
	Cancel(ctx context.Context, id int64) (rsvp.Reservation, error)
	// Get returns the reservation by id.
	Get(ctx context.Context, id int64) (rsvp.Reservation, error)
	// Query streams reservations contained in the query window. The channel
	// closes when the result set is exhausted, after a terminating error
	// item, or when ctx is done.
	Query(ctx context.Context, query rsvp.ReservationQuery) (<-chan QueryResult, error)
	// Filter returns one id-ordered page plus cursors for its neighbors.
	Filter(ctx context.Context, filter rsvp.ReservationFilter) (rsvp.FilterPager, []rsvp.Reservation, error)
	// Listen emits reservation change events. Best-effort lossy feed: no
	// replay of events before the call, bursts may coalesce.
	Listen(ctx context.Context) (<-chan Event, error)
}

// ReservationManager is the production engine. It exclusively owns its pool.
type ReservationManager struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ Rsvp = (*ReservationManager)(nil)

func New(pool *pgxpool.Pool, logger *slog.Logger) *ReservationManager {
	return &ReservationManager{pool: pool, logger: logger}
}

func (m *ReservationManager) Reserve(ctx context.Context, reservation rsvp.Reservation) (rsvp.Reservation, error) {
	if err := reservation.Validate(); err != nil {
		return rsvp.Reservation{}, err
	}

	status := reservation.Status
	if !status.Known() || status == rsvp.StatusUnknown {
		status = rsvp.StatusPending
	}
	reservation.Status = status
	reservation.Start = reservation.Start.UTC()
	reservation.End = reservation.End.UTC()

	row := m.pool.QueryRow(ctx,
		`INSERT INTO rsvp.reservations (user_id, resource_id, timespan, note, status)
		 VALUES ($1, $2, $3, $4, $5::rsvp.reservation_status)
		 RETURNING id`,
		reservation.UserID,
		reservation.ResourceID,
		pgconv.Tstzrange(reservation.Start, reservation.End),
		reservation.Note,
		status.String(),
	)
	if err := row.Scan(&reservation.ID); err != nil {
		return rsvp.Reservation{}, m.classify(err)
	}

	return reservation, nil
}

func (m *ReservationManager) Confirm(ctx context.Context, id int64) (rsvp.Reservation, error) {
	if err := rsvp.ValidateReservationID(id); err != nil {
		return rsvp.Reservation{}, err
	}

	row := m.pool.QueryRow(ctx, fmt.Sprintf(
		`UPDATE rsvp.reservations
		 SET status = CASE WHEN status = 'pending' THEN 'confirmed'::rsvp.reservation_status ELSE status END
		 WHERE id = $1
		 RETURNING %s`, reservationColumns),
		id,
	)

	reservation, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, m.classify(err)
	}
	return reservation, nil
}

func (m *ReservationManager) UpdateNote(ctx context.Context, id int64, note string) (rsvp.Reservation, error) {
	if err := rsvp.ValidateReservationID(id); err != nil {
		return rsvp.Reservation{}, err
	}

	row := m.pool.QueryRow(ctx, fmt.Sprintf(
		`UPDATE rsvp.reservations
		 SET note = $2
		 WHERE id = $1
		 RETURNING %s`, reservationColumns),
		id, note,
	)

	reservation, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, m.classify(err)
	}
	return reservation, nil
}

func (m *ReservationManager) Cancel(ctx context.Context, id int64) (rsvp.Reservation, error) {
	if err := rsvp.ValidateReservationID(id); err != nil {
		return rsvp.Reservation{}, err
	}

	row := m.pool.QueryRow(ctx, fmt.Sprintf(
		`DELETE FROM rsvp.reservations
		 WHERE id = $1
		 RETURNING %s`, reservationColumns),
		id,
	)

	reservation, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, m.classify(err)
	}
	return reservation, nil
}

func (m *ReservationManager) Get(ctx context.Context, id int64) (rsvp.Reservation, error) {
	if err := rsvp.ValidateReservationID(id); err != nil {
		return rsvp.Reservation{}, err
	}

	row := m.pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM rsvp.reservations WHERE id = $1`, reservationColumns),
		id,
	)

	reservation, err := scanReservation(row)
	if err != nil {
		return rsvp.Reservation{}, m.classify(err)
	}
	return reservation, nil
}

func (m *ReservationManager) Query(ctx context.Context, query rsvp.ReservationQuery) (<-chan QueryResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql, args := buildQuerySQL(query)

	ch := make(chan QueryResult, QueryBufferSize)
	go m.produceQueryResults(ctx, ch, sql, args)
	return ch, nil
}

// produceQueryResults owns the DB cursor and the send end of the channel.
// The consumer drives draining at its own pace; cancellation flows in via
// ctx when the consumer goes away.
func (m *ReservationManager) produceQueryResults(ctx context.Context, ch chan<- QueryResult, sql string, args []any) {
	defer close(ch)

	send := func(result QueryResult) bool {
		select {
		case ch <- result:
			return true
		case <-ctx.Done():
			return false
		}
	}

	rows, err := m.pool.Query(ctx, sql, args...)
	if err != nil {
		send(QueryResult{Err: m.classify(err)})
		return
	}
	defer rows.Close()

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			send(QueryResult{Err: m.classify(err)})
			return
		}
		if !send(QueryResult{Reservation: reservation}) {
			return
		}
	}
	if err := rows.Err(); err != nil {
		send(QueryResult{Err: m.classify(err)})
	}
}

// buildQuerySQL translates the time-window query into a containment
// predicate over the stored timespan. StatusUnknown means no status filter.
func buildQuerySQL(query rsvp.ReservationQuery) (string, []any) {
	sql := fmt.Sprintf("SELECT %s FROM rsvp.reservations WHERE TRUE", reservationColumns)
	var args []any

	appendCond := func(cond string, arg any) {
		args = append(args, arg)
		sql += fmt.Sprintf(" AND "+cond, len(args))
	}

	if query.UserID != "" {
		appendCond("user_id = $%d", query.UserID)
	}
	if query.ResourceID != "" {
		appendCond("resource_id = $%d", query.ResourceID)
	}
	if query.Status != rsvp.StatusUnknown {
		appendCond("status = $%d::rsvp.reservation_status", query.Status.String())
	}
	if query.Start != nil || query.End != nil {
		appendCond("timespan <@ $%d", pgconv.Tstzrange(timeOrZero(query.Start), timeOrZero(query.End)))
	}

	sql += " ORDER BY lower(timespan)"
	if query.Desc {
		sql += " DESC"
	}

	if query.PageSize > 0 {
		sql += fmt.Sprintf(" LIMIT %d", query.PageSize)
		if query.Page > 1 {
			sql += fmt.Sprintf(" OFFSET %d", int64(query.Page-1)*query.PageSize)
		}
	}

	return sql, args
}

func (m *ReservationManager) Filter(ctx context.Context, filter rsvp.ReservationFilter) (rsvp.FilterPager, []rsvp.Reservation, error) {
	if err := filter.Normalize(); err != nil {
		return rsvp.FilterPager{}, nil, err
	}

	rows, err := m.pool.Query(ctx, filter.ToSQL())
	if err != nil {
		return rsvp.FilterPager{}, nil, m.classify(err)
	}
	defer rows.Close()

	var reservations []rsvp.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return rsvp.FilterPager{}, nil, m.classify(err)
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return rsvp.FilterPager{}, nil, m.classify(err)
	}

	pager, page := filter.Page(reservations)
	return pager, page, nil
}

// classify translates storage faults into domain errors at the boundary:
// exclusion violation on rsvp.reservations becomes a conflict carrying the
// parsed window pair, row-not-found becomes ErrNotFound, everything else is
// marked ErrDatabase with the cause preserved.
func (m *ReservationManager) classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgErrExclusionViolation && pgErr.SchemaName == "rsvp" && pgErr.TableName == "reservations" {
			return &rsvp.ConflictError{Info: rsvp.ParseConflictInfo(pgErr.Detail)}
		}
		m.logger.Error("database error", "code", pgErr.Code, "message", pgErr.Message)
		return errs.Mark(err, rsvp.ErrDatabase)
	}

	if pgconv.IsNoRows(err) {
		return rsvp.ErrNotFound
	}

	return errs.Mark(err, rsvp.ErrDatabase)
}

const pgErrExclusionViolation = "23P01"

// scanReservation reads one row in reservationColumns order.
func scanReservation(row pgx.Row) (rsvp.Reservation, error) {
	var (
		reservation rsvp.Reservation
		span        pgtype.Range[pgtype.Timestamptz]
		status      string
	)
	if err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.ResourceID,
		&span,
		&reservation.Note,
		&status,
	); err != nil {
		return rsvp.Reservation{}, err
	}

	reservation.Start, reservation.End = pgconv.TimesFromRange(span)
	reservation.Status = rsvp.ParseStatus(status)
	return reservation, nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
