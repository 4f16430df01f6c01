package pgconv

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Tstzrange builds the half-open [start, end) range the reservations table
// stores. A zero bound becomes an unbounded side.
func Tstzrange(start, end time.Time) pgtype.Range[pgtype.Timestamptz] {
	r := pgtype.Range[pgtype.Timestamptz]{
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}

	if start.IsZero() {
		r.LowerType = pgtype.Unbounded
	} else {
		r.Lower = pgtype.Timestamptz{Time: start.UTC(), Valid: true}
	}
	if end.IsZero() {
		r.UpperType = pgtype.Unbounded
	} else {
		r.Upper = pgtype.Timestamptz{Time: end.UTC(), Valid: true}
	}

	return r
}

// TimesFromRange unpacks a stored timespan. Unbounded sides come back as
// zero times; persisted reservations always carry both bounds.
func TimesFromRange(r pgtype.Range[pgtype.Timestamptz]) (start, end time.Time) {
	if r.Lower.Valid {
		start = r.Lower.Time.UTC()
	}
	if r.Upper.Valid {
		end = r.Upper.Time.UTC()
	}
	return start, end
}

// IsNoRows checks for the pgx row-not-found condition.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
