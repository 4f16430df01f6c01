// Package dto holds wire types shared by the request and response payloads.
package dto

import "time"

// Timestamp is the wire form of an instant: a (seconds, nanos) pair
// interpreted as UTC. Conversions are total and lossless within nanosecond
// precision.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

func FromTime(t time.Time) *Timestamp {
	if t.IsZero() {
		return nil
	}
	return &Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// Time converts back to a UTC instant. A nil timestamp is the zero time.
func (t *Timestamp) Time() time.Time {
	if t == nil {
		return time.Time{}
	}
	return time.Unix(t.Seconds, int64(t.Nanos)).UTC()
}
