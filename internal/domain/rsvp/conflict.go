package rsvp

import (
	"strings"
	"time"
)

// Window is one side of an exclusion violation: the resource and the
// half-open interval reported by the store.
type Window struct {
	RID   string    `json:"rid"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ConflictInfo is the structured form of a Postgres exclusion-violation
// DETAIL line. When the diagnostic cannot be parsed, Raw carries the
// original text unchanged so callers can still inspect it.
type ConflictInfo struct {
	New Window `json:"new"`
	Old Window `json:"old"`
	Raw string `json:"raw,omitempty"`

	parsed bool
}

func (c ConflictInfo) Parsed() bool {
	return c.parsed
}

// Timestamp layouts seen in exclusion DETAIL lines. Postgres prints
// timestamptz as "2006-01-02 15:04:05+00"; RFC3339 variants are accepted
// for forward compatibility.
var conflictTimeLayouts = []string{
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05-07:00",
	time.RFC3339,
	time.RFC3339Nano,
}

const conflictSeparator = " conflicts with existing key "

// ParseConflictInfo parses a diagnostic of the form
//
//	Key (resource_id, timespan)=(room-713, ["2022-12-26 22:00:00+00","2022-12-30 19:00:00+00")) conflicts with existing key (resource_id, timespan)=(room-713, ["2022-12-25 22:00:00+00","2022-12-28 19:00:00+00")).
//
// The first key is the attempted (new) window, the second the existing (old)
// one; that ordering also breaks ties when both windows share bounds.
func ParseConflictInfo(detail string) ConflictInfo {
	unparsed := ConflictInfo{Raw: detail}

	newPart, oldPart, found := strings.Cut(detail, conflictSeparator)
	if !found {
		return unparsed
	}

	newWindow, ok := parseConflictWindow(newPart)
	if !ok {
		return unparsed
	}
	oldWindow, ok := parseConflictWindow(oldPart)
	if !ok {
		return unparsed
	}

	return ConflictInfo{New: newWindow, Old: oldWindow, parsed: true}
}

// parseConflictWindow extracts one `(resource_id, timespan)=(rid, ["a","b"))`
// group from a key fragment.
func parseConflictWindow(s string) (Window, bool) {
	_, values, found := strings.Cut(s, ")=(")
	if !found {
		return Window{}, false
	}

	rid, span, found := strings.Cut(values, ",")
	if !found {
		return Window{}, false
	}
	rid = strings.TrimSpace(rid)
	if rid == "" {
		return Window{}, false
	}

	span = strings.TrimSpace(span)
	span = strings.TrimPrefix(span, "[")
	startText, rest, found := strings.Cut(span, ",")
	if !found {
		return Window{}, false
	}
	endText := rest
	if i := strings.IndexAny(endText, ")]"); i >= 0 {
		endText = endText[:i]
	}

	start, ok := parseConflictTime(startText)
	if !ok {
		return Window{}, false
	}
	end, ok := parseConflictTime(endText)
	if !ok {
		return Window{}, false
	}

	return Window{RID: rid, Start: start, End: end}, true
}

func parseConflictTime(s string) (time.Time, bool) {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	for _, layout := range conflictTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
