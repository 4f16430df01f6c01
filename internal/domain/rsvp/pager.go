package rsvp

// NoPage is the "no neighboring page" sentinel for FilterPager cursors.
const NoPage int64 = -1

// FilterPager describes the pages adjacent to a filter result. Prev and Next
// are id cursors for the neighboring pages, NoPage when there is none.
// Total is 0 when unknown; the cursor path never computes a count.
type FilterPager struct {
	Prev  int64 `json:"prev"`
	Next  int64 `json:"next"`
	Total int64 `json:"total"`
}

// Page trims an over-fetched id-ordered result down to one page and computes
// the neighboring cursors. rows must have been fetched with Limit() in the
// filter's direction:
//
//  1. A leading row carrying the cursor id belongs to the previous page and
//     is dropped.
//  2. More than PageSize remaining rows means a next page exists; the page is
//     cut at PageSize and Next points at the last kept row.
//
// A present cursor always marks a previous page; Prev is then the id of the
// first kept row, usable as the exclusive bound when walking back.
func (f *ReservationFilter) Page(rows []Reservation) (FilterPager, []Reservation) {
	pager := FilterPager{Prev: NoPage, Next: NoPage}

	if f.Cursor != nil && len(rows) > 0 && rows[0].ID == *f.Cursor {
		rows = rows[1:]
	}

	if int64(len(rows)) > f.PageSize {
		rows = rows[:f.PageSize]
		pager.Next = rows[len(rows)-1].ID
	}

	if f.Cursor != nil && len(rows) > 0 {
		pager.Prev = rows[0].ID
	}

	return pager, rows
}

// NextPage derives the filter for the page after pager, or nil when pager
// reports no next page.
func (f *ReservationFilter) NextPage(pager FilterPager) *ReservationFilter {
	if pager.Next == NoPage {
		return nil
	}
	cursor := pager.Next
	next := *f
	next.Cursor = &cursor
	return &next
}
