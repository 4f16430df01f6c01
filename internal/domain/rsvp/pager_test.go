//go:build unit

package rsvp_test

import (
	"testing"

	"rsvp-service/internal/domain/rsvp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRows(ids ...int64) []rsvp.Reservation {
	rows := make([]rsvp.Reservation, len(ids))
	for i, id := range ids {
		rows[i] = rsvp.Reservation{ID: id, UserID: "alice", ResourceID: "room-1"}
	}
	return rows
}

func rowIDs(rows []rsvp.Reservation) []int64 {
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func TestFilter_Page(t *testing.T) {
	testCases := []struct {
		name         string
		filter       rsvp.ReservationFilter
		rows         []rsvp.Reservation
		expectedIDs  []int64
		expectedPrev int64
		expectedNext int64
	}{
		{
			name:         "first page with more to come",
			filter:       rsvp.ReservationFilter{Status: rsvp.StatusPending, PageSize: 3},
			rows:         makeRows(1, 2, 3, 4),
			expectedIDs:  []int64{1, 2, 3},
			expectedPrev: rsvp.NoPage,
			expectedNext: 3,
		},
		{
			name:         "first page exhausts the result",
			filter:       rsvp.ReservationFilter{Status: rsvp.StatusPending, PageSize: 3},
			rows:         makeRows(1, 2),
			expectedIDs:  []int64{1, 2},
			expectedPrev: rsvp.NoPage,
			expectedNext: rsvp.NoPage,
		},
		{
			name:         "middle page drops leading cursor row",
			filter:       rsvp.ReservationFilter{Status: rsvp.StatusPending, PageSize: 3, Cursor: int64Ptr(3)},
			rows:         makeRows(3, 4, 5, 6, 7),
			expectedIDs:  []int64{4, 5, 6},
			expectedPrev: 4,
			expectedNext: 6,
		},
		{
			name:         "middle page without cursor echo",
			filter:       rsvp.ReservationFilter{Status: rsvp.StatusPending, PageSize: 3, Cursor: int64Ptr(3)},
			rows:         makeRows(4, 5, 6, 7),
			expectedIDs:  []int64{4, 5, 6},
			expectedPrev: 4,
			expectedNext: 6,
		},
		{
			name:         "last page with cursor",
			filter:       rsvp.ReservationFilter{Status: rsvp.StatusPending, PageSize: 3, Cursor: int64Ptr(8)},
			rows:         makeRows(9, 10),
			expectedIDs:  []int64{9, 10},
			expectedPrev: 9,
			expectedNext: rsvp.NoPage,
		},
		{
			name:         "empty result",
			filter:       rsvp.ReservationFilter{Status: rsvp.StatusPending, PageSize: 3},
			rows:         nil,
			expectedIDs:  []int64{},
			expectedPrev: rsvp.NoPage,
			expectedNext: rsvp.NoPage,
		},
		{
			name:         "descending middle page",
			filter:       rsvp.ReservationFilter{Status: rsvp.StatusPending, PageSize: 3, Cursor: int64Ptr(20), Desc: true},
			rows:         makeRows(19, 18, 17, 16),
			expectedIDs:  []int64{19, 18, 17},
			expectedPrev: 19,
			expectedNext: 17,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pager, page := tc.filter.Page(tc.rows)

			assert.ElementsMatch(t, tc.expectedIDs, rowIDs(page))
			assert.Equal(t, tc.expectedPrev, pager.Prev)
			assert.Equal(t, tc.expectedNext, pager.Next)
		})
	}
}

// Walking next cursors over a fixed id space must visit every row exactly
// once, in order, regardless of direction.
func TestFilter_PageWalkCoversAllRows(t *testing.T) {
	const total = 27

	for _, desc := range []bool{false, true} {
		filter := rsvp.ReservationFilter{Status: rsvp.StatusPending, PageSize: 10, Desc: desc}

		var visited []int64
		current := &filter
		for current != nil {
			rows := fetchPage(current, total)
			pager, page := current.Page(rows)
			visited = append(visited, rowIDs(page)...)
			current = current.NextPage(pager)
		}

		require.Len(t, visited, total)
		for i, id := range visited {
			expected := int64(i + 1)
			if desc {
				expected = int64(total - i)
			}
			assert.Equal(t, expected, id)
		}
	}
}

// fetchPage simulates the store side of the over-fetch contract: Limit()
// rows past the cursor bound in the requested direction.
func fetchPage(f *rsvp.ReservationFilter, total int64) []rsvp.Reservation {
	var ids []int64
	if f.Desc {
		start := f.CursorValue() - 1
		if start > total {
			start = total
		}
		for id := start; id >= 1 && int64(len(ids)) < f.Limit(); id-- {
			ids = append(ids, id)
		}
	} else {
		for id := f.CursorValue() + 1; id <= total && int64(len(ids)) < f.Limit(); id++ {
			ids = append(ids, id)
		}
	}
	return makeRows(ids...)
}
