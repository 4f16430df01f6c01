//go:build unit

package rsvp_test

import (
	"encoding/json"
	"testing"
	"time"

	"rsvp-service/internal/domain/rsvp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservation_Validate(t *testing.T) {
	start := time.Date(2022, 12, 25, 22, 0, 0, 0, time.UTC)
	end := time.Date(2022, 12, 28, 19, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		reservation rsvp.Reservation
		expected    error
	}{
		{
			name:        "valid window",
			reservation: rsvp.NewPending("sskid", "ocean-view-room-713", start, end, ""),
		},
		{
			name:        "missing start",
			reservation: rsvp.Reservation{UserID: "sskid", ResourceID: "r", End: end},
			expected:    rsvp.ErrInvalidTime,
		},
		{
			name:        "missing end",
			reservation: rsvp.Reservation{UserID: "sskid", ResourceID: "r", Start: start},
			expected:    rsvp.ErrInvalidTime,
		},
		{
			name:        "start equals end",
			reservation: rsvp.NewPending("sskid", "r", start, start, ""),
			expected:    rsvp.ErrInvalidTime,
		},
		{
			name:        "start after end",
			reservation: rsvp.NewPending("sskid", "r", end, start, ""),
			expected:    rsvp.ErrInvalidTime,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.reservation.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}

	t.Run("empty user id", func(t *testing.T) {
		var invalidUserID *rsvp.InvalidUserIDError
		err := rsvp.NewPending("", "ocean-view-room-713", start, end, "").Validate()
		assert.ErrorAs(t, err, &invalidUserID)
	})

	t.Run("empty resource id", func(t *testing.T) {
		var invalidResourceID *rsvp.InvalidResourceIDError
		err := rsvp.NewPending("sskid", "", start, end, "").Validate()
		assert.ErrorAs(t, err, &invalidResourceID)
	})
}

func TestValidateReservationID(t *testing.T) {
	assert.NoError(t, rsvp.ValidateReservationID(1))

	err := rsvp.ValidateReservationID(0)
	var invalidID *rsvp.InvalidReservationIDError
	require.ErrorAs(t, err, &invalidID)
	assert.Equal(t, int64(0), invalidID.ID)

	assert.Error(t, rsvp.ValidateReservationID(-7))
}

func TestNewPendingNormalizesToUTC(t *testing.T) {
	mst := time.FixedZone("MST", -7*60*60)
	start := time.Date(2022, 12, 25, 15, 0, 0, 0, mst)
	end := time.Date(2022, 12, 28, 12, 0, 0, 0, mst)

	r := rsvp.NewPending("sskid", "ocean-view-room-713", start, end, "note")

	assert.Equal(t, time.UTC, r.Start.Location())
	assert.Equal(t, time.Date(2022, 12, 25, 22, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2022, 12, 28, 19, 0, 0, 0, time.UTC), r.End)
	assert.Equal(t, rsvp.StatusPending, r.Status)
	assert.Zero(t, r.ID)
}

func TestStatus_JSONRoundTrip(t *testing.T) {
	for _, s := range []rsvp.Status{rsvp.StatusUnknown, rsvp.StatusPending, rsvp.StatusConfirmed, rsvp.StatusBlocked} {
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var decoded rsvp.Status
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, s, decoded)
	}

	var decoded rsvp.Status
	require.NoError(t, json.Unmarshal([]byte(`"nonsense"`), &decoded))
	assert.Equal(t, rsvp.StatusUnknown, decoded)
}

func TestReservationQuery_Validate(t *testing.T) {
	start := time.Date(2021, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	q := rsvp.NewReservationQuery("aliceid", "", rsvp.StatusPending)
	assert.NoError(t, q.Validate())

	q.Start = &start
	q.End = &end
	assert.NoError(t, q.Validate())

	q.Start = &end
	q.End = &start
	assert.ErrorIs(t, q.Validate(), rsvp.ErrInvalidTime)

	q = rsvp.NewReservationQuery("", "", rsvp.Status(9))
	var invalidStatus *rsvp.InvalidStatusError
	assert.ErrorAs(t, q.Validate(), &invalidStatus)
}
