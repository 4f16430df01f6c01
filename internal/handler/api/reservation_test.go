//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"rsvp-service/internal/domain/rsvp"
	"rsvp-service/internal/handler/api"
	reqdto "rsvp-service/internal/handler/dto/request"
	resdto "rsvp-service/internal/handler/dto/response"
	"rsvp-service/internal/infra/manager"
	"rsvp-service/tests/common/builder"
	"rsvp-service/tests/common/httptest"
	managermock "rsvp-service/tests/mock/manager"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const conflictDetail = `Key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-26 22:00:00+00","2022-12-30 19:00:00+00")) conflicts with existing key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-25 22:00:00+00","2022-12-28 19:00:00+00")).`

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockManager *managermock.MockRsvp
	handler     *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockManager = managermock.NewMockRsvp(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockManager)

	s.router.POST("/api/reservations", s.handler.Reserve)
	s.router.POST("/api/reservations/query", s.handler.Query)
	s.router.POST("/api/reservations/filter", s.handler.Filter)
	s.router.GET("/api/reservations/listen", s.handler.Listen)
	s.router.GET("/api/reservations/:id", s.handler.Get)
	s.router.POST("/api/reservations/:id/confirm", s.handler.Confirm)
	s.router.PATCH("/api/reservations/:id/note", s.handler.UpdateNote)
	s.router.DELETE("/api/reservations/:id", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *ReservationHandlerTestSuite) TestReserve() {
	url := "/api/reservations"

	s.Run("success: returns 201 Created with the persisted reservation", func() {
		stored := builder.NewReservationBuilder().WithID(42).Build()
		s.mockManager.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			builder.NewReservationBuilder().BuildReserveRequest())

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(42), body.Reservation.ID)
		s.Equal("alice", body.Reservation.UserID)
		s.Equal("pending", body.Reservation.Status)
	})

	s.Run("error: 400 when the reservation payload is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "reservation is required")
	})

	s.Run("error: 400 on invalid window", func() {
		s.mockManager.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(rsvp.Reservation{}, rsvp.ErrInvalidTime).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			builder.NewReservationBuilder().BuildReserveRequest())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start or end time")
	})

	s.Run("error: 409 on overlapping window with the conflict pair attached", func() {
		s.mockManager.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(rsvp.Reservation{}, &rsvp.ConflictError{Info: rsvp.ParseConflictInfo(conflictDetail)}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			builder.NewReservationBuilder().BuildReserveRequest())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflict reservation")

		var body struct {
			Detail resdto.ConflictDetail `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Require().NotNil(body.Detail.New)
		s.Require().NotNil(body.Detail.Old)
		s.Equal("ocean-view-room-713", body.Detail.New.RID)
		s.Equal("ocean-view-room-713", body.Detail.Old.RID)
	})

	s.Run("error: 500 on storage fault", func() {
		s.mockManager.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(rsvp.Reservation{}, rsvp.ErrDatabase).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			builder.NewReservationBuilder().BuildReserveRequest())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet / TestConfirm / TestUpdateNote / TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns the reservation by id", func() {
		stored := builder.NewReservationBuilder().WithID(7).Build()
		s.mockManager.EXPECT().Get(gomock.Any(), int64(7)).Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/7", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.Reservation.ID)
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when the row does not exist", func() {
		s.mockManager.EXPECT().Get(gomock.Any(), int64(99)).
			Return(rsvp.Reservation{}, rsvp.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No reservation found")
	})
}

func (s *ReservationHandlerTestSuite) TestConfirm() {
	s.Run("success: returns the confirmed reservation", func() {
		stored := builder.NewReservationBuilder().WithID(7).WithStatus(rsvp.StatusConfirmed).Build()
		s.mockManager.EXPECT().Confirm(gomock.Any(), int64(7)).Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/7/confirm", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Reservation.Status)
	})

	s.Run("error: 404 when the row does not exist", func() {
		s.mockManager.EXPECT().Confirm(gomock.Any(), int64(99)).
			Return(rsvp.Reservation{}, rsvp.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/99/confirm", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No reservation found")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateNote() {
	s.Run("success: returns the reservation with the new note", func() {
		stored := builder.NewReservationBuilder().WithID(7).WithNote("late checkout please").Build()
		s.mockManager.EXPECT().UpdateNote(gomock.Any(), int64(7), "late checkout please").
			Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/reservations/7/note",
			reqdto.UpdateNoteRequest{Note: "late checkout please"})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("late checkout please", body.Reservation.Note)
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: returns the deleted reservation", func() {
		stored := builder.NewReservationBuilder().WithID(7).Build()
		s.mockManager.EXPECT().Cancel(gomock.Any(), int64(7)).Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/7", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.Reservation.ID)
	})

	s.Run("error: 404 when already deleted", func() {
		s.mockManager.EXPECT().Cancel(gomock.Any(), int64(7)).
			Return(rsvp.Reservation{}, rsvp.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/7", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No reservation found")
	})
}

// ================================================================================
// TestFilter
// ================================================================================

func (s *ReservationHandlerTestSuite) TestFilter() {
	url := "/api/reservations/filter"

	s.Run("success: returns one page with the neighbor cursors", func() {
		rows := []rsvp.Reservation{
			builder.NewReservationBuilder().WithID(11).Build(),
			builder.NewReservationBuilder().WithID(12).Build(),
		}
		pager := rsvp.FilterPager{Prev: 11, Next: 12, Total: 0}
		s.mockManager.EXPECT().Filter(gomock.Any(), gomock.Any()).
			Return(pager, rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.FilterRequest{Filter: &reqdto.FilterPayload{UserID: "alice", Status: "pending"}})

		var body resdto.FilterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Reservations, 2)
		s.Equal(int64(11), body.Pager.Prev)
		s.Equal(int64(12), body.Pager.Next)
	})

	s.Run("error: 400 when the filter payload is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "filter is required")
	})

	s.Run("error: 400 on out-of-range page size", func() {
		s.mockManager.EXPECT().Filter(gomock.Any(), gomock.Any()).
			Return(rsvp.FilterPager{}, nil, &rsvp.InvalidPageSizeError{Size: 5}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.FilterRequest{Filter: &reqdto.FilterPayload{UserID: "alice", Status: "pending", PageSize: 5}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestQuery / TestListen (NDJSON streams)
// ================================================================================

func (s *ReservationHandlerTestSuite) TestQuery() {
	url := "/api/reservations/query"

	s.Run("success: streams one NDJSON line per reservation", func() {
		ch := make(chan manager.QueryResult, 2)
		ch <- manager.QueryResult{Reservation: builder.NewReservationBuilder().WithID(1).Build()}
		ch <- manager.QueryResult{Reservation: builder.NewReservationBuilder().WithID(2).Build()}
		close(ch)

		s.mockManager.EXPECT().Query(gomock.Any(), gomock.Any()).
			Return((<-chan manager.QueryResult)(ch), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.QueryRequest{Query: &reqdto.QueryPayload{UserID: "alice", Status: "pending"}})

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/x-ndjson", rec.Header().Get("Content-Type"))

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		s.Require().Len(lines, 2)
		for i, line := range lines {
			var payload resdto.ReservationPayload
			s.Require().NoError(json.Unmarshal([]byte(line), &payload))
			s.Equal(int64(i+1), payload.ID)
		}
	})

	s.Run("success: a mid-stream fault becomes one terminating error line", func() {
		ch := make(chan manager.QueryResult, 2)
		ch <- manager.QueryResult{Reservation: builder.NewReservationBuilder().WithID(1).Build()}
		ch <- manager.QueryResult{Err: rsvp.ErrDatabase}
		close(ch)

		s.mockManager.EXPECT().Query(gomock.Any(), gomock.Any()).
			Return((<-chan manager.QueryResult)(ch), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.QueryRequest{Query: &reqdto.QueryPayload{UserID: "alice", Status: "pending"}})

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		s.Require().Len(lines, 2)
		s.Contains(lines[1], "error")
	})

	s.Run("error: 400 when the query payload is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "query is required")
	})

	s.Run("error: 400 before streaming on an invalid window", func() {
		s.mockManager.EXPECT().Query(gomock.Any(), gomock.Any()).
			Return(nil, rsvp.ErrInvalidTime).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.QueryRequest{Query: &reqdto.QueryPayload{UserID: "alice", Status: "pending"}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start or end time")
	})
}

func (s *ReservationHandlerTestSuite) TestListen() {
	s.Run("success: streams change events as NDJSON", func() {
		ch := make(chan manager.Event, 1)
		ch <- manager.Event{Op: "insert", Reservation: builder.NewReservationBuilder().WithID(5).Build()}
		close(ch)

		s.mockManager.EXPECT().Listen(gomock.Any()).
			Return((<-chan manager.Event)(ch), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/listen", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("application/x-ndjson", rec.Header().Get("Content-Type"))

		var payload resdto.EventPayload
		s.Require().NoError(json.Unmarshal([]byte(strings.TrimSpace(rec.Body.String())), &payload))
		s.Equal("insert", payload.Op)
		s.Equal(int64(5), payload.Reservation.ID)
	})

	s.Run("error: 500 when the subscription cannot be established", func() {
		s.mockManager.EXPECT().Listen(gomock.Any()).
			Return(nil, rsvp.ErrDatabase).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/listen", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
