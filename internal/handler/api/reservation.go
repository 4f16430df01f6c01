package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rsvp-service/internal/domain/rsvp"
	reqdto "rsvp-service/internal/handler/dto/request"
	resdto "rsvp-service/internal/handler/dto/response"
	"rsvp-service/internal/handler/httperr"
	"rsvp-service/internal/infra/manager"

	"github.com/gin-gonic/gin"
)

// ReservationHandler adapts the wire surface onto the engine. It does no
// classification of its own: errors arrive pre-classified and are only
// translated to transport status codes here.
type ReservationHandler struct {
	manager manager.Rsvp
}

func NewReservationHandler(m manager.Rsvp) *ReservationHandler {
	return &ReservationHandler{manager: m}
}

// Reserve handles POST /api/reservations.
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.Reservation == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing reservation"), "reservation is required", nil)
		return
	}

	reservation, err := h.manager.Reserve(c.Request.Context(), req.Reservation.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationResponse(reservation))
}

// Confirm handles POST /api/reservations/:id/confirm.
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	reservation, err := h.manager.Confirm(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationResponse(reservation))
}

// UpdateNote handles PATCH /api/reservations/:id/note.
func (h *ReservationHandler) UpdateNote(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	reservation, err := h.manager.UpdateNote(c.Request.Context(), id, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationResponse(reservation))
}

// Cancel handles DELETE /api/reservations/:id and returns the deleted row.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	reservation, err := h.manager.Cancel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationResponse(reservation))
}

// Get handles GET /api/reservations/:id.
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	reservation, err := h.manager.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationResponse(reservation))
}

// Query handles POST /api/reservations/query as an NDJSON server-stream.
// Each reservation is delivered as it arrives; channel close ends the
// stream. A mid-stream storage error becomes one terminating error line.
func (h *ReservationHandler) Query(c *gin.Context) {
	var req reqdto.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.Query == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing query"), "query is required", nil)
		return
	}

	ch, err := h.manager.Query(c.Request.Context(), req.Query.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	streamNDJSON(c, func(enc *json.Encoder) error {
		for result := range ch {
			if result.Err != nil {
				return enc.Encode(gin.H{"error": result.Err.Error()})
			}
			if err := enc.Encode(resdto.FromReservation(result.Reservation)); err != nil {
				return err
			}
			c.Writer.Flush()
		}
		return nil
	})
}

// Filter handles POST /api/reservations/filter: one id-ordered page plus
// the neighboring cursors.
func (h *ReservationHandler) Filter(c *gin.Context) {
	var req reqdto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if req.Filter == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing filter"), "filter is required", nil)
		return
	}

	pager, reservations, err := h.manager.Filter(c.Request.Context(), req.Filter.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFilterResult(pager, reservations))
}

// Listen handles GET /api/reservations/listen: an NDJSON stream of change
// events. The feed is lossy: there is no replay and bursts may coalesce,
// so callers must not depend on completeness.
func (h *ReservationHandler) Listen(c *gin.Context) {
	ch, err := h.manager.Listen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	streamNDJSON(c, func(enc *json.Encoder) error {
		for event := range ch {
			if err := enc.Encode(resdto.FromEvent(event)); err != nil {
				return err
			}
			c.Writer.Flush()
		}
		return nil
	})
}

func streamNDJSON(c *gin.Context, write func(enc *json.Encoder) error) {
	c.Header("Content-Type", "application/x-ndjson")
	c.Writer.WriteHeader(http.StatusOK)

	if err := write(json.NewEncoder(c.Writer)); err != nil {
		// Stream already started; nothing useful left to send.
		return
	}
	c.Writer.Flush()
}

func reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return 0, false
	}
	return id, true
}

// respondError translates the domain taxonomy into transport codes:
// validation errors are invalid arguments (400), a conflicting interval is a
// failed precondition (409) with the window pair attached, missing rows are
// 404 and storage faults stay opaque 500s.
func respondError(c *gin.Context, err error) {
	var (
		conflict          *rsvp.ConflictError
		invalidID         *rsvp.InvalidReservationIDError
		invalidUserID     *rsvp.InvalidUserIDError
		invalidResourceID *rsvp.InvalidResourceIDError
		invalidStatus     *rsvp.InvalidStatusError
		invalidPageSize   *rsvp.InvalidPageSizeError
		invalidCursor     *rsvp.InvalidCursorError
	)

	switch {
	case errors.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflict reservation", resdto.FromConflictInfo(conflict.Info))
	case errors.Is(err, rsvp.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No reservation found by the given condition", nil)
	case errors.Is(err, rsvp.ErrInvalidTime):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start or end time for the reservation", nil)
	case errors.As(err, &invalidID),
		errors.As(err, &invalidUserID),
		errors.As(err, &invalidResourceID),
		errors.As(err, &invalidStatus),
		errors.As(err, &invalidPageSize),
		errors.As(err, &invalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, rsvp.ErrDatabase),
		errors.Is(err, rsvp.ErrConfigRead),
		errors.Is(err, rsvp.ErrConfigParse):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Unknown error", nil)
	}
}
