package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ghoOst57/genetic-miniapp/internal/api"
	"github.com/ghoOst57/genetic-miniapp/internal/auth"
	"github.com/ghoOst57/genetic-miniapp/internal/availability"
	"github.com/ghoOst57/genetic-miniapp/internal/logger"
	"github.com/ghoOst57/genetic-miniapp/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Claim a slot
// @Description  Creates a booking for the given slot id. Exactly one claim per slot id ever succeeds.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body  booking.CreateRequest  true  "Booking payload"
// @Success      201  {object}  booking.BookingResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /booking [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	var tgUserID *int64
	if id, ok := auth.GetTelegramUserID(c); ok {
		tgUserID = &id
	}

	b, err := h.service.Claim(c.Request.Context(), req, tgUserID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidSlotID):
			metrics.RecordBooking("invalid_id")
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid slot_id"})
		case errors.Is(err, ErrSlotTaken):
			metrics.RecordBooking("conflict")
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: ErrSlotTaken.Error()})
		default:
			metrics.RecordBooking("error")
			logger.Error("failed to create booking", "slot_id", req.SlotID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create booking"})
		}
		return
	}

	metrics.RecordBooking("created")
	c.JSON(http.StatusCreated, BookingResponse{
		BookingID: b.ID,
		StartUTC:  b.StartUTC,
		EndUTC:    b.EndUTC,
	})
}

// @Summary      Get booking by id
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path  int  true  "Booking ID"
// @Success      200  {object}  booking.BookingResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /booking/{bookingID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("bookingID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking ID"})
		return
	}

	b, err := h.service.Lookup(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: ErrBookingNotFound.Error()})
			return
		}
		logger.Error("failed to fetch booking", "booking_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, BookingResponse{
		BookingID: b.ID,
		StartUTC:  b.StartUTC,
		EndUTC:    b.EndUTC,
	})
}
