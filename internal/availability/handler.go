package availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/ghoOst57/genetic-miniapp/internal/api"
	"github.com/ghoOst57/genetic-miniapp/internal/metrics"

	"github.com/gin-gonic/gin"
)

var errBadDate = errors.New("invalid date range")

type Handler struct {
	doctorID string
}

func NewHandler(doctorID string) *Handler {
	return &Handler{doctorID: doctorID}
}

type listQuery struct {
	FromDate string `form:"from_date" validate:"required"`
	ToDate   string `form:"to_date" validate:"required"`
	Format   string `form:"format" validate:"omitempty,oneof=any online offline"`
}

// @Summary      List available slots
// @Description  Computes bookable one-hour slots for the date range. A listed slot may already be claimed.
// @Tags         availability
// @Produce      json
// @Param        from_date  query  string  true   "Start date (YYYY-MM-DD or RFC3339)"
// @Param        to_date    query  string  true   "End date (YYYY-MM-DD or RFC3339)"
// @Param        format     query  string  false  "any | online | offline"
// @Success      200  {array}   availability.Slot
// @Failure      400  {object}  api.ErrorResponse
// @Router       /availability [get]
func (h *Handler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if q.Format == "" {
		q.Format = FormatAny
	}

	if errs := api.ValidateStruct(q); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	from, err := parseDate(q.FromDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date range"})
		return
	}
	to, err := parseDate(q.ToDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date range"})
		return
	}

	slots := Generate(from, to, q.Format)
	metrics.RecordSlotsGenerated(len(slots))

	c.JSON(http.StatusOK, slots)
}

type doctorQuery struct {
	From   string `form:"from" validate:"required"`
	To     string `form:"to" validate:"required"`
	Format string `form:"format" validate:"omitempty,oneof=any online offline"`
}

// doctorSlot mirrors the response keys the mini-app frontend consumes on
// the canonical doctor route.
type doctorSlot struct {
	ID          string `json:"id"`
	StartUtcISO string `json:"startUtcISO"`
	EndUtcISO   string `json:"endUtcISO"`
	Format      string `json:"format"`
}

// @Summary      List available slots for a doctor
// @Tags         availability
// @Produce      json
// @Param        doctorID  path   string  true   "Doctor ID"
// @Param        from      query  string  true   "Start date (YYYY-MM-DD or RFC3339)"
// @Param        to        query  string  true   "End date (YYYY-MM-DD or RFC3339)"
// @Param        format    query  string  false  "any | online | offline"
// @Success      200  {array}   availability.doctorSlot
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /doctor/{doctorID}/availability [get]
func (h *Handler) ListForDoctor(c *gin.Context) {
	if c.Param("doctorID") != h.doctorID {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "doctor not found"})
		return
	}

	var q doctorQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if q.Format == "" {
		q.Format = FormatAny
	}

	if errs := api.ValidateStruct(q); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	from, err := parseDate(q.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date range"})
		return
	}
	to, err := parseDate(q.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date range"})
		return
	}

	slots := Generate(from, to, q.Format)
	metrics.RecordSlotsGenerated(len(slots))

	out := make([]doctorSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, doctorSlot{
			ID:          s.ID,
			StartUtcISO: s.StartUTC.Format(time.RFC3339),
			EndUtcISO:   s.EndUTC.Format(time.RFC3339),
			Format:      s.Format,
		})
	}

	c.JSON(http.StatusOK, out)
}

// parseDate accepts a bare calendar date or a full timestamp; only the
// calendar date is used downstream.
func parseDate(s string) (time.Time, error) {
	layouts := []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadDate
}
