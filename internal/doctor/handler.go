package doctor

import (
	"net/http"
	"strconv"

	"github.com/ghoOst57/genetic-miniapp/internal/api"

	"github.com/gin-gonic/gin"
)

const defaultReviewLimit = 12

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// @Summary      Get doctor profile
// @Tags         doctor
// @Produce      json
// @Success      200  {object}  doctor.Doctor
// @Router       /doctor [get]
func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Doctor)
}

// @Summary      Get doctor profile by id
// @Tags         doctor
// @Produce      json
// @Param        doctorID  path  string  true  "Doctor ID"
// @Success      200  {object}  doctor.Doctor
// @Failure      404  {object}  api.ErrorResponse
// @Router       /doctor/{doctorID} [get]
func (h *Handler) GetProfileByID(c *gin.Context) {
	if !h.knownDoctor(c) {
		return
	}
	c.JSON(http.StatusOK, h.catalog.Doctor)
}

// @Summary      List awards
// @Tags         doctor
// @Produce      json
// @Param        type  query  string  false  "Filter by award type"
// @Success      200  {array}  doctor.Award
// @Router       /awards [get]
func (h *Handler) ListAwards(c *gin.Context) {
	c.JSON(http.StatusOK, h.filterAwards(c.Query("type")))
}

// @Summary      List awards for a doctor
// @Tags         doctor
// @Produce      json
// @Param        doctorID  path   string  true   "Doctor ID"
// @Param        type      query  string  false  "Filter by award type"
// @Success      200  {array}   doctor.Award
// @Failure      404  {object}  api.ErrorResponse
// @Router       /doctor/{doctorID}/awards [get]
func (h *Handler) ListAwardsForDoctor(c *gin.Context) {
	if !h.knownDoctor(c) {
		return
	}
	c.JSON(http.StatusOK, h.filterAwards(c.Query("type")))
}

// @Summary      List review assets
// @Tags         doctor
// @Produce      json
// @Param        offset  query  int  false  "Offset"
// @Param        limit   query  int  false  "Page size (default 12)"
// @Success      200  {object}  doctor.ReviewList
// @Router       /reviews [get]
func (h *Handler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.reviewPage(c))
}

// @Summary      List review assets for a doctor
// @Tags         doctor
// @Produce      json
// @Param        doctorID  path   string  true   "Doctor ID"
// @Param        offset    query  int     false  "Offset"
// @Param        limit     query  int     false  "Page size (default 12)"
// @Success      200  {object}  doctor.ReviewList
// @Failure      404  {object}  api.ErrorResponse
// @Router       /doctor/{doctorID}/review-assets [get]
func (h *Handler) ListReviewsForDoctor(c *gin.Context) {
	if !h.knownDoctor(c) {
		return
	}
	c.JSON(http.StatusOK, h.reviewPage(c))
}

func (h *Handler) knownDoctor(c *gin.Context) bool {
	if c.Param("doctorID") != h.catalog.Doctor.ID {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "doctor not found"})
		return false
	}
	return true
}

func (h *Handler) filterAwards(awardType string) []Award {
	if awardType == "" {
		return h.catalog.Awards
	}

	filtered := make([]Award, 0, len(h.catalog.Awards))
	for _, a := range h.catalog.Awards {
		if a.Type == awardType {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func (h *Handler) reviewPage(c *gin.Context) ReviewList {
	offset := intQuery(c, "offset", 0)
	limit := intQuery(c, "limit", defaultReviewLimit)

	total := len(h.catalog.Reviews)

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return ReviewList{Items: h.catalog.Reviews[offset:end], Total: total}
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
