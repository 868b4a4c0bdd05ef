package availability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler("doc-1")

	router := gin.New()
	router.GET("/availability", h.List)
	router.GET("/doctor/:doctorID/availability", h.ListForDoctor)
	return router
}

func TestList_Success(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/availability?from_date=2024-01-01&to_date=2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var slots []Slot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Len(t, slots, 6)
	assert.Equal(t, "2024-01-01-10-online", slots[0].ID)
}

func TestList_FormatFilter(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/availability?from_date=2024-01-01&to_date=2024-01-01&format=offline", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var slots []Slot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.Equal(t, FormatOffline, s.Format)
	}
}

func TestList_MissingDates(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/availability", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_BadDate(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/availability?from_date=notadate&to_date=2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid date range")
}

func TestList_BadFormat(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/availability?from_date=2024-01-01&to_date=2024-01-01&format=hybrid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_RFC3339Dates(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/availability?from_date=2024-01-01T12:00:00Z&to_date=2024-01-01T18:00:00Z", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var slots []Slot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Len(t, slots, 6)
}

func TestListForDoctor_Success(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/doctor/doc-1/availability?from=2024-01-01&to=2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var slots []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 6)
	assert.Equal(t, "2024-01-01-10-online", slots[0]["id"])
	assert.Equal(t, "2024-01-01T07:00:00Z", slots[0]["startUtcISO"])
	assert.Equal(t, "2024-01-01T08:00:00Z", slots[0]["endUtcISO"])
}

func TestListForDoctor_UnknownDoctor(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/doctor/doc-2/availability?from=2024-01-01&to=2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "doctor not found")
}
