package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_SingleWorkday(t *testing.T) {
	// 2024-01-01 is a Monday
	day := date(2024, time.January, 1)

	slots := Generate(day, day, FormatAny)

	require.Len(t, slots, 6)

	hours := make([]int, 0, len(slots))
	for _, s := range slots {
		hours = append(hours, s.StartUTC.In(RefZone).Hour())
	}
	assert.Equal(t, []int{10, 11, 13, 14, 16, 17}, hours)
}

func TestGenerate_FormatAlternatesByParity(t *testing.T) {
	day := date(2024, time.January, 1)

	slots := Generate(day, day, FormatAny)
	require.Len(t, slots, 6)

	for _, s := range slots {
		hour := s.StartUTC.In(RefZone).Hour()
		if hour%2 == 0 {
			assert.Equal(t, FormatOnline, s.Format, "hour %d", hour)
		} else {
			assert.Equal(t, FormatOffline, s.Format, "hour %d", hour)
		}
	}
}

func TestGenerate_OnlineFilter(t *testing.T) {
	day := date(2024, time.January, 1)

	slots := Generate(day, day, FormatOnline)

	require.Len(t, slots, 3)
	hours := make([]int, 0, len(slots))
	for _, s := range slots {
		assert.Equal(t, FormatOnline, s.Format)
		hours = append(hours, s.StartUTC.In(RefZone).Hour())
	}
	assert.Equal(t, []int{10, 14, 16}, hours)
}

func TestGenerate_OfflineFilter(t *testing.T) {
	day := date(2024, time.January, 1)

	slots := Generate(day, day, FormatOffline)

	require.Len(t, slots, 3)
	hours := make([]int, 0, len(slots))
	for _, s := range slots {
		assert.Equal(t, FormatOffline, s.Format)
		hours = append(hours, s.StartUTC.In(RefZone).Hour())
	}
	assert.Equal(t, []int{11, 13, 17}, hours)
}

func TestGenerate_WeekendYieldsNothing(t *testing.T) {
	// 2024-01-06 is a Saturday, 2024-01-07 a Sunday
	slots := Generate(date(2024, time.January, 6), date(2024, time.January, 7), FormatAny)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerate_InvertedRangeIsEmpty(t *testing.T) {
	slots := Generate(date(2024, time.January, 5), date(2024, time.January, 1), FormatAny)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerate_FullWeek(t *testing.T) {
	// Mon 2024-01-01 through Sun 2024-01-07: 5 workdays x 6 slots
	slots := Generate(date(2024, time.January, 1), date(2024, time.January, 7), FormatAny)

	assert.Len(t, slots, 30)
}

func TestGenerate_TimeOfDayIgnored(t *testing.T) {
	from := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 1, 0, 1, 0, 0, time.UTC)

	slots := Generate(from, to, FormatAny)

	assert.Len(t, slots, 6)
}

func TestGenerate_SlotsAreOneHour(t *testing.T) {
	day := date(2024, time.January, 1)

	for _, s := range Generate(day, day, FormatAny) {
		assert.Equal(t, time.Hour, s.EndUTC.Sub(s.StartUTC))
		assert.Equal(t, time.UTC, s.StartUTC.Location())
	}
}

func TestGenerate_StartInstantsAreRefZoneWallClock(t *testing.T) {
	day := date(2024, time.January, 1)

	slots := Generate(day, day, FormatAny)
	require.NotEmpty(t, slots)

	// 10:00 MSK is 07:00 UTC
	assert.Equal(t, time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC), slots[0].StartUTC)
}

func TestEncodeSlotID(t *testing.T) {
	start := time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC)

	id := EncodeSlotID(start, 10, FormatOnline)

	assert.Equal(t, "2024-01-01-10-online", id)
}

func TestDecodeSlotID_RoundTrip(t *testing.T) {
	day := date(2024, time.January, 1)

	for _, s := range Generate(day, day, FormatAny) {
		decoded, err := DecodeSlotID(s.ID)
		require.NoError(t, err, s.ID)

		assert.Equal(t, s.ID, decoded.ID)
		assert.True(t, s.StartUTC.Equal(decoded.StartUTC), s.ID)
		assert.True(t, s.EndUTC.Equal(decoded.EndUTC), s.ID)
		assert.Equal(t, s.Format, decoded.Format)
	}
}

func TestDecodeSlotID_ExampleFromFrontend(t *testing.T) {
	slot, err := DecodeSlotID("2024-01-01-10-online")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC), slot.StartUTC)
	assert.Equal(t, time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC), slot.EndUTC)
	assert.Equal(t, FormatOnline, slot.Format)
}

func TestDecodeSlotID_ShapeOnly(t *testing.T) {
	// Weekday, blocked hours and parity are not re-checked on decode:
	// hour 12 is never generated but still parses.
	slot, err := DecodeSlotID("2024-01-01-12-online")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC), slot.StartUTC)
}

func TestDecodeSlotID_Invalid(t *testing.T) {
	cases := []string{
		"",
		"garbage",
		"2024-01-01",
		"2024-01-01-online",
		"2024-01-01-ab-online",
		"2024-01-01-24-online",
		"2024-01-01--1-online",
		"2024-13-01-10-online",
		"notadate-10-online",
		"2024-01-01-10-",
	}

	for _, id := range cases {
		_, err := DecodeSlotID(id)
		assert.ErrorIs(t, err, ErrInvalidSlotID, "id=%q", id)
	}
}

func TestFormatForHour(t *testing.T) {
	assert.Equal(t, FormatOnline, FormatForHour(10))
	assert.Equal(t, FormatOffline, FormatForHour(11))
	assert.Equal(t, FormatOnline, FormatForHour(14))
	assert.Equal(t, FormatOffline, FormatForHour(17))
}
