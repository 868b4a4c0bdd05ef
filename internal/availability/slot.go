package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RefZone is the business time zone for the working schedule (Moscow,
// fixed UTC+3, no DST). Weekday and working-hour decisions are made in
// this zone; all instants returned to clients are UTC.
var RefZone = time.FixedZone("MSK", 3*60*60)

const (
	FormatAny     = "any"
	FormatOnline  = "online"
	FormatOffline = "offline"

	dayStartHour = 10
	dayEndHour   = 18 // exclusive
	slotDuration = time.Hour
)

// Hours 12 and 15 are blocked (lunch and paperwork breaks).
var blockedHours = map[int]bool{12: true, 15: true}

var ErrInvalidSlotID = errors.New("invalid slot id")

type Slot struct {
	ID       string    `json:"id"`
	StartUTC time.Time `json:"start_utc"`
	EndUTC   time.Time `json:"end_utc"`
	Format   string    `json:"format"`
}

// FormatForHour alternates consultation formats by hour parity.
// This is a fixed rule, not a real calendar.
func FormatForHour(hour int) string {
	if hour%2 == 0 {
		return FormatOnline
	}
	return FormatOffline
}

// Generate computes every bookable slot whose reference-zone calendar day
// lies within [from, to] inclusive. Time-of-day on the inputs is ignored;
// only the UTC calendar date is taken. An inverted range yields an empty
// slice. The generator is pure: it never consults the booking store, so a
// listed slot is not guaranteed to be unclaimed.
func Generate(from, to time.Time, format string) []Slot {
	slots := make([]Slot, 0)

	day := dateOnly(from.UTC())
	last := dateOnly(to.UTC())

	for !day.After(last) {
		refDay := day.In(RefZone)
		if isWorkday(refDay.Weekday()) {
			y, m, d := refDay.Date()
			for hour := dayStartHour; hour < dayEndHour; hour++ {
				if blockedHours[hour] {
					continue
				}

				f := FormatForHour(hour)
				if format != FormatAny && f != format {
					continue
				}

				start := time.Date(y, m, d, hour, 0, 0, 0, RefZone).UTC()
				slots = append(slots, Slot{
					ID:       EncodeSlotID(start, hour, f),
					StartUTC: start,
					EndUTC:   start.Add(slotDuration),
					Format:   f,
				})
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return slots
}

// EncodeSlotID builds the natural key `<UTC date>-<HH>-<format>`, e.g.
// "2024-01-01-10-online". The date component reuses the delimiter, so
// decoding must split from the right.
func EncodeSlotID(startUTC time.Time, hour int, format string) string {
	return fmt.Sprintf("%s-%02d-%s", startUTC.UTC().Format("2006-01-02"), hour, format)
}

// DecodeSlotID parses a slot id back into a Slot. Only the shape is
// checked: the date must parse, the hour must be a number in 0..23 and the
// format must be non-empty. Weekday, blocked hours and format parity are
// deliberately not re-validated here.
func DecodeSlotID(id string) (Slot, error) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return Slot{}, ErrInvalidSlotID
	}
	format := id[i+1:]

	rest := id[:i]
	j := strings.LastIndex(rest, "-")
	if j <= 0 || j == len(rest)-1 {
		return Slot{}, ErrInvalidSlotID
	}

	hour, err := strconv.Atoi(rest[j+1:])
	if err != nil || hour < 0 || hour > 23 {
		return Slot{}, ErrInvalidSlotID
	}

	date, err := time.Parse("2006-01-02", rest[:j])
	if err != nil {
		return Slot{}, ErrInvalidSlotID
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, RefZone).UTC()
	return Slot{
		ID:       id,
		StartUTC: start,
		EndUTC:   start.Add(slotDuration),
		Format:   format,
	}, nil
}

func isWorkday(wd time.Weekday) bool {
	return wd != time.Saturday && wd != time.Sunday
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
