package routes

import (
	"sort"
	"time"

	"holiday-homes-server/models"
)

const dayLayout = "2006-01-02"

// reservationOverlaps reports whether a reservation interval intersects the
// queried stay. Both intervals are inclusive of their endpoints: a
// reservation blocks its check-out day for a new check-in on the same date.
func reservationOverlaps(resStart, resEnd, queryStart, queryEnd time.Time) bool {
	return !resStart.After(queryEnd) && !resEnd.Before(queryStart)
}

// parseDateParam accepts RFC3339 timestamps (what the booking client sends)
// or bare YYYY-MM-DD days.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(dayLayout, value)
}

// truncateToDay keeps the wall-clock calendar day but anchors it in UTC, so
// day arithmetic stays a multiple of 24 hours across DST transitions.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// disabledDates expands a listing's reservations into the sorted set of
// calendar days unavailable in the booking calendar, every day of every
// reservation's [start, end] inclusive, deduplicated.
func disabledDates(reservations []models.Reservation) []string {
	seen := map[string]struct{}{}
	var days []string

	for _, reservation := range reservations {
		start := truncateToDay(reservation.StartDate)
		end := truncateToDay(reservation.EndDate)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := d.Format(dayLayout)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			days = append(days, key)
		}
	}

	sort.Strings(days)
	return days
}

// nightCount is the calendar-day difference between check-in and check-out.
func nightCount(startDate, endDate time.Time) int {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	return int(end.Sub(start).Hours() / 24)
}

// totalPrice computes nights times the nightly price with a one-night
// minimum: a same-day range is still charged one night.
func totalPrice(startDate, endDate time.Time, nightlyPrice int) int {
	nights := nightCount(startDate, endDate)
	if nights <= 0 {
		return nightlyPrice
	}
	return nights * nightlyPrice
}
