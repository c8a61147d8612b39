// Package datex formats dates the way the CapNote UI presents them:
// day-first absolute dates and Turkish relative phrases.
package datex

import (
	"fmt"
	"time"
)

// FormatDate renders t as dd/MM/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateTime renders t as dd/MM/yyyy HH:mm.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatRelative renders t relative to the current time.
func FormatRelative(t time.Time) string {
	return RelativeTo(t, time.Now())
}

// RelativeTo renders t relative to now. Today/tomorrow/yesterday follow
// calendar-day boundaries in now's location, not 24-hour windows; anything
// further away becomes a distance phrase.
func RelativeTo(t, now time.Time) string {
	days := calendarDays(now, t.In(now.Location()))

	switch days {
	case 0:
		return "Bugün"
	case 1:
		return "Yarın"
	case -1:
		return "Dün"
	}

	suffix := "sonra"
	n := days
	if n < 0 {
		suffix = "önce"
		n = -n
	}

	switch {
	case n < 30:
		return fmt.Sprintf("%d gün %s", n, suffix)
	case n < 365:
		return fmt.Sprintf("%d ay %s", months(n), suffix)
	default:
		return fmt.Sprintf("%d yıl %s", n/365, suffix)
	}
}

// calendarDays counts whole calendar days from a to b (negative when b is
// before a's day).
func calendarDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

func months(days int) int {
	m := days / 30
	if m < 1 {
		m = 1
	}
	return m
}
