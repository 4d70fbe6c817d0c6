package reconcile

import (
	"regexp"
	"time"
)

// ProximityWindow is how far a log may sit from an event's start and still be
// attributed to it by the fallback heuristic.
const ProximityWindow = 2 * time.Hour

var digitRun = regexp.MustCompile(`\d+`)

// FirstDigitRun extracts the first unbroken run of digits from a QR payload
// ("evt-42-badge" -> "42"). Empty when there are none.
func FirstDigitRun(s string) string {
	return digitRun.FindString(s)
}

// Resolve decides which event a log belongs to. Strategies run in fixed
// priority order, stopping at the first hit:
//
//  1. direct reference: log.event_id equals an event id
//  2. embedded identifier: the first digit run of qr_content equals an event id
//  3. containment: event.start_date <= created_at <= event.end_date
//  4. proximity: |created_at - start_date| <= 2h
//
// events must come ordered by start_date desc; strategies 3 and 4 iterate in
// that order. For proximity the smallest distance to start wins and exact
// ties keep the first candidate in iteration order.
func Resolve(l Log, events []Event) (Event, bool) {
	if l.EventID != "" {
		for _, e := range events {
			if e.ID == l.EventID {
				return e, true
			}
		}
	}

	if l.QRContent != "" {
		if run := FirstDigitRun(l.QRContent); run != "" {
			for _, e := range events {
				if e.ID == run {
					return e, true
				}
			}
		}
	}

	for _, e := range events {
		if !l.CreatedAt.Before(e.StartDate) && !l.CreatedAt.After(e.EndDate) {
			return e, true
		}
	}

	best := -1
	var bestDiff time.Duration
	for i, e := range events {
		diff := l.CreatedAt.Sub(e.StartDate)
		if diff < 0 {
			diff = -diff
		}
		if diff > ProximityWindow {
			continue
		}
		if best < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best >= 0 {
		return events[best], true
	}
	return Event{}, false
}
