package calendar

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// MonthBucket holds the events of one calendar month in display order.
type MonthBucket struct {
	Month  time.Month
	Events []Event
}

// GroupByMonth buckets events by month. Buckets appear in the order their
// month is first seen in events, not in calendar order. Within a bucket
// events are sorted by day of month, then by reason compared byte-wise.
func GroupByMonth(events []Event) []MonthBucket {
	var buckets []MonthBucket
	index := make(map[time.Month]int)

	for _, e := range events {
		i, ok := index[e.Month()]
		if !ok {
			i = len(buckets)
			index[e.Month()] = i
			buckets = append(buckets, MonthBucket{Month: e.Month()})
		}
		buckets[i].Events = append(buckets[i].Events, e)
	}

	for _, b := range buckets {
		slices.SortStableFunc(b.Events, compareEvents)
	}
	return buckets
}

func compareEvents(a, b Event) int {
	if c := cmp.Compare(a.Day(), b.Day()); c != 0 {
		return c
	}
	return strings.Compare(a.Reason, b.Reason)
}
