package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ev(month time.Month, day int, reason string) Event {
	return Event{Date: time.Date(2000, month, day, 0, 0, 0, 0, time.UTC), Reason: reason}
}

func TestGroupByMonth(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   []MonthBucket
	}{
		{
			name:   "empty",
			events: nil,
			want:   nil,
		},
		{
			name:   "day ordering",
			events: []Event{ev(time.March, 5, "b"), ev(time.March, 3, "a")},
			want: []MonthBucket{
				{Month: time.March, Events: []Event{ev(time.March, 3, "a"), ev(time.March, 5, "b")}},
			},
		},
		{
			name:   "same day ordered by reason",
			events: []Event{ev(time.May, 7, "Birthday of Zoe"), ev(time.May, 7, "Anniversary of Al"), ev(time.May, 7, "Birthday of Amy")},
			want: []MonthBucket{
				{Month: time.May, Events: []Event{ev(time.May, 7, "Anniversary of Al"), ev(time.May, 7, "Birthday of Amy"), ev(time.May, 7, "Birthday of Zoe")}},
			},
		},
		{
			name:   "reason compared by code point",
			events: []Event{ev(time.May, 7, "b"), ev(time.May, 7, "B"), ev(time.May, 7, "a")},
			want: []MonthBucket{
				{Month: time.May, Events: []Event{ev(time.May, 7, "B"), ev(time.May, 7, "a"), ev(time.May, 7, "b")}},
			},
		},
		{
			name: "buckets in first-seen order",
			events: []Event{
				ev(time.December, 1, "x"),
				ev(time.January, 9, "y"),
				ev(time.December, 2, "z"),
				ev(time.June, 4, "w"),
			},
			want: []MonthBucket{
				{Month: time.December, Events: []Event{ev(time.December, 1, "x"), ev(time.December, 2, "z")}},
				{Month: time.January, Events: []Event{ev(time.January, 9, "y")}},
				{Month: time.June, Events: []Event{ev(time.June, 4, "w")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupByMonth(tt.events)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GroupByMonth() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupByMonth_IgnoresYear(t *testing.T) {
	a := Event{Date: time.Date(1950, time.July, 20, 0, 0, 0, 0, time.UTC), Reason: "old"}
	b := Event{Date: time.Date(2010, time.July, 10, 0, 0, 0, 0, time.UTC), Reason: "new"}

	buckets := GroupByMonth([]Event{a, b})
	assert.Len(t, buckets, 1)
	assert.Equal(t, []Event{b, a}, buckets[0].Events)
}
