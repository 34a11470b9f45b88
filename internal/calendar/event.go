package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/runnerr0/familydays/internal/people"
)

// DateLayout matches FamilyTreeBuilder dates such as "Jan. 05 1980" or
// "Mar. 3 1975".
const DateLayout = "Jan. 2 2006"

// ErrInvalidMarriageDate is returned when a marriage date cannot be parsed.
// Unlike birth dates, these abort the run.
var ErrInvalidMarriageDate = errors.New("invalid marriage date")

// Kind distinguishes the occasions an Event can mark.
type Kind int

const (
	Birthday Kind = iota
	Anniversary
)

func (k Kind) String() string {
	switch k {
	case Birthday:
		return "birthday"
	case Anniversary:
		return "anniversary"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a recurring occasion with its display label already resolved.
type Event struct {
	Date   time.Time
	Kind   Kind
	Reason string
}

// Day returns the day of month.
func (e Event) Day() int { return e.Date.Day() }

// Month returns the calendar month.
func (e Event) Month() time.Month { return e.Date.Month() }

// Line formats the event as it appears in the document.
func (e Event) Line() string {
	return fmt.Sprintf("%d %s", e.Day(), e.Reason)
}

// ParseDate parses a report date. Calendar-invalid dates like "Feb. 30 1990"
// are rejected.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Living drops everyone with a recorded death date.
func Living(persons []people.Person) []people.Person {
	living := make([]people.Person, 0, len(persons))
	for _, p := range persons {
		if !p.Deceased() {
			living = append(living, p)
		}
	}
	return living
}

// Extraction is the outcome of one pass over the report.
type Extraction struct {
	Living []people.Person
	Events []Event

	// SkippedBirthdays holds living persons whose birth date is set but
	// does not parse. They contribute no birthday.
	SkippedBirthdays []people.Person
}

// Extract drops deceased persons, then returns the birthdays of everyone left
// followed by the anniversaries recorded on men, each in input order.
//
// A birth date that does not parse is skipped. A marriage date that does not
// parse is returned as an error wrapping ErrInvalidMarriageDate.
func Extract(persons []people.Person) (*Extraction, error) {
	living := Living(persons)
	birthdays, skipped := Birthdays(living)

	anniversaries, err := Anniversaries(living)
	if err != nil {
		return nil, err
	}
	return &Extraction{
		Living:           living,
		Events:           append(birthdays, anniversaries...),
		SkippedBirthdays: skipped,
	}, nil
}

// ExtractEvents is Extract reduced to its events.
func ExtractEvents(persons []people.Person) ([]Event, error) {
	ex, err := Extract(persons)
	if err != nil {
		return nil, err
	}
	return ex.Events, nil
}

// Birthdays returns one event per person with a parseable birth date, and the
// persons whose birth date is set but does not parse.
func Birthdays(persons []people.Person) ([]Event, []people.Person) {
	var (
		events  []Event
		skipped []people.Person
	)
	for _, p := range persons {
		if p.BirthDate == "" {
			continue
		}
		date, err := ParseDate(p.BirthDate)
		if err != nil {
			skipped = append(skipped, p)
			continue
		}
		events = append(events, Event{
			Date:   date,
			Kind:   Birthday,
			Reason: fmt.Sprintf("Birthday of %s (born in %d)", ResolveName(p), date.Year()),
		})
	}
	return events, skipped
}

// Anniversaries returns one event per married man. The wife's record is not
// consulted so each couple appears once.
func Anniversaries(persons []people.Person) ([]Event, error) {
	var events []Event
	for _, p := range persons {
		if p.MarriageDate == "" || !p.IsMale() {
			continue
		}
		date, err := ParseDate(p.MarriageDate)
		if err != nil {
			return nil, fmt.Errorf("%w %q for %s %s: %v", ErrInvalidMarriageDate, p.MarriageDate, p.FirstName, p.LastName, err)
		}
		events = append(events, Event{
			Date:   date,
			Kind:   Anniversary,
			Reason: fmt.Sprintf("Anniversary of %s %s and %s (married in %d)", p.FirstName, p.LastName, p.MarriageTo, date.Year()),
		})
	}
	return events, nil
}
