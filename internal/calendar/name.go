package calendar

import (
	"strings"

	"github.com/runnerr0/familydays/internal/people"
)

// ResolveName returns the display name used in event labels.
//
// Men keep their own last name. For everyone else the surname is taken from
// the last word of "Marriage to", then from "Married Name", and finally from
// "Last name".
func ResolveName(p people.Person) string {
	if p.IsMale() {
		return p.FirstName + " " + p.LastName
	}

	if i := strings.LastIndex(p.MarriageTo, " "); i >= 0 {
		return p.FirstName + " " + p.MarriageTo[i+1:]
	}
	if p.MarriedName != "" {
		return p.FirstName + " " + p.MarriedName
	}
	return p.FirstName + " " + p.LastName
}
