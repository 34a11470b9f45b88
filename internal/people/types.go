package people

// Column names of a FamilyTreeBuilder CSV report.
const (
	ColFirstName    = "First name"
	ColLastName     = "Last name"
	ColGender       = "Gender"
	ColBirthDate    = "Birth date"
	ColDeathDate    = "Death date"
	ColMarriageDate = "Marriage date"
	ColMarriageTo   = "Marriage to"
	ColMarriedName  = "Married Name"
)

// Columns lists every column the reader requires, in report order.
var Columns = []string{
	ColFirstName,
	ColLastName,
	ColGender,
	ColBirthDate,
	ColDeathDate,
	ColMarriageDate,
	ColMarriageTo,
	ColMarriedName,
}

// Person is one row of the report. Values are kept exactly as exported.
type Person struct {
	FirstName    string
	LastName     string
	Gender       string
	BirthDate    string
	DeathDate    string
	MarriageDate string
	MarriageTo   string // free text, usually "First Last"
	MarriedName  string
}

// IsMale reports whether the record is marked "M". Any other value,
// including an empty one, is treated as female.
func (p Person) IsMale() bool {
	return p.Gender == "M"
}

// Deceased reports whether a death date was recorded.
func (p Person) Deceased() bool {
	return p.DeathDate != ""
}
