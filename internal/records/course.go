package records

import (
	"net/url"
	"strconv"
)

// Course codes identify the pool length category of a record set.
const (
	CourseSCY = "SCY" // short course yards (25y)
	CourseSCM = "SCM" // short course meters (25m)
	CourseLCM = "LCM" // long course meters (50m)
)

// StatusInvalidCourse is returned as data (not as an HTTP status) when a
// request carries none of the recognized course parameters.
const StatusInvalidCourse = -10

// courseOrder fixes dispatch priority: the first code present in a request
// wins, so a request carrying both SCY and SCM resolves to SCY.
var courseOrder = [...]string{CourseSCY, CourseSCM, CourseLCM}

// CourseFromQuery picks the course code from request query parameters.
// The parameter's value is ignored; only presence counts.
func CourseFromQuery(q url.Values) (string, bool) {
	for _, course := range courseOrder {
		if q.Has(course) {
			return course, true
		}
	}
	return "", false
}

// IsCourse reports whether s is a recognized course code.
func IsCourse(s string) bool {
	return s == CourseSCY || s == CourseSCM || s == CourseLCM
}

// ErrorRecord is the fixed error payload shape emitted when no course code
// was supplied. Status travels as a string, matching the wire contract.
type ErrorRecord struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// InvalidCourse returns the single-element error payload for requests
// without a valid course parameter.
func InvalidCourse() []ErrorRecord {
	return []ErrorRecord{{Status: strconv.Itoa(StatusInvalidCourse), Error: "Invalid COURSE"}}
}
