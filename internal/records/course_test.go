package records

import (
	"net/url"
	"testing"
)

func TestCourseFromQuery(t *testing.T) {
	tests := []struct {
		name       string
		rawQuery   string
		wantCourse string
		wantOK     bool
	}{
		{
			name:       "scy present",
			rawQuery:   "SCY=1",
			wantCourse: CourseSCY,
			wantOK:     true,
		},
		{
			name:       "scm present",
			rawQuery:   "SCM=1",
			wantCourse: CourseSCM,
			wantOK:     true,
		},
		{
			name:       "lcm present",
			rawQuery:   "LCM=1",
			wantCourse: CourseLCM,
			wantOK:     true,
		},
		{
			name:       "value is ignored",
			rawQuery:   "SCY=",
			wantCourse: CourseSCY,
			wantOK:     true,
		},
		{
			name:       "scy wins over scm",
			rawQuery:   "SCM=1&SCY=1",
			wantCourse: CourseSCY,
			wantOK:     true,
		},
		{
			name:       "scm wins over lcm",
			rawQuery:   "LCM=1&SCM=1",
			wantCourse: CourseSCM,
			wantOK:     true,
		},
		{
			name:     "no course parameter",
			rawQuery: "foo=bar",
			wantOK:   false,
		},
		{
			name:     "lowercase is not a course",
			rawQuery: "scy=1",
			wantOK:   false,
		},
		{
			name:     "empty query",
			rawQuery: "",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.rawQuery)
			if err != nil {
				t.Fatalf("ParseQuery(%q) failed: %v", tt.rawQuery, err)
			}

			course, ok := CourseFromQuery(q)
			if ok != tt.wantOK {
				t.Fatalf("CourseFromQuery() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && course != tt.wantCourse {
				t.Errorf("CourseFromQuery() = %q, want %q", course, tt.wantCourse)
			}
		})
	}
}

func TestInvalidCourse(t *testing.T) {
	payload := InvalidCourse()
	if len(payload) != 1 {
		t.Fatalf("InvalidCourse() returned %d records, want 1", len(payload))
	}
	if payload[0].Status != "-10" {
		t.Errorf("status = %q, want %q", payload[0].Status, "-10")
	}
	if payload[0].Error != "Invalid COURSE" {
		t.Errorf("error = %q, want %q", payload[0].Error, "Invalid COURSE")
	}
}

func TestIsCourse(t *testing.T) {
	for _, c := range []string{CourseSCY, CourseSCM, CourseLCM} {
		if !IsCourse(c) {
			t.Errorf("IsCourse(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "scy", "LC", "YARDS"} {
		if IsCourse(c) {
			t.Errorf("IsCourse(%q) = true, want false", c)
		}
	}
}
