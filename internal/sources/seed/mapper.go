package seed

import (
	"fmt"
	"time"

	"github.com/openswim/swimrec/internal/records"
)

// dateLayout is the seed file date format.
const dateLayout = "2006-01-02"

// Mapper converts seed file entries to domain records.
type Mapper struct{}

// NewMapper creates a seed mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapRecords validates and converts a parsed seed file into per-course
// record slices. Unknown course codes and incomplete entries are errors:
// a bad seed file should fail the reload, not silently drop records.
func (m *Mapper) MapRecords(f *File) (map[string][]records.Record, error) {
	if f == nil {
		return nil, fmt.Errorf("nil seed file")
	}

	out := make(map[string][]records.Record, len(f.Courses))
	for course, entries := range f.Courses {
		if !records.IsCourse(course) {
			return nil, fmt.Errorf("unknown course %q in seed file", course)
		}

		recs := make([]records.Record, 0, len(entries))
		for i, e := range entries {
			rec, err := m.mapRecord(course, e)
			if err != nil {
				return nil, fmt.Errorf("%s entry %d: %w", course, i, err)
			}
			recs = append(recs, rec)
		}
		out[course] = recs
	}
	return out, nil
}

func (m *Mapper) mapRecord(course string, e RecordProps) (records.Record, error) {
	if e.Stroke == "" {
		return records.Record{}, fmt.Errorf("missing stroke")
	}
	if e.Distance <= 0 {
		return records.Record{}, fmt.Errorf("invalid distance %d", e.Distance)
	}
	if e.Time == "" {
		return records.Record{}, fmt.Errorf("missing time")
	}
	if e.Holder == "" {
		return records.Record{}, fmt.Errorf("missing holder")
	}

	var setAt time.Time
	if e.SetAt != "" {
		t, err := time.Parse(dateLayout, e.SetAt)
		if err != nil {
			return records.Record{}, fmt.Errorf("invalid set_at %q: %w", e.SetAt, err)
		}
		setAt = t
	}

	return records.Record{
		Course:   course,
		AgeGroup: e.AgeGroup,
		Sex:      e.Sex,
		Distance: e.Distance,
		Stroke:   e.Stroke,
		Time:     e.Time,
		Holder:   e.Holder,
		Club:     e.Club,
		SetAt:    setAt,
	}, nil
}
