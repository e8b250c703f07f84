package redis

// Redis key layout. Everything lives under the swimrec: prefix so the
// service can share an instance with other tenants.
const (
	// KeyPrefixCourse is the prefix for per-course record lists.
	KeyPrefixCourse = "swimrec:records:"
	// KeySeededAt holds the timestamp of the last successful seed load.
	KeySeededAt = "swimrec:seeded_at"
)

// CourseKey returns the redis key holding the record list for a course.
func CourseKey(course string) string {
	return KeyPrefixCourse + course
}
