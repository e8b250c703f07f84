package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openswim/swimrec/internal/records"
)

// Store persists swim records in redis, one list per course. It is the
// record-extraction backend behind the /api/records endpoint.
type Store struct {
	client *redis.Client
}

// NewStore creates a redis-backed record store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// ReplaceCourseRecords atomically rewrites the record list for one course.
// The delete and the pushes run in a single pipeline so readers never see a
// partially written list.
func (s *Store) ReplaceCourseRecords(ctx context.Context, course string, recs []records.Record) error {
	if !records.IsCourse(course) {
		return fmt.Errorf("unknown course %q", course)
	}

	pipe := s.client.TxPipeline()
	key := CourseKey(course)
	pipe.Del(ctx, key)
	for i := range recs {
		data, err := json.Marshal(&recs[i])
		if err != nil {
			return fmt.Errorf("failed to marshal record %d for %s: %w", i, course, err)
		}
		pipe.RPush(ctx, key, data)
	}
	pipe.Set(ctx, KeySeededAt, time.Now().Format(time.RFC3339), 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace %s records: %w", course, err)
	}
	return nil
}

// CourseRecords returns every record stored for a course, in insertion
// order. A missing key reads as an empty list.
func (s *Store) CourseRecords(ctx context.Context, course string) ([]records.Record, error) {
	raw, err := s.client.LRange(ctx, CourseKey(course), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s records: %w", course, err)
	}

	recs := make([]records.Record, 0, len(raw))
	for _, item := range raw {
		var rec records.Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s record: %w", course, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Extract implements records.Extractor.
func (s *Store) Extract(ctx context.Context, course string) ([]records.Record, error) {
	return s.CourseRecords(ctx, course)
}

// SeededAt returns the time of the last successful seed load, or the zero
// time if the store was never seeded.
func (s *Store) SeededAt(ctx context.Context) (time.Time, error) {
	val, err := s.client.Get(ctx, KeySeededAt).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read seed timestamp: %w", err)
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid seed timestamp %q: %w", val, err)
	}
	return t, nil
}
