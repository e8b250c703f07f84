package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/openswim/swimrec/internal/httpserver/deps"
	"github.com/openswim/swimrec/internal/logger"
	"github.com/openswim/swimrec/internal/records"
)

// Records serves swim records for one course. The course is chosen by the
// first of SCY, SCM, LCM present in the query string; parameter values are
// ignored. Requests with no course code get the fixed invalid-course
// payload with HTTP 200, matching the wire contract.
func Records(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		course, ok := records.CourseFromQuery(r.URL.Query())
		if !ok {
			d.Logger.Debug("records request without course parameter")
			_ = json.NewEncoder(w).Encode(records.InvalidCourse())
			return
		}

		recs, err := d.Extractor.Extract(r.Context(), course)
		if err != nil {
			d.Logger.Error("record extraction failed",
				logger.String("course", course),
				logger.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "record lookup failed"})
			return
		}

		d.Logger.Info("records served",
			logger.String("course", course),
			logger.Int("count", len(recs)))

		// Encode an empty array, not null, when the course has no records.
		if recs == nil {
			recs = []records.Record{}
		}
		_ = json.NewEncoder(w).Encode(recs)
	}
}
