package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openswim/swimrec/internal/logger"
	"github.com/openswim/swimrec/internal/records"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time  // for testing, defaults to time.Now
	Extractor     records.Extractor // record lookup backend
	RedisClient   *redis.Client     // used by readiness checks
	ReloadTrigger chan struct{}     // channel to trigger a manual seed reload
}
