// Package obs provides lightweight observability helpers for the slow
// paths: every external provider and cache call is timed and correlated
// with its originating request.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the per-request correlation id set by the HTTP layer.
const RequestIDKey ctxKey = "req_id"

// Time returns a deferred closure that logs the operation's duration and
// outcome. Usage: defer obs.Time(ctx, "nominatim.Search")(&err).
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
