package frontgo

import (
	"context"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// checkRetry retries server errors only. Transport errors and client errors
// are returned to the caller on the first attempt.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return false, err
	}
	return resp.StatusCode >= 500 && resp.StatusCode <= 599, nil
}

// jitterBackoff doubles the wait on every attempt and spreads it by ±50%.
func jitterBackoff(min, max time.Duration, attemptNum int, _ *http.Response) time.Duration {
	wait := float64(min) * math.Pow(2, float64(attemptNum))
	wait *= 0.5 + rand.Float64()
	if wait > float64(max) {
		return max
	}
	return time.Duration(wait)
}

// newRetryableClient wires the retry policy around httpClient.
func newRetryableClient(httpClient *http.Client, o *clientOptions, logger zerolog.Logger) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = httpClient
	rc.RetryMax = o.maxRetries
	rc.RetryWaitMin = o.retryWaitMin
	rc.RetryWaitMax = o.retryWaitMax
	rc.CheckRetry = checkRetry
	rc.Backoff = jitterBackoff
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = leveledLogger{logger: logger}
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt == 0 {
			return
		}
		logger.Warn().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_id", req.Header.Get(requestIDHeader)).
			Int("attempt", attempt).
			Msg("Retrying FrontGo API request after server error")
	}
	return rc
}

// leveledLogger adapts zerolog to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger zerolog.Logger
}

// Error logs at debug level; the error itself is returned to the caller.
func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Trace().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
