package narrow

import (
	"context"
	"time"

	"github.com/pkg/errors"

	pkgLogger "github.com/fpt/graspify-cli/pkg/logger"
)

// Oracle is the synchronous boundary to the external reasoning service. The
// engine only depends on this single request/response contract; model
// selection, transport and authentication live behind it.
type Oracle interface {
	// Invoke sends a natural-language instruction and returns the raw
	// response text.
	Invoke(ctx context.Context, instruction string) (string, error)
	// ModelID returns a stable identifier for the underlying model
	ModelID() string
}

// ErrOracleUnavailable marks an oracle call that failed at the transport
// level after all retries were exhausted.
var ErrOracleUnavailable = errors.New("oracle unavailable")

// RetrySettings bound the retry decorator. Zero values fall back to defaults.
type RetrySettings struct {
	MaxAttempts int           // total attempts per call (default 3)
	Timeout     time.Duration // per-attempt timeout (default 60s)
	Backoff     time.Duration // base delay between attempts, grows linearly (default 2s)
}

const (
	defaultMaxAttempts = 3
	defaultTimeout     = 60 * time.Second
	defaultBackoff     = 2 * time.Second
)

func (s RetrySettings) withDefaults() RetrySettings {
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = defaultMaxAttempts
	}
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
	if s.Backoff <= 0 {
		s.Backoff = defaultBackoff
	}
	return s
}

// RetryOracle decorates an Oracle with a per-call timeout and bounded,
// linearly backed-off retries. A single transport glitch must not abort an
// otherwise-progressing narrowing session.
type RetryOracle struct {
	inner    Oracle
	settings RetrySettings
	log      *pkgLogger.Logger
}

// NewRetryOracle wraps inner with the given retry settings.
func NewRetryOracle(inner Oracle, settings RetrySettings) *RetryOracle {
	return &RetryOracle{
		inner:    inner,
		settings: settings.withDefaults(),
		log:      pkgLogger.NewComponentLogger("oracle"),
	}
}

// ModelID returns the wrapped oracle's model identifier.
func (r *RetryOracle) ModelID() string { return r.inner.ModelID() }

// Invoke calls the wrapped oracle, retrying on failure. The parent context
// still cancels the whole call chain.
func (r *RetryOracle) Invoke(ctx context.Context, instruction string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.settings.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, r.settings.Timeout)
		text, err := r.inner.Invoke(attemptCtx, instruction)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", errors.Wrap(ctx.Err(), "oracle call canceled")
		}
		if attempt < r.settings.MaxAttempts {
			r.log.Warn("Oracle call failed, retrying",
				"attempt", attempt, "max_attempts", r.settings.MaxAttempts, "error", err)
			select {
			case <-time.After(time.Duration(attempt) * r.settings.Backoff):
			case <-ctx.Done():
				return "", errors.Wrap(ctx.Err(), "oracle call canceled")
			}
		}
	}
	return "", errors.Wrapf(ErrOracleUnavailable, "after %d attempts: %v", r.settings.MaxAttempts, lastErr)
}
