package tracker

import (
	"context"
	"time"

	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/zeyes/types"
)

const (
	DefaultPollInterval = time.Second

	// MaxPollAttempts bounds consecutive transport-level poll failures
	// before they escalate into an ObservationError. A pending-but-healthy
	// operation is only bounded by the caller's context.
	MaxPollAttempts = 10
)

// pollFunc performs one status round trip against the rollup network.
type pollFunc func(ctx context.Context) (*types.Disposition, error)

// awaitResolved polls until the network reports a terminal disposition for
// the requested level. Transient round-trip failures are retried with linear
// backoff; context cancellation is observed between rounds.
func awaitResolved(ctx context.Context, interval time.Duration, poll pollFunc) (*types.Disposition, error) {
	failures := 0

	for {
		disposition, err := poll(ctx)
		if err != nil {
			failures++
			if failures >= MaxPollAttempts {
				return nil, types.NewObservationError(failures, err)
			}

			log.Verbose("Status poll failed, retrying. err = ", err)
			if err := sleep(ctx, time.Duration(failures)*interval); err != nil {
				return nil, err
			}
			continue
		}
		failures = 0

		if disposition.Resolved {
			return disposition, nil
		}

		if err := sleep(ctx, interval); err != nil {
			return nil, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
