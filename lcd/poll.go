package lcd

import (
	"context"
	"fmt"
	"time"
)

// Poll bounds how long the driver waits for the controller to clear a request
// flag. The zero value waits forever.
type Poll struct {
	// MaxAttempts limits the number of flag reads. 0 means unlimited.
	MaxAttempts int
	// Timeout limits the wall time of a single wait. 0 means unlimited.
	Timeout time.Duration
}

// Unbounded reports whether p never gives up on its own.
func (p Poll) Unbounded() bool {
	return p.MaxAttempts <= 0 && p.Timeout <= 0
}

// ctxCheckEvery is how many flag reads pass between context checks.
const ctxCheckEvery = 256

// waitClear spins on the flags register until every bit in f reads as zero.
func (c *Controller) waitClear(ctx context.Context, f Flag) error {
	var deadline time.Time
	if c.poll.Timeout > 0 {
		deadline = c.now().Add(c.poll.Timeout)
	}

	for attempt := 1; ; attempt++ {
		if c.regs.Read16(RegFlags)&uint16(f) == 0 {
			return nil
		}
		if c.poll.MaxAttempts > 0 && attempt >= c.poll.MaxAttempts {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("lcd: waiting for %s: %w", f, err)
			}
			return fmt.Errorf("%w: %s flag still set after %d reads", ErrTimeout, f, attempt)
		}
		if attempt%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("lcd: waiting for %s: %w", f, err)
			}
			if !deadline.IsZero() && c.now().After(deadline) {
				return fmt.Errorf("%w: %s flag still set after %s", ErrTimeout, f, c.poll.Timeout)
			}
		}
	}
}
