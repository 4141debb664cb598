package busfeed

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// DefaultPollInterval matches the live-view refresh rate.
const DefaultPollInterval = 30 * time.Second

// PollTask is one unit of periodic work, usually a fetch plus a callback
// into the caller's state. The context is cancelled when the poller stops.
type PollTask func(ctx context.Context) error

// Poller runs a task on a fixed interval until stopped. Ticks execute one
// at a time on a single goroutine, so a slow fetch delays the next tick
// rather than racing it; stale completions cannot overwrite newer data.
// After a failed tick the next one is delayed by exponential backoff,
// which resets on the next success.
type Poller struct {
	interval time.Duration
	task     PollTask

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// StartPolling runs task immediately and then every interval. The returned
// handle owns the loop; callers must Stop it when the consuming view goes
// away.
func StartPolling(interval time.Duration, task PollTask) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Poller{
		interval: interval,
		task:     task,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go p.run(ctx)
	return p
}

// Stop cancels the poll loop and blocks until it has exited. No task
// invocation starts after Stop returns.
func (p *Poller) Stop() {
	p.stopOnce.Do(p.cancel)
	<-p.done
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	retry := backoff.NewExponentialBackOff()
	retry.MaxElapsedTime = 0
	retry.MaxInterval = p.interval

	for {
		start := time.Now()
		err := p.task(ctx)
		if ctx.Err() != nil {
			return
		}

		var wait time.Duration
		if err != nil {
			wait = retry.NextBackOff()
			log.Warn().Err(err).Dur("wait", wait).Msg("Poll tick failed")
		} else {
			retry.Reset()
			wait = p.interval - time.Since(start)
			if wait < 0 {
				wait = 0
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}
