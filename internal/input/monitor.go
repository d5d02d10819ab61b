package input

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrStopTimeout is returned when the monitor does not stop within its grace
// period and is abandoned.
var ErrStopTimeout = errors.New("input: monitor did not stop in time")

// Monitor is the advanced input source. A background listener keeps the
// held state of every key and publishes snapshots over a one-slot pipe;
// Read returns the newest snapshot, or the previous one if nothing changed.
//
// Terminals report presses and auto-repeats but no releases, so a key counts
// as held until it has not been seen for the hold duration.
type Monitor struct {
	keys <-chan Key
	hold time.Duration
	now  func() time.Time
	log  *log.Logger

	pipe chan Controls
	last Controls

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates a stopped monitor reading from keys.
func NewMonitor(keys <-chan Key, hold time.Duration, logger *log.Logger) *Monitor {
	return &Monitor{
		keys: keys,
		hold: hold,
		now:  time.Now,
		log:  logger,
		pipe: make(chan Controls, 1),
	}
}

// Start launches the listener. Starting a running monitor is a no-op.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.run(ctx, m.done)
	m.log.Debug("input monitor started", "hold", m.hold)
}

// Stop asks the listener to exit and waits up to grace for it. On timeout
// the listener is abandoned and ErrStopTimeout is returned.
func (m *Monitor) Stop(grace time.Duration) error {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel = nil
	m.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		m.log.Debug("input monitor stopped")
		return nil
	case <-time.After(grace):
		m.log.Warn("input monitor ignored stop, abandoning it", "grace", grace)
		return ErrStopTimeout
	}
}

// Read returns the latest published snapshot.
func (m *Monitor) Read() Controls {
	for {
		select {
		case c := <-m.pipe:
			m.last = c
		default:
			return m.last
		}
	}
}

func (m *Monitor) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	interval := m.hold / 3
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := make(map[Key]time.Time)
	var published Controls
	keys := m.keys

	for {
		select {
		case <-ctx.Done():
			return
		case k, ok := <-keys:
			if !ok {
				keys = nil // source gone; keep serving until stopped
				continue
			}
			seen[k] = m.now()
		case <-ticker.C:
		}

		state := m.snapshot(seen)
		if state != published {
			published = state
			m.publish(state)
		}
	}
}

func (m *Monitor) snapshot(seen map[Key]time.Time) Controls {
	now := m.now()
	var c Controls
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyFire} {
		if at, ok := seen[k]; ok && now.Sub(at) < m.hold {
			c.apply(k)
		}
	}
	return c
}

// publish replaces whatever snapshot is waiting in the pipe.
func (m *Monitor) publish(c Controls) {
	for {
		select {
		case m.pipe <- c:
			return
		default:
		}
		select {
		case <-m.pipe:
		default:
		}
	}
}
