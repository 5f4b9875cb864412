// Package clock implements the clock page: a one-second local tick and
// a thirty-second re-sync against the assistant's own time and date.
// Both are torn down by Stop, after which late fetch results are
// discarded instead of written.
package clock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ziggyhome/panel/gateway"
)

// Config controls the two periods. Zero values take the page defaults.
type Config struct {
	Tick   time.Duration
	Resync time.Duration
}

// Snapshot is what the page renders: the local wall clock plus the
// assistant's last reported time and date lines.
type Snapshot struct {
	Local      time.Time
	RemoteTime string
	RemoteDate string
	LastSync   time.Time
}

type Clock struct {
	gw     gateway.SystemGateway
	logger *zap.Logger
	cfg    Config

	cron     *cron.Cron
	stopCh   chan struct{}
	stopOnce sync.Once

	mu      sync.RWMutex
	stopped bool
	snap    Snapshot
}

func New(gw gateway.SystemGateway, cfg Config, logger *zap.Logger) *Clock {
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}
	if cfg.Resync <= 0 {
		cfg.Resync = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Clock{
		gw:     gw,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
		stopCh: make(chan struct{}),
	}
}

// Start launches the local tick loop and the re-sync scheduler, and
// fires one immediate re-sync so the page is not blank for the first
// period.
func (c *Clock) Start(ctx context.Context) {
	c.mu.Lock()
	c.snap.Local = time.Now()
	c.mu.Unlock()

	schedule := fmt.Sprintf("@every %s", c.cfg.Resync)
	if _, err := c.cron.AddFunc(schedule, func() { c.resync(ctx) }); err != nil {
		c.logger.Error("resync schedule rejected", zap.String("schedule", schedule), zap.Error(err))
	}
	c.cron.Start()

	go c.tickLoop()
	go c.resync(ctx)
}

// Stop tears down both timers. It is safe to call more than once.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		c.cron.Stop()
		c.mu.Lock()
		c.stopped = true
		c.mu.Unlock()
	})
}

// Close implements io.Closer so the clock can hang off a lifecycle
// manager directly.
func (c *Clock) Close() error {
	c.Stop()
	return nil
}

// Snapshot returns the current clock state.
func (c *Clock) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

func (c *Clock) tickLoop() {
	ticker := time.NewTicker(c.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			c.mu.Lock()
			if !c.stopped {
				c.snap.Local = now
			}
			c.mu.Unlock()
		case <-c.stopCh:
			return
		}
	}
}

// resync fetches the remote time and date concurrently. The two calls
// are independent: either may fail without blocking the other, and a
// failure simply keeps the previous line.
func (c *Clock) resync(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		remote, err := c.gw.Time(ctx)
		if err != nil {
			c.logger.Warn("remote time fetch failed", zap.Error(err))
			return
		}
		c.apply(func(s *Snapshot) { s.RemoteTime = remote })
	}()

	go func() {
		defer wg.Done()
		remote, err := c.gw.Date(ctx)
		if err != nil {
			c.logger.Warn("remote date fetch failed", zap.Error(err))
			return
		}
		c.apply(func(s *Snapshot) { s.RemoteDate = remote })
	}()

	wg.Wait()
	c.apply(func(s *Snapshot) { s.LastSync = time.Now() })
}

// apply writes one snapshot mutation unless the clock has been stopped,
// so results arriving after teardown are dropped.
func (c *Clock) apply(mutate func(*Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	mutate(&c.snap)
}
