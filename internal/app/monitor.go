package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/wodview/internal/configstore"
	"github.com/five82/wodview/internal/notify"
	"github.com/five82/wodview/internal/schedule"
	"github.com/five82/wodview/internal/state"
)

const defaultMonitorInterval = 5 * time.Minute

// NewWeeksMessage is announced when the configuration lists more weeks than
// the local state.
const NewWeeksMessage = "¡Hay nuevas semanas disponibles!"

// Monitor watches the configuration resource for newly published weeks.
type Monitor struct {
	Store    *state.Store
	Source   schedule.Source
	Configs  *configstore.Store
	Notices  configstore.Notifier
	Interval time.Duration
	Timeout  time.Duration

	announced int // remote week count already announced
}

// StartMonitor launches a background goroutine that checks for new weeks at
// a fixed cadence until ctx is cancelled. It returns immediately.
func StartMonitor(ctx context.Context, m Monitor) {
	interval := m.Interval
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.check(ctx)
			}
		}
	}()
}

// check runs one poll. It reports whether new weeks were announced. A given
// remote count is announced once, even when the local list cannot grow to
// match it.
func (m *Monitor) check(ctx context.Context) bool {
	cfg := m.Store.Config()
	if !cfg.NotificationsEnabled {
		return false
	}

	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}

	remote, err := m.Source.LoadConfig(ctx, true)
	if err != nil {
		log.Printf("week monitor poll failed: %v", err)
		return false
	}
	published := len(schedule.Dedupe(remote.Refs()))
	if published <= len(cfg.AvailableWeeks) || published <= m.announced {
		return false
	}
	m.announced = published

	m.Notices.Notify(NewWeeksMessage, notify.Info)
	count := m.Configs.ListAvailableWeeks(ctx)
	log.Printf("week monitor: %d weeks published, %d listed", published, count)
	return true
}
