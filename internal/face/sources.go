package face

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/faizmokh/fuzzyclock/internal/config"
	"github.com/faizmokh/fuzzyclock/internal/display"
	"github.com/faizmokh/fuzzyclock/internal/logger"
	"github.com/faizmokh/fuzzyclock/internal/status"
)

// Sources polls the battery and wireless link.
type Sources struct {
	Battery *status.Watcher[status.Battery]
	Link    *status.Watcher[bool]
	log     *logger.Logger
}

// NewSources reads sysfs at the paths in cfg.
func NewSources(cfg config.Config, log *logger.Logger) *Sources {
	interval := status.WithPollInterval(cfg.PollInterval)
	return &Sources{
		Battery: status.NewBatteryWatcher(status.SysfsBattery{Path: cfg.BatteryPath}, log, interval),
		Link: status.NewWirelessWatcher(status.SysfsLink{
			NetPath:   cfg.NetPath,
			Interface: cfg.WirelessInterface,
		}, log, interval),
		log: log,
	}
}

// Prime reads both sources once so the first frame already carries status.
// Failures leave the indicator blank.
func (s *Sources) Prime(c *display.Coordinator) {
	if b, err := s.Battery.Peek(); err != nil {
		s.log.Debug("battery: %v", err)
	} else {
		c.SetBattery(b)
	}
	if up, err := s.Link.Peek(); err != nil {
		s.log.Debug("wireless: %v", err)
	} else {
		c.SetWireless(up)
	}
}

// Run polls both sources until ctx is done.
func (s *Sources) Run(ctx context.Context, battery chan<- status.Battery, link chan<- bool) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Battery.Run(ctx, battery) })
	g.Go(func() error { return s.Link.Run(ctx, link) })
	return g.Wait()
}
