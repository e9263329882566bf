// Package scheduler drives the cache maintenance jobs: periodic warm-up of
// every installation's rendered view ahead of expiry, and a slower full
// refresh. Both are best-effort; a task that exhausts its retries is logged
// and counted, never surfaced to a request.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cenkalti/backoff/v5"
	"github.com/roylee0704/gron"

	"bbd/internal/providers"
	"bbd/internal/services"
	"bbd/internal/structures"
)

type SchedulerInterface interface {
	Init()
	Stop()
	RefreshAll() error
	WarmOne(installationID string) error
}

type Scheduler struct {
	conf     *structures.Config
	logger   providers.Logger
	views    services.ViewServiceInterface
	installs services.InstallationStoreInterface
	metrics  providers.MetricsProviderInterface
	cron     *gron.Cron
	opsMu    sync.Mutex
}

func NewScheduler(conf *structures.Config, logger providers.Logger, views services.ViewServiceInterface, installs services.InstallationStoreInterface, metrics providers.MetricsProviderInterface) SchedulerInterface {
	return &Scheduler{
		conf:     conf,
		logger:   logger,
		views:    views,
		installs: installs,
		metrics:  metrics,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.conf.Schedule.WarmInterval), func() {
		s.runTask("warmup", s.RefreshAll)
	})

	s.cron.AddFunc(gron.Every(s.conf.Schedule.RefreshInterval), func() {
		s.runTask("refresh", s.RefreshAll)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// runTask executes fn under the bounded retry policy: exponential backoff
// between attempts, a fixed maximum try count, and an overall wall-clock
// timeout racing the whole invocation.
func (s *Scheduler) runTask(name string, fn func() error) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	retry := s.conf.Schedule.Retry
	ctx, cancel := context.WithTimeout(context.Background(), retry.Timeout)
	defer cancel()

	exp := backoff.NewExponentialBackOff()
	if retry.InitialDelay > 0 {
		exp.InitialInterval = retry.InitialDelay
	}
	if retry.MaxDelay > 0 {
		exp.MaxInterval = retry.MaxDelay
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, backoff.WithBackOff(exp), backoff.WithMaxTries(retry.MaxTries))

	if err != nil {
		s.metrics.IncTaskFailure(name)
		s.logger.Errorf(providers.TypeTask, "Task %s exhausted retries: %s", name, err)
		return
	}
	s.logger.Infof(providers.TypeTask, "Task %s completed", name)
}

// RefreshAll re-renders the cached view of every known installation. One
// broken installation does not stop the others; their failures are joined.
func (s *Scheduler) RefreshAll() error {
	installs, err := s.installs.List()
	if err != nil {
		return fmt.Errorf("list installations: %w", err)
	}

	var errs []error
	for _, inst := range installs {
		if err := s.WarmOne(inst.ID); err != nil {
			errs = append(errs, fmt.Errorf("installation %s: %w", inst.ID, err))
		}
	}
	return errors.Join(errs...)
}

// WarmOne re-renders and re-caches a single installation's view.
func (s *Scheduler) WarmOne(installationID string) error {
	if err := s.views.Warm(installationID); err != nil {
		s.logger.Warnf(providers.TypeTask, "Warm-up for %s failed: %s", installationID, err)
		return err
	}
	s.logger.Debugf(providers.TypeTask, "Warmed view for %s", installationID)
	return nil
}
