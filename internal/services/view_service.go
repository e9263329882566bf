package services

import (
	"time"

	"bbd/internal/birthday"
	"bbd/internal/cache"
	"bbd/internal/models"
	"bbd/internal/providers"
	"bbd/internal/roster"
	"bbd/internal/structures"
)

type ViewServiceInterface interface {
	Render(installationID string, expanded bool) (*models.ViewDocument, error)
	Today(installationID string) ([]models.UpcomingEntry, error)
	Stats(installationID string) (*models.Stats, error)
	Warm(installationID string) error
}

// ViewService is the render pipeline: roster → upcoming → assembled document,
// with the cache coordinator in front. Only the compact view is cached; it is
// the one every scheduled warm-up and default command hits.
type ViewService struct {
	conf        *structures.Config
	rosters     roster.ServiceInterface
	coordinator cache.CoordinatorInterface
	metrics     providers.MetricsProviderInterface
	logger      providers.Logger
	now         func() time.Time
}

func NewViewService(conf *structures.Config, rosters roster.ServiceInterface, coordinator cache.CoordinatorInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) ViewServiceInterface {
	return &ViewService{
		conf:        conf,
		rosters:     rosters,
		coordinator: coordinator,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

func (vs *ViewService) Render(installationID string, expanded bool) (*models.ViewDocument, error) {
	if !expanded {
		if doc := vs.coordinator.Get(installationID); doc != nil {
			return doc, nil
		}
	}
	return vs.renderFresh(installationID, expanded)
}

// Warm re-renders the compact view and repopulates the cache regardless of
// the current slot state, so a warm-up ahead of expiry refreshes the TTL.
func (vs *ViewService) Warm(installationID string) error {
	_, err := vs.renderFresh(installationID, false)
	return err
}

func (vs *ViewService) renderFresh(installationID string, expanded bool) (*models.ViewDocument, error) {
	start := vs.now()

	r, err := vs.rosters.Load(installationID)
	if err != nil {
		return nil, err
	}

	entries := birthday.Upcoming(r, vs.conf.Birthday.HorizonDays, start)
	doc := birthday.Assemble(entries, birthday.AssembleOptions{
		Expanded:   expanded,
		RosterSize: len(r.Entries),
		Now:        start,
	})

	vs.metrics.ObserveRenderDuration(vs.now().Sub(start))
	vs.metrics.SetRosterEntries(installationID, len(r.Entries))

	if !expanded {
		vs.coordinator.Set(installationID, doc, vs.conf.Cache.TTL)
	}
	return doc, nil
}

func (vs *ViewService) Today(installationID string) ([]models.UpcomingEntry, error) {
	r, err := vs.rosters.Load(installationID)
	if err != nil {
		return nil, err
	}
	return birthday.TodaysEntries(r, vs.now()), nil
}

func (vs *ViewService) Stats(installationID string) (*models.Stats, error) {
	r, err := vs.rosters.Load(installationID)
	if err != nil {
		return nil, err
	}
	return birthday.ComputeStats(r, vs.now()), nil
}
