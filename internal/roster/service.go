package roster

import (
	"fmt"

	json "github.com/goccy/go-json"

	"bbd/internal/cache"
	"bbd/internal/models"
	"bbd/internal/providers"
)

type ServiceInterface interface {
	Load(installationID string) (*models.Roster, error)
	Replace(installationID string, raw []byte) (*models.Roster, error)
}

// Service owns the roster read and write paths. Reads migrate legacy data in
// place; writes are whole-roster replacements followed by synchronous cache
// invalidation.
type Service struct {
	storage     providers.StorageProviderInterface
	coordinator cache.CoordinatorInterface
	logger      providers.Logger
}

func NewService(storage providers.StorageProviderInterface, coordinator cache.CoordinatorInterface, logger providers.Logger) ServiceInterface {
	return &Service{
		storage:     storage,
		coordinator: coordinator,
		logger:      logger,
	}
}

// Load reads, migrates and validates the stored roster. A missing record is
// an empty roster, not an error. A record that survives migration under a
// legacy shape is persisted back, so migration runs at most once per record.
func (s *Service) Load(installationID string) (*models.Roster, error) {
	key := providers.RosterKey(installationID)
	raw, ok, err := s.storage.Get(key)
	if err != nil {
		return nil, fmt.Errorf("roster read for %s: %w", installationID, err)
	}
	if !ok {
		return &models.Roster{Entries: []models.Entry{}}, nil
	}

	rec := Migrate(raw)
	for _, w := range rec.Warnings {
		s.logger.Warnf(providers.TypeApp, "Roster migration for %s: %s", installationID, w)
	}
	if !rec.Success {
		s.logger.Errorf(providers.TypeApp, "Roster migration for %s failed: %v", installationID, rec.Errors)
		return nil, fmt.Errorf("%w: %v", ErrDataUnreadable, rec.Errors)
	}

	if rec.OriginalVersion != models.VersionCurrent {
		if err := s.persistBack(key, rec.Roster); err != nil {
			// Next read just migrates again; not worth failing the request.
			s.logger.Warnf(providers.TypeApp, "Could not persist migrated roster for %s: %s", installationID, err)
		} else {
			s.logger.Infof(providers.TypeApp, "Migrated roster for %s from %q to %q",
				installationID, rec.OriginalVersion, rec.TargetVersion)
		}
	}

	return rec.Roster, nil
}

// Replace validates and stores a whole replacement roster, then invalidates
// the rendered-view cache. Nothing is written when validation fails.
func (s *Service) Replace(installationID string, raw []byte) (*models.Roster, error) {
	validated, err := ValidateJSON(raw)
	if err != nil {
		return nil, err
	}
	if err := ValidateLimits(validated); err != nil {
		return nil, err
	}

	data, err := json.Marshal(validated)
	if err != nil {
		return nil, fmt.Errorf("roster serialize: %w", err)
	}
	if err := s.storage.Put(providers.RosterKey(installationID), data, 0); err != nil {
		return nil, fmt.Errorf("roster write for %s: %w", installationID, err)
	}

	s.coordinator.Invalidate(installationID)
	s.logger.Infof(providers.TypeApp, "Roster for %s replaced: %d entries", installationID, len(validated.Entries))
	return validated, nil
}

func (s *Service) persistBack(key string, r *models.Roster) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.storage.Put(key, data, 0)
}
