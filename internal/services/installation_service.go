package services

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	"bbd/internal/models"
	"bbd/internal/providers"
)

type InstallationStoreInterface interface {
	List() ([]models.Installation, error)
	Get(id string) (*models.Installation, bool, error)
	Put(inst models.Installation) error
}

// InstallationStore keeps every tenant's credential record in one JSON map
// under a fixed storage key. The roster of installations is small; a full
// read-modify-write per update is fine.
type InstallationStore struct {
	storage providers.StorageProviderInterface
	logger  providers.Logger
}

func NewInstallationStore(storage providers.StorageProviderInterface, logger providers.Logger) InstallationStoreInterface {
	return &InstallationStore{storage: storage, logger: logger}
}

func (is *InstallationStore) load() (map[string]models.Installation, error) {
	raw, ok, err := is.storage.Get(providers.InstallationsKey)
	if err != nil {
		return nil, fmt.Errorf("installations read: %w", err)
	}
	installs := make(map[string]models.Installation)
	if !ok {
		return installs, nil
	}
	if err := json.Unmarshal(raw, &installs); err != nil {
		return nil, fmt.Errorf("installations decode: %w", err)
	}
	return installs, nil
}

func (is *InstallationStore) List() ([]models.Installation, error) {
	installs, err := is.load()
	if err != nil {
		return nil, err
	}
	out := make([]models.Installation, 0, len(installs))
	for _, inst := range installs {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (is *InstallationStore) Get(id string) (*models.Installation, bool, error) {
	installs, err := is.load()
	if err != nil {
		return nil, false, err
	}
	inst, ok := installs[id]
	if !ok {
		return nil, false, nil
	}
	return &inst, true, nil
}

func (is *InstallationStore) Put(inst models.Installation) error {
	installs, err := is.load()
	if err != nil {
		return err
	}
	installs[inst.ID] = inst
	raw, err := json.Marshal(installs)
	if err != nil {
		return err
	}
	return is.storage.Put(providers.InstallationsKey, raw, 0)
}
