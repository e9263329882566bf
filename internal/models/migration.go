package models

// Schema versions recognized by the migrator. Detection is structural, there
// is no version tag in the stored payload.
const (
	VersionCurrent = "current"
	VersionLegacy  = "legacy"
)

// MigrationRecord is the ephemeral result of upgrading a stored payload.
type MigrationRecord struct {
	OriginalVersion string   `json:"originalVersion"` // empty when the shape was not recognized
	TargetVersion   string   `json:"targetVersion"`
	Roster          *Roster  `json:"roster"`
	Warnings        []string `json:"warnings"`
	Errors          []string `json:"errors"`
	Success         bool     `json:"success"`
}
