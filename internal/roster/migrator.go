package roster

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"bbd/internal/models"
)

// legacyListKeys are the container keys older deployments stored entries
// under, in lookup order.
var legacyListKeys = []string{"members", "birthdays"}

// Migrate detects the schema version of a stored payload and upgrades it to
// the current shape. Individual broken legacy entries are skipped with a
// warning; only a payload yielding zero entries is a hard failure. The result
// is always re-run through the validator before it counts as a success.
func Migrate(raw []byte) *models.MigrationRecord {
	rec := &models.MigrationRecord{TargetVersion: models.VersionCurrent}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		rec.Errors = append(rec.Errors, "stored payload is not valid JSON")
		return rec
	}

	switch detectVersion(v) {
	case models.VersionCurrent:
		rec.OriginalVersion = models.VersionCurrent
		roster, err := Validate(v)
		if err != nil {
			rec.Errors = append(rec.Errors, err.Error())
			return rec
		}
		rec.Roster = roster
		rec.Success = true
		return rec

	case models.VersionLegacy:
		rec.OriginalVersion = models.VersionLegacy

	default:
		// Shape not recognized. Attempt a legacy migration anyway so a
		// half-corrupted record can still degrade entry by entry, but say so.
		rec.Warnings = append(rec.Warnings, "unrecognized payload shape, attempting legacy migration")
	}

	roster := migrateLegacy(v, rec)
	if len(roster.Entries) == 0 {
		rec.Errors = append(rec.Errors, "no entries could be migrated")
		return rec
	}

	data, err := json.Marshal(roster)
	if err != nil {
		rec.Errors = append(rec.Errors, "migrated roster could not be serialized: "+err.Error())
		return rec
	}
	validated, err := ValidateJSON(data)
	if err != nil {
		rec.Errors = append(rec.Errors, "migrated roster failed validation: "+err.Error())
		return rec
	}

	rec.Roster = validated
	rec.Success = true
	return rec
}

// detectVersion sniffs the payload shape. There is no version tag: current is
// recognized by entries carrying numeric month/day, legacy by a members or
// birthdays list carrying a date string.
func detectVersion(v interface{}) string {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}

	if entries, ok := obj["entries"].([]interface{}); ok {
		if len(entries) == 0 {
			return models.VersionCurrent
		}
		if e, ok := entries[0].(map[string]interface{}); ok {
			_, hasMonth := e["month"].(float64)
			_, hasDay := e["day"].(float64)
			if hasMonth && hasDay {
				return models.VersionCurrent
			}
		}
	}

	for _, key := range legacyListKeys {
		if list, ok := obj[key].([]interface{}); ok {
			if len(list) == 0 {
				return models.VersionLegacy
			}
			if e, ok := list[0].(map[string]interface{}); ok {
				if _, hasDate := e["date"].(string); hasDate {
					return models.VersionLegacy
				}
			}
		}
	}

	return ""
}

// migrateLegacy converts whatever legacy-shaped list it can find, skipping
// entries that fail to parse instead of aborting the whole migration.
func migrateLegacy(v interface{}, rec *models.MigrationRecord) *models.Roster {
	roster := &models.Roster{Entries: []models.Entry{}}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return roster
	}

	var list []interface{}
	for _, key := range legacyListKeys {
		if l, ok := obj[key].([]interface{}); ok {
			list = l
			break
		}
	}

	for i, item := range list {
		e, ok := item.(map[string]interface{})
		if !ok {
			rec.Warnings = append(rec.Warnings, fmt.Sprintf("entry %d skipped: not an object", i))
			continue
		}
		name, ok := e["name"].(string)
		if !ok || strings.TrimSpace(name) == "" {
			rec.Warnings = append(rec.Warnings, fmt.Sprintf("entry %d skipped: missing name", i))
			continue
		}
		date, ok := e["date"].(string)
		if !ok {
			rec.Warnings = append(rec.Warnings, fmt.Sprintf("entry %d (%s) skipped: missing date", i, name))
			continue
		}
		month, day, err := parseLegacyDate(date)
		if err != nil {
			rec.Warnings = append(rec.Warnings, fmt.Sprintf("entry %d (%s) skipped: %s", i, name, err))
			continue
		}
		roster.Entries = append(roster.Entries, models.Entry{Name: name, Month: month, Day: day})
	}
	return roster
}

// parseLegacyDate splits "MM/DD" or "MM-DD" into its numeric parts.
func parseLegacyDate(date string) (int, int, error) {
	sep := "/"
	if !strings.Contains(date, sep) {
		sep = "-"
	}
	parts := strings.Split(date, sep)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("date %q is not MM/DD or MM-DD", date)
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("date %q has a non-numeric month", date)
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("date %q has a non-numeric day", date)
	}
	return month, day, nil
}
