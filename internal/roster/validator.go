package roster

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"bbd/internal/models"
)

const maxNameLength = 100

// mentionIDPattern: letter prefix followed by at least eight alphanumerics,
// the shape of a platform mention ID.
var mentionIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{8,}$`)

// ValidationError is a user-data defect tagged with the violated field.
// It is surfaced verbatim to the administrative caller.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldErr(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Days per month under a fixed non-leap calendar, except February which
// always admits 29: a leap-day entry is stored independent of any year.
var daysPerMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidateJSON parses and validates a raw roster payload.
func ValidateJSON(raw []byte) (*models.Roster, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fieldErr("roster", "payload is not valid JSON")
	}
	return Validate(v)
}

// Validate checks a decoded payload against the roster schema and returns the
// normalized roster. It fails on the first violation, tagging the entry index.
func Validate(v interface{}) (*models.Roster, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fieldErr("roster", "payload must be an object")
	}
	rawEntries, ok := obj["entries"].([]interface{})
	if !ok {
		return nil, fieldErr("entries", "must be an array")
	}

	entries := make([]models.Entry, 0, len(rawEntries))
	for i, re := range rawEntries {
		entry, err := validateEntry(i, re)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	// Cross-entry pass: duplicate names, case-insensitive.
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		lower := strings.ToLower(e.Name)
		if first, dup := seen[lower]; dup {
			return nil, fieldErr(fmt.Sprintf("entries[%d].name", i),
				"duplicate name %q (conflicts with entry %d)", e.Name, first)
		}
		seen[lower] = i
	}

	return &models.Roster{Entries: entries}, nil
}

func validateEntry(i int, v interface{}) (models.Entry, error) {
	var entry models.Entry
	field := func(name string) string { return fmt.Sprintf("entries[%d].%s", i, name) }

	obj, ok := v.(map[string]interface{})
	if !ok {
		return entry, fieldErr(fmt.Sprintf("entries[%d]", i), "must be an object")
	}

	rawName, ok := obj["name"].(string)
	if !ok {
		return entry, fieldErr(field("name"), "is required and must be a string")
	}
	name := collapseWhitespace(rawName)
	if name == "" {
		return entry, fieldErr(field("name"), "must not be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return entry, fieldErr(field("name"), "must be at most %d characters", maxNameLength)
	}
	entry.Name = name

	month, err := intField(obj, field("month"), "month", 1, 12)
	if err != nil {
		return entry, err
	}
	entry.Month = month

	day, err := intField(obj, field("day"), "day", 1, 31)
	if err != nil {
		return entry, err
	}
	if day > daysPerMonth[month] {
		return entry, fieldErr(field("day"), "%s has at most %d days", DisplayMonth(month), daysPerMonth[month])
	}
	entry.Day = day

	if rawID, present := obj["externalId"]; present && rawID != nil {
		id, ok := rawID.(string)
		if !ok {
			return entry, fieldErr(field("externalId"), "must be a string")
		}
		id = strings.TrimSpace(id)
		if id != "" {
			if !mentionIDPattern.MatchString(id) {
				return entry, fieldErr(field("externalId"), "must be a letter followed by 8+ alphanumerics")
			}
			entry.ExternalID = id
		}
	}

	return entry, nil
}

// intField extracts a numeric field, flooring fractional values rather than
// rejecting them. Non-numeric values are rejected.
func intField(obj map[string]interface{}, field, key string, min, max int) (int, error) {
	raw, present := obj[key]
	if !present {
		return 0, fieldErr(field, "is required")
	}
	num, ok := raw.(float64)
	if !ok {
		return 0, fieldErr(field, "must be a number")
	}
	n := int(math.Floor(num))
	if n < min || n > max {
		return 0, fieldErr(field, "must be between %d and %d", min, max)
	}
	return n, nil
}

// ValidateLimits enforces the roster size bound. Invoked only at the
// storage-write boundary, never on the read/migration path.
func ValidateLimits(r *models.Roster) error {
	if len(r.Entries) > models.MaxEntries {
		return fieldErr("entries", "roster holds %d entries, limit is %d", len(r.Entries), models.MaxEntries)
	}
	return nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DisplayMonth names a month for error messages.
func DisplayMonth(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("month %d", month)
	}
	return time.Month(month).String()
}
