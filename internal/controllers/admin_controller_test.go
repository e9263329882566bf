package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbd/internal/models"
	"bbd/internal/roster"
	"bbd/internal/testutil"
)

func TestGetRoster_ReturnsStoredRoster(t *testing.T) {
	rosters := &testutil.MockRosterService{Roster: &models.Roster{Entries: []models.Entry{
		{Name: "Ann", Month: 1, Day: 20},
	}}}
	ad := NewAdminController(&testutil.MockLogger{}, rosters)

	rec := httptest.NewRecorder()
	ad.GetRoster(rec, httptest.NewRequest(http.MethodGet, "/roster", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got models.Roster
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "Ann", got.Entries[0].Name)
}

func TestGetRoster_UnreadableDataIsConflict(t *testing.T) {
	rosters := &testutil.MockRosterService{LoadErr: roster.ErrDataUnreadable}
	ad := NewAdminController(&testutil.MockLogger{}, rosters)

	rec := httptest.NewRecorder()
	ad.GetRoster(rec, httptest.NewRequest(http.MethodGet, "/roster", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "unreadable")
}

func TestGetRoster_OtherErrorIs500(t *testing.T) {
	rosters := &testutil.MockRosterService{LoadErr: assert.AnError}
	ad := NewAdminController(&testutil.MockLogger{}, rosters)

	rec := httptest.NewRecorder()
	ad.GetRoster(rec, httptest.NewRequest(http.MethodGet, "/roster", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPutRoster_AcceptsValidPayload(t *testing.T) {
	rosters := &testutil.MockRosterService{Roster: &models.Roster{Entries: make([]models.Entry, 2)}}
	ad := NewAdminController(&testutil.MockLogger{}, rosters)

	rec := httptest.NewRecorder()
	body := `{"entries":[{"name":"Ann","month":1,"day":20},{"name":"Bob","month":2,"day":2}]}`
	ad.PutRoster(rec, httptest.NewRequest(http.MethodPut, "/roster?installation=t1", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.EqualValues(t, 2, resp["entries"])
	require.Len(t, rosters.Replaced, 1)
	assert.JSONEq(t, body, string(rosters.Replaced[0]))
}

func TestPutRoster_ValidationFailureIs422WithField(t *testing.T) {
	rosters := &testutil.MockRosterService{ReplaceErr: &roster.ValidationError{
		Field:   "entries[0].month",
		Message: "month must be between 1 and 12",
	}}
	ad := NewAdminController(&testutil.MockLogger{}, rosters)

	rec := httptest.NewRecorder()
	ad.PutRoster(rec, httptest.NewRequest(http.MethodPut, "/roster", strings.NewReader(`{"entries":[]}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "entries[0].month", resp["field"])
	assert.Contains(t, resp["message"], "month")
}

func TestPutRoster_NonValidationErrorIs500(t *testing.T) {
	rosters := &testutil.MockRosterService{ReplaceErr: assert.AnError}
	ad := NewAdminController(&testutil.MockLogger{}, rosters)

	rec := httptest.NewRecorder()
	ad.PutRoster(rec, httptest.NewRequest(http.MethodPut, "/roster", strings.NewReader(`{"entries":[]}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInstallationParam(t *testing.T) {
	assert.Equal(t, "t9", installationParam(httptest.NewRequest(http.MethodGet, "/roster?installation=t9", nil)))
	assert.Equal(t, DefaultInstallation, installationParam(httptest.NewRequest(http.MethodGet, "/roster", nil)))
}
