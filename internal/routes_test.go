package internal

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbd/internal/controllers"
	"bbd/internal/models"
	"bbd/internal/structures"
	"bbd/internal/testutil"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	views := &testutil.MockViewService{RenderDoc: &models.ViewDocument{Kind: models.KindList}}
	rosters := &testutil.MockRosterService{}

	api := controllers.NewApiController(&testutil.MockLogger{}, views)
	admin := controllers.NewAdminController(&testutil.MockLogger{}, rosters)
	router := InitRoutes(api, admin, &structures.Config{})

	mux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		mux.Handle(route.Url, route.Handler)
	}
	return mux
}

func TestRoutes_CommandIsPostOnly(t *testing.T) {
	mux := testMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/command", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/command", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutes_RosterCarriesGetAndPut(t *testing.T) {
	mux := testMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roster", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	body := `{"entries":[]}`
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/roster", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/roster", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutes_UnknownPathIs404(t *testing.T) {
	mux := testMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
