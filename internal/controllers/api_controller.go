package controllers

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"bbd/internal/birthday"
	"bbd/internal/models"
	"bbd/internal/providers"
	"bbd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

// DefaultInstallation is used when a payload carries no tenant id, the
// single-workspace deployment case.
const DefaultInstallation = "default"

// commandPayload is the verified, parsed command the transport hands us.
// Signature checking happened upstream.
type commandPayload struct {
	InstallationID string `json:"installationId"`
	Command        string `json:"command"`
	Expanded       bool   `json:"expanded"`
}

type ApiController struct {
	logger providers.Logger
	views  services.ViewServiceInterface
}

func NewApiController(logger providers.Logger, views services.ViewServiceInterface) *ApiController {
	return &ApiController{
		logger: logger,
		views:  views,
	}
}

// Command answers a chat command with a rendered view document. End users
// never see an internal error: any failure collapses into the fixed
// "data currently unavailable" document with a 200.
func (ac *ApiController) Command(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload commandPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if payload.InstallationID == "" {
		payload.InstallationID = DefaultInstallation
	}

	switch payload.Command {
	case "", "upcoming":
		doc, err := ac.views.Render(payload.InstallationID, payload.Expanded)
		ac.respondView(w, payload.InstallationID, doc, err)
	case "today":
		entries, err := ac.views.Today(payload.InstallationID)
		if err != nil {
			ac.respondView(w, payload.InstallationID, nil, err)
			return
		}
		ac.respondView(w, payload.InstallationID, todayDocument(entries), nil)
	case "stats":
		stats, err := ac.views.Stats(payload.InstallationID)
		if err != nil {
			ac.respondView(w, payload.InstallationID, nil, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	default:
		http.Error(w, "Bad Request", http.StatusBadRequest)
	}
}

func (ac *ApiController) respondView(w http.ResponseWriter, installationID string, doc *models.ViewDocument, err error) {
	if err != nil {
		ac.logger.Errorf(providers.TypeCommand, "Render for %s failed: %s", installationID, err)
		doc = birthday.UnavailableDocument(time.Now())
	}
	writeJSON(w, http.StatusOK, doc)
}

func todayDocument(entries []models.UpcomingEntry) *models.ViewDocument {
	doc := &models.ViewDocument{
		Kind:        models.KindToday,
		Header:      "Birthdays today",
		GeneratedAt: time.Now(),
	}
	for _, e := range entries {
		doc.Today = append(doc.Today, e.Name)
	}
	if len(doc.Today) == 0 {
		doc.Kind = models.KindNoneUpcoming
		doc.Header = "No birthdays today"
	}
	return doc
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}
