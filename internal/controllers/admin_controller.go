package controllers

import (
	"errors"
	"io"
	"net/http"

	"bbd/internal/providers"
	"bbd/internal/roster"
)

// AdminController is the administrative roster surface: read the current
// roster, or replace it wholesale. Validation failures come back field-tagged
// so the editing form can point at the exact violation.
type AdminController struct {
	logger  providers.Logger
	rosters roster.ServiceInterface
}

func NewAdminController(logger providers.Logger, rosters roster.ServiceInterface) *AdminController {
	return &AdminController{
		logger:  logger,
		rosters: rosters,
	}
}

func installationParam(r *http.Request) string {
	if id := r.URL.Query().Get("installation"); id != "" {
		return id
	}
	return DefaultInstallation
}

func (ad *AdminController) GetRoster(w http.ResponseWriter, r *http.Request) {
	id := installationParam(r)
	ros, err := ad.rosters.Load(id)
	if err != nil {
		ad.logger.Errorf(providers.TypeAdmin, "Roster read for %s failed: %s", id, err)
		if errors.Is(err, roster.ErrDataUnreadable) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "stored roster is unreadable"})
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ros)
}

func (ad *AdminController) PutRoster(w http.ResponseWriter, r *http.Request) {
	id := installationParam(r)
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ros, err := ad.rosters.Replace(id, raw)
	if err != nil {
		var verr *roster.ValidationError
		if errors.As(err, &verr) {
			ad.logger.Infof(providers.TypeAdmin, "Rejected roster for %s: %s", id, verr)
			writeJSON(w, http.StatusUnprocessableEntity, verr)
			return
		}
		ad.logger.Errorf(providers.TypeAdmin, "Roster write for %s failed: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"entries": len(ros.Entries),
	})
}
