package controllers

import (
	"fmt"
	"net/http"
	"time"

	"bbd/internal/providers"
	"bbd/internal/services"
)

type HealthController struct {
	logger    providers.Logger
	installs  services.InstallationStoreInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Installations int     `json:"installations"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	installs, err := hc.installs.List()
	if err != nil {
		hc.logger.Warnf(providers.TypeApp, "Health check could not list installations: %s", err)
	}

	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Installations: len(installs),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(logger providers.Logger, installs services.InstallationStoreInterface) *HealthController {
	return &HealthController{
		logger:    logger,
		installs:  installs,
		startTime: time.Now(),
	}
}
