package models

import "time"

// Installation is one tenant's credential record. The credential exchange
// flow itself lives outside this service; records land here fully formed.
type Installation struct {
	ID          string    `json:"id"`
	TeamName    string    `json:"teamName,omitempty"`
	BotToken    string    `json:"botToken,omitempty"`
	ChannelID   string    `json:"channelId,omitempty"`
	InstalledAt time.Time `json:"installedAt"`
}
