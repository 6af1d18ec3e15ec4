package models

// Channel is a single entry in the static lineup. Programs is attached
// per-request by the guide orchestrator and is always sorted ascending by
// start time.
type Channel struct {
	ID           int       `json:"id"`
	Number       string    `json:"number"`
	Name         string    `json:"name"`
	Logo         string    `json:"logo"`
	LogoURL      *string   `json:"logoUrl,omitempty"`
	EPGChannelID *int      `json:"epgChannelId,omitempty"`
	Category     string    `json:"category"`
	Programs     []Program `json:"programs"`
}
