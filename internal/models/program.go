package models

import "time"

// Program is a single scheduled broadcast on a channel. Programs are built
// fresh on every guide request and never persisted; their IDs are only unique
// within a single response.
type Program struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Episode     *string   `json:"episode,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Rating      *string   `json:"rating,omitempty"`
	ChannelID   int       `json:"channelId"`
	Genre       *string   `json:"genre,omitempty"`
}

// Duration returns the length of the program.
func (p *Program) Duration() time.Duration {
	return p.EndTime.Sub(p.StartTime)
}
