// Package guideproviders is a gridline internal package to acquire electronic
// program guide (EPG) data from external sources. Each provider knows how to
// query one upstream service and how to normalize that service's raw entries
// into the common Program record.
package guideproviders

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridline-tv/gridline/internal/models"
)

var log = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &logrus.TextFormatter{
		FullTimestamp: true,
	},
	Hooks: make(logrus.LevelHooks),
	Level: logrus.InfoLevel,
}

// Configuration is the basic configuration struct for guideproviders with
// generic values for specific providers.
type Configuration struct {
	Name     string `json:"-"`
	Provider string

	// Only used for the Directory provider
	DirectoryURL string

	// Only used for the XMLGuide provider
	XMLGuideURL string

	// Only used for the ScheduleAPI provider
	ScheduleAPIURL string
	APIKey         string
	Country        string
}

// GetProvider returns an initialized GuideProvider for the Configuration.
func (i *Configuration) GetProvider() (GuideProvider, error) {
	switch strings.ToLower(i.Provider) {
	case "directory", "iptv-directory":
		return newDirectory(i)
	case "scheduleapi", "schedule-api", "tvmaze":
		return newScheduleAPI(i)
	default:
		return newXMLGuide(i)
	}
}

// RawEntry is a single unparsed schedule entry handed back by a provider. The
// concrete type is provider specific; a provider only understands entries it
// produced itself.
type RawEntry interface{}

// GuideProvider describes an EPG source configuration.
//
// FetchRawSchedule degrades on provider failure: a non-200 response or a
// transport error yields ErrSourceUnavailable, never a fatal error. Normalize
// rejects individual entries with ErrMalformedEntry; the caller skips them and
// keeps going.
type GuideProvider interface {
	Name() string
	FetchRawSchedule(ctx context.Context, channel models.Channel, date time.Time) ([]RawEntry, error)
	Normalize(raw RawEntry, channelID int) (models.Program, error)

	Configuration() Configuration
	Close()
}
