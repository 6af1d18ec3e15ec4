package guideproviders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gridline-tv/gridline/internal/models"
	"github.com/gridline-tv/gridline/internal/utils"
)

// scheduleEntryLimit caps how many entries are taken from one schedule feed.
const scheduleEntryLimit = 50

// defaultRuntimeMinutes is assumed when neither the entry nor its show carry a
// runtime.
const defaultRuntimeMinutes = 60

// ScheduleAPI is a GuideProvider backed by a date+country schedule feed where
// each entry carries a nested show object and an ISO-8601 airstamp.
type ScheduleAPI struct {
	BaseConfig Configuration

	client *http.Client
}

// ScheduleEntry is a raw airing from the schedule feed.
type ScheduleEntry struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Season   int            `json:"season"`
	Number   int            `json:"number"`
	Airstamp string         `json:"airstamp"`
	Runtime  *int           `json:"runtime"`
	Summary  string         `json:"summary"`
	Image    *ScheduleImage `json:"image"`
	Show     *ScheduleShow  `json:"show"`
}

// ScheduleShow is the nested show object on a ScheduleEntry.
type ScheduleShow struct {
	Name    string           `json:"name"`
	Genres  []string         `json:"genres"`
	Runtime *int             `json:"runtime"`
	Summary string           `json:"summary"`
	Image   *ScheduleImage   `json:"image"`
	Network *ScheduleNetwork `json:"network"`
}

// ScheduleNetwork is the network a show airs on.
type ScheduleNetwork struct {
	Name string `json:"name"`
}

// ScheduleImage holds the image URLs attached to an entry or show.
type ScheduleImage struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

func newScheduleAPI(config *Configuration) (GuideProvider, error) {
	if config.ScheduleAPIURL == "" {
		return nil, fmt.Errorf("error initializing schedule API provider: no schedule URL configured")
	}
	return &ScheduleAPI{BaseConfig: *config}, nil
}

// Name returns the name of the GuideProvider.
func (s *ScheduleAPI) Name() string {
	return "ScheduleAPI"
}

func (s *ScheduleAPI) session() *http.Client {
	if s.client == nil {
		s.client = newHTTPClient()
	}
	return s.client
}

// FetchRawSchedule requests the full schedule for the given date. The feed is
// not per-channel; entries are attributed to channels during normalization via
// the network mapping.
func (s *ScheduleAPI) FetchRawSchedule(ctx context.Context, channel models.Channel, date time.Time) ([]RawEntry, error) {
	scheduleURL, urlErr := url.Parse(s.BaseConfig.ScheduleAPIURL)
	if urlErr != nil {
		return nil, fmt.Errorf("error parsing schedule API URL %s: %s", s.BaseConfig.ScheduleAPIURL, urlErr)
	}

	country := s.BaseConfig.Country
	if country == "" {
		country = "US"
	}

	query := scheduleURL.Query()
	query.Set("date", date.Format("2006-01-02"))
	query.Set("country", country)
	if s.BaseConfig.APIKey != "" {
		query.Set("apikey", s.BaseConfig.APIKey)
	}
	scheduleURL.RawQuery = query.Encode()

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, scheduleURL.String(), nil)
	if reqErr != nil {
		return nil, fmt.Errorf("error building schedule API request: %s", reqErr)
	}
	req.Header.Set("User-Agent", "gridline/1.0")

	resp, respErr := s.session().Do(req)
	if respErr != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "error fetching schedule for %s: %s", date.Format("2006-01-02"), respErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrSourceUnavailable, "schedule API returned status %d", resp.StatusCode)
	}

	rawEntries := make([]ScheduleEntry, 0)
	if decodeErr := json.NewDecoder(resp.Body).Decode(&rawEntries); decodeErr != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "error decoding schedule feed: %s", decodeErr)
	}

	if len(rawEntries) > scheduleEntryLimit {
		rawEntries = rawEntries[:scheduleEntryLimit]
	}

	entries := make([]RawEntry, 0, len(rawEntries))
	for idx := range rawEntries {
		entries = append(entries, &rawEntries[idx])
	}

	log.Debugf("fetched %d schedule API entries for %s", len(entries), date.Format("2006-01-02"))

	return entries, nil
}

// networkChannelTable maps network names to channel ids in the static lineup.
// Matching is case-insensitive substring; more specific names come first so
// "Fox News" never lands on the FOX broadcast channel.
var networkChannelTable = []struct {
	Substring string
	ChannelID int
}{
	{"fox news", 11},
	{"fox sports", 21},
	{"fs1", 21},
	{"nfl", 22},
	{"espn2", 13},
	{"espn", 6},
	{"msnbc", 12},
	{"cnn", 7},
	{"disney junior", 23},
	{"disney", 14},
	{"nick", 15},
	{"cartoon", 16},
	{"national geographic", 19},
	{"nat geo", 19},
	{"discovery", 17},
	{"history", 18},
	{"food", 20},
	{"hgtv", 29},
	{"bravo", 30},
	{"showtime", 27},
	{"starz", 28},
	{"hbo", 26},
	{"amc", 25},
	{"tnt", 8},
	{"tbs", 9},
	{"usa", 10},
	{"fx", 24},
	{"pbs", 5},
	{"nbc", 2},
	{"abc", 3},
	{"cbs", 4},
	{"fox", 1},
}

// mapNetworkToChannel resolves a network name to a channel id. Unmapped
// networks are deterministically bucketed into one of the lineup's channel
// slots with a pinned stable hash.
func mapNetworkToChannel(networkName string) int {
	lowered := strings.ToLower(networkName)
	for _, mapping := range networkChannelTable {
		if strings.Contains(lowered, mapping.Substring) {
			return mapping.ChannelID
		}
	}
	return utils.StableBucket(networkName, models.DirectorySize())
}

// Normalize converts a single schedule entry into a Program. The program's
// channel id comes from the entry's network, not from the requested channel;
// callers filter on it.
func (s *ScheduleAPI) Normalize(raw RawEntry, channelID int) (models.Program, error) {
	entry, ok := raw.(*ScheduleEntry)
	if !ok {
		return models.Program{}, errors.Wrap(ErrMalformedEntry, "entry is not a schedule API airing")
	}

	if entry.Airstamp == "" {
		return models.Program{}, errors.Wrap(ErrMalformedEntry, "airing missing airstamp")
	}

	startUTC, startErr := time.Parse(time.RFC3339, entry.Airstamp)
	if startErr != nil {
		return models.Program{}, errors.Wrapf(ErrMalformedEntry, "error parsing airstamp %q: %s", entry.Airstamp, startErr)
	}
	startUTC = startUTC.UTC()

	runtime := defaultRuntimeMinutes
	if entry.Runtime != nil {
		runtime = *entry.Runtime
	} else if entry.Show != nil && entry.Show.Runtime != nil {
		runtime = *entry.Show.Runtime
	}
	if runtime <= 0 {
		runtime = defaultRuntimeMinutes
	}

	title := entry.Name
	summary := entry.Summary
	var genre *string
	mappedChannelID := mapNetworkToChannel("")

	if entry.Show != nil {
		if entry.Show.Name != "" {
			title = entry.Show.Name
		}
		if summary == "" {
			summary = entry.Show.Summary
		}
		if len(entry.Show.Genres) > 0 {
			genre = &entry.Show.Genres[0]
		}
		if entry.Show.Network != nil {
			mappedChannelID = mapNetworkToChannel(entry.Show.Network.Name)
		}
	}

	if title == "" {
		return models.Program{}, errors.Wrap(ErrMalformedEntry, "airing carries no title")
	}

	var episode *string
	if entry.Season > 0 && entry.Number > 0 {
		label := fmt.Sprintf("S%02dE%02d", entry.Season, entry.Number)
		episode = &label
	}

	var image *string
	if entry.Image != nil && entry.Image.Medium != "" {
		image = &entry.Image.Medium
	} else if entry.Show != nil && entry.Show.Image != nil && entry.Show.Image.Medium != "" {
		image = &entry.Show.Image.Medium
	}

	eastern := utils.DisplayTimezone()
	start := startUTC.In(eastern)
	end := startUTC.Add(time.Duration(runtime) * time.Minute).In(eastern)

	description := utils.StripTags(summary)
	var descriptionPtr *string
	if description != "" {
		descriptionPtr = &description
	}

	return models.Program{
		ID:          fmt.Sprintf("schedule_%d_%d", mappedChannelID, entry.ID),
		Title:       title,
		Episode:     episode,
		StartTime:   start,
		EndTime:     end,
		Description: descriptionPtr,
		Image:       image,
		ChannelID:   mappedChannelID,
		Genre:       genre,
	}, nil
}

// Configuration returns the base configuration backing the provider.
func (s *ScheduleAPI) Configuration() Configuration {
	return s.BaseConfig
}

// Close releases the provider's connections.
func (s *ScheduleAPI) Close() {
	if s.client != nil {
		s.client.CloseIdleConnections()
	}
}
