package guideproviders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gridline-tv/gridline/internal/models"
	"github.com/gridline-tv/gridline/internal/utils"
	"github.com/gridline-tv/gridline/internal/xmltv"
)

// XMLGuide is a GuideProvider backed by a per-channel, per-date XML guide
// endpoint serving XMLTV programme elements.
type XMLGuide struct {
	BaseConfig Configuration

	client *http.Client
}

func newXMLGuide(config *Configuration) (GuideProvider, error) {
	if config.XMLGuideURL == "" {
		return nil, fmt.Errorf("error initializing XML guide provider: no guide URL configured")
	}
	return &XMLGuide{BaseConfig: *config}, nil
}

// Name returns the name of the GuideProvider.
func (x *XMLGuide) Name() string {
	return "XMLGuide"
}

func (x *XMLGuide) session() *http.Client {
	if x.client == nil {
		x.client = newHTTPClient()
	}
	return x.client
}

// FetchRawSchedule requests the XML schedule for the given channel and date.
// Network failures and non-200 responses degrade to ErrSourceUnavailable.
func (x *XMLGuide) FetchRawSchedule(ctx context.Context, channel models.Channel, date time.Time) ([]RawEntry, error) {
	if channel.EPGChannelID == nil {
		return nil, errors.Wrapf(ErrNoUsableData, "channel %s has no guide provider id", channel.Name)
	}

	guideURL, urlErr := url.Parse(x.BaseConfig.XMLGuideURL)
	if urlErr != nil {
		return nil, fmt.Errorf("error parsing XML guide URL %s: %s", x.BaseConfig.XMLGuideURL, urlErr)
	}

	query := guideURL.Query()
	query.Set("lang", "en")
	query.Set("date", date.Format("20060102"))
	query.Set("channel_id", strconv.Itoa(*channel.EPGChannelID))
	guideURL.RawQuery = query.Encode()

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, guideURL.String(), nil)
	if reqErr != nil {
		return nil, fmt.Errorf("error building XML guide request: %s", reqErr)
	}
	req.Header.Set("User-Agent", "gridline/1.0")

	resp, respErr := x.session().Do(req)
	if respErr != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "error fetching XML guide for channel %d: %s", *channel.EPGChannelID, respErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrSourceUnavailable, "XML guide returned status %d for channel %d", resp.StatusCode, *channel.EPGChannelID)
	}

	tv, decodeErr := xmltv.Decode(resp.Body)
	if decodeErr != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "error decoding XML guide for channel %d: %s", *channel.EPGChannelID, decodeErr)
	}

	entries := make([]RawEntry, 0, len(tv.Programmes))
	for idx := range tv.Programmes {
		entries = append(entries, &tv.Programmes[idx])
	}

	log.Debugf("fetched %d XML guide entries for %s", len(entries), channel.Name)

	return entries, nil
}

// Normalize converts a single XMLTV programme into a Program. Entries with
// missing or unparsable start/stop attributes are rejected with
// ErrMalformedEntry.
func (x *XMLGuide) Normalize(raw RawEntry, channelID int) (models.Program, error) {
	programme, ok := raw.(*xmltv.Programme)
	if !ok {
		return models.Program{}, errors.Wrap(ErrMalformedEntry, "entry is not an XMLTV programme")
	}

	if programme.Start == "" || programme.Stop == "" {
		return models.Program{}, errors.Wrap(ErrMalformedEntry, "programme missing start or stop attribute")
	}

	startUTC, startErr := parseGuideTimestamp(programme.Start)
	if startErr != nil {
		return models.Program{}, errors.Wrapf(ErrMalformedEntry, "error parsing programme start %q: %s", programme.Start, startErr)
	}
	stopUTC, stopErr := parseGuideTimestamp(programme.Stop)
	if stopErr != nil {
		return models.Program{}, errors.Wrapf(ErrMalformedEntry, "error parsing programme stop %q: %s", programme.Stop, stopErr)
	}

	title := programme.Title()
	if title == "" {
		title = "Unknown Program"
	}
	title = strings.TrimPrefix(title, "Live: ")

	description := programme.Description()
	if description == "" {
		description = "No description available"
	}

	genre := "General"
	if strings.Contains(strings.ToLower(title), "news") {
		genre = "News"
	}

	eastern := utils.DisplayTimezone()

	return models.Program{
		ID:          fmt.Sprintf("xmlguide_%d_%s", channelID, programme.Start),
		Title:       title,
		StartTime:   startUTC.In(eastern),
		EndTime:     stopUTC.In(eastern),
		Description: &description,
		ChannelID:   channelID,
		Genre:       &genre,
	}, nil
}

// parseGuideTimestamp parses the XMLTV "20060102150405 +0000" attribute format
// by fixed-width slicing. Only the datetime part before the space is read; the
// instant is constructed in UTC.
func parseGuideTimestamp(value string) (time.Time, error) {
	datetimePart := value
	if idx := strings.IndexByte(value, ' '); idx != -1 {
		datetimePart = value[:idx]
	}

	if len(datetimePart) < 14 {
		return time.Time{}, fmt.Errorf("timestamp %q is shorter than YYYYMMDDHHMMSS", value)
	}

	fields := [6]int{}
	positions := [6][2]int{{0, 4}, {4, 6}, {6, 8}, {8, 10}, {10, 12}, {12, 14}}
	for i, pos := range positions {
		parsed, parseErr := strconv.Atoi(datetimePart[pos[0]:pos[1]])
		if parseErr != nil {
			return time.Time{}, fmt.Errorf("timestamp %q has a non-numeric component: %s", value, parseErr)
		}
		fields[i] = parsed
	}

	return time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], 0, time.UTC), nil
}

// Configuration returns the base configuration backing the provider.
func (x *XMLGuide) Configuration() Configuration {
	return x.BaseConfig
}

// Close releases the provider's connections.
func (x *XMLGuide) Close() {
	if x.client != nil {
		x.client.CloseIdleConnections()
	}
}
