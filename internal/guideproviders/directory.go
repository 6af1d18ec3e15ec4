package guideproviders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/gridline-tv/gridline/internal/models"
)

// directoryEntryLimit caps how many channel descriptors are taken from the
// community directory.
const directoryEntryLimit = 100

// Directory is a GuideProvider backed by a community channel directory. The
// directory lists channel descriptors but carries no per-channel schedule, so
// every request ultimately falls through to the synthetic generator; the
// provider exists to keep the lineup metadata flowing from the same strategy
// interface as the real schedule sources.
type Directory struct {
	BaseConfig Configuration

	client *http.Client
}

// DirectoryEntry is a single channel descriptor from the community directory.
type DirectoryEntry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Network    string   `json:"network"`
	Country    string   `json:"country"`
	Categories []string `json:"categories"`
}

func newDirectory(config *Configuration) (GuideProvider, error) {
	if config.DirectoryURL == "" {
		return nil, fmt.Errorf("error initializing directory provider: no directory URL configured")
	}
	return &Directory{BaseConfig: *config}, nil
}

// Name returns the name of the GuideProvider.
func (d *Directory) Name() string {
	return "Directory"
}

func (d *Directory) session() *http.Client {
	if d.client == nil {
		d.client = newHTTPClient()
	}
	return d.client
}

// FetchRawSchedule requests the community channel list. The channel and date
// arguments are ignored; the directory is global and undated.
func (d *Directory) FetchRawSchedule(ctx context.Context, channel models.Channel, date time.Time) ([]RawEntry, error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, d.BaseConfig.DirectoryURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("error building directory request: %s", reqErr)
	}
	req.Header.Set("User-Agent", "gridline/1.0")

	resp, respErr := d.session().Do(req)
	if respErr != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "error fetching channel directory: %s", respErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrSourceUnavailable, "channel directory returned status %d", resp.StatusCode)
	}

	rawEntries := make([]DirectoryEntry, 0)
	if decodeErr := json.NewDecoder(resp.Body).Decode(&rawEntries); decodeErr != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "error decoding channel directory: %s", decodeErr)
	}

	if len(rawEntries) > directoryEntryLimit {
		rawEntries = rawEntries[:directoryEntryLimit]
	}

	entries := make([]RawEntry, 0, len(rawEntries))
	for idx := range rawEntries {
		entries = append(entries, &rawEntries[idx])
	}

	log.Debugf("fetched %d channels from the community directory", len(entries))

	return entries, nil
}

// Normalize always rejects: directory entries describe channels, not airings.
// The guide orchestrator treats the rejection like any other malformed entry
// and serves synthetic data instead.
func (d *Directory) Normalize(raw RawEntry, channelID int) (models.Program, error) {
	return models.Program{}, errors.Wrap(ErrMalformedEntry, "directory entries carry no schedule")
}

// Configuration returns the base configuration backing the provider.
func (d *Directory) Configuration() Configuration {
	return d.BaseConfig
}

// Close releases the provider's connections.
func (d *Directory) Close() {
	if d.client != nil {
		d.client.CloseIdleConnections()
	}
}
