package guideproviders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gridline-tv/gridline/internal/models"
)

func TestDirectoryFetchTruncates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entries := make([]DirectoryEntry, 150)
		for i := range entries {
			entries[i] = DirectoryEntry{ID: fmt.Sprintf("ch%d", i), Name: fmt.Sprintf("Channel %d", i), Country: "US"}
		}
		json.NewEncoder(w).Encode(entries)
	}))
	defer server.Close()

	cfg := Configuration{Provider: "directory", DirectoryURL: server.URL}
	provider, providerErr := cfg.GetProvider()
	if providerErr != nil {
		t.Fatal(providerErr)
	}
	defer provider.Close()

	entries, fetchErr := provider.FetchRawSchedule(context.Background(), models.Channel{ID: 1}, time.Now())
	if fetchErr != nil {
		t.Fatal(fetchErr)
	}
	if len(entries) != directoryEntryLimit {
		t.Errorf("expected directory truncated to %d entries, got %d", directoryEntryLimit, len(entries))
	}
}

func TestDirectoryNormalizeAlwaysRejects(t *testing.T) {
	cfg := Configuration{Provider: "directory", DirectoryURL: "http://example.invalid/channels.json"}
	provider, providerErr := cfg.GetProvider()
	if providerErr != nil {
		t.Fatal(providerErr)
	}

	entry := &DirectoryEntry{ID: "espn.us", Name: "ESPN"}
	if _, normErr := provider.Normalize(entry, 6); !errors.Is(normErr, ErrMalformedEntry) {
		t.Error("directory entries carry no schedule and must be rejected")
	}
}

func TestGetProviderDispatch(t *testing.T) {
	cases := []struct {
		provider string
		url      Configuration
		expected string
	}{
		{"directory", Configuration{Provider: "directory", DirectoryURL: "http://x"}, "Directory"},
		{"scheduleapi", Configuration{Provider: "scheduleapi", ScheduleAPIURL: "http://x"}, "ScheduleAPI"},
		{"xmlguide", Configuration{Provider: "xmlguide", XMLGuideURL: "http://x"}, "XMLGuide"},
		{"anything-else", Configuration{Provider: "anything-else", XMLGuideURL: "http://x"}, "XMLGuide"},
	}

	for _, c := range cases {
		provider, providerErr := c.url.GetProvider()
		if providerErr != nil {
			t.Fatalf("GetProvider(%s): %s", c.provider, providerErr)
		}
		if provider.Name() != c.expected {
			t.Errorf("GetProvider(%s) = %s, expected %s", c.provider, provider.Name(), c.expected)
		}
	}
}
