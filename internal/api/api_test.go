package api

import (
	gocontext "context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gridline-tv/gridline/internal/context"
	"github.com/gridline-tv/gridline/internal/epg"
	"github.com/gridline-tv/gridline/internal/guideproviders"
	"github.com/gridline-tv/gridline/internal/models"
	"github.com/gridline-tv/gridline/internal/preferences"
)

// downProvider simulates an unreachable guide source, forcing every channel
// onto the synthetic path.
type downProvider struct{}

func (downProvider) Name() string { return "Down" }

func (downProvider) FetchRawSchedule(_ gocontext.Context, _ models.Channel, _ time.Time) ([]guideproviders.RawEntry, error) {
	return nil, guideproviders.ErrSourceUnavailable
}

func (downProvider) Normalize(_ guideproviders.RawEntry, _ int) (models.Program, error) {
	return models.Program{}, guideproviders.ErrMalformedEntry
}

func (downProvider) Configuration() guideproviders.Configuration {
	return guideproviders.Configuration{Name: "Down"}
}

func (downProvider) Close() {}

func newTestContext() *context.CContext {
	prefs := preferences.NewStore()
	return &context.CContext{
		Ctx:      gocontext.Background(),
		Guide:    epg.NewOrchestrator(downProvider{}, prefs, 12, nil),
		Log:      log,
		Prefs:    prefs,
		Provider: downProvider{},
	}
}

func newTestRouter(cc *context.CContext) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	apiGroup := router.Group("/api")
	apiGroup.GET("/channels", wrapContext(cc, getChannels))
	apiGroup.POST("/channels/:channelID/favorite", wrapContext(cc, toggleChannelFavorite))
	apiGroup.POST("/channels/:channelID/recent", wrapContext(cc, markChannelRecent))
	apiGroup.GET("/favorites", wrapContext(cc, getUserFavorites))

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestGetChannels(t *testing.T) {
	router := newTestRouter(newTestContext())

	recorder := doRequest(t, router, http.MethodGet, "/api/channels", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var channels []models.Channel
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &channels); decodeErr != nil {
		t.Fatal(decodeErr)
	}
	if len(channels) != models.DirectorySize() {
		t.Fatalf("expected the full lineup, got %d channels", len(channels))
	}
	for _, channel := range channels {
		if len(channel.Programs) == 0 {
			t.Errorf("channel %s has no programs even though synthetic fallback should apply", channel.Name)
		}
	}
}

func TestGetChannelsByCategory(t *testing.T) {
	router := newTestRouter(newTestContext())

	recorder := doRequest(t, router, http.MethodGet, "/api/channels?category=Sports", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var channels []models.Channel
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &channels); decodeErr != nil {
		t.Fatal(decodeErr)
	}
	if len(channels) != 4 {
		t.Errorf("expected 4 sports channels, got %d", len(channels))
	}
}

func TestToggleFavorite(t *testing.T) {
	cc := newTestContext()
	router := newTestRouter(cc)

	recorder := doRequest(t, router, http.MethodPost, "/api/channels/6/favorite", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var response struct {
		ChannelID  int    `json:"channelId"`
		IsFavorite bool   `json:"isFavorite"`
		Message    string `json:"message"`
	}
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &response); decodeErr != nil {
		t.Fatal(decodeErr)
	}
	if response.ChannelID != 6 || !response.IsFavorite {
		t.Errorf("expected channel 6 marked favorite, got %+v", response)
	}
	if response.Message != "Channel added to favorites" {
		t.Errorf("unexpected message %q", response.Message)
	}

	recorder = doRequest(t, router, http.MethodPost, "/api/channels/6/favorite", "")
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &response); decodeErr != nil {
		t.Fatal(decodeErr)
	}
	if response.IsFavorite {
		t.Error("second toggle should remove the favorite")
	}
	if response.Message != "Channel removed from favorites" {
		t.Errorf("unexpected message %q", response.Message)
	}
}

func TestToggleFavoriteBadID(t *testing.T) {
	router := newTestRouter(newTestContext())

	if recorder := doRequest(t, router, http.MethodPost, "/api/channels/abc/favorite", ""); recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-numeric id, got %d", recorder.Code)
	}
	if recorder := doRequest(t, router, http.MethodPost, "/api/channels/999/favorite", ""); recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown channel, got %d", recorder.Code)
	}
}

func TestMarkRecent(t *testing.T) {
	cc := newTestContext()
	router := newTestRouter(cc)

	recorder := doRequest(t, router, http.MethodPost, "/api/channels/3/recent", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var response struct {
		ChannelID int    `json:"channelId"`
		Message   string `json:"message"`
	}
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &response); decodeErr != nil {
		t.Fatal(decodeErr)
	}
	if response.ChannelID != 3 {
		t.Errorf("expected channel 3, got %d", response.ChannelID)
	}
	if response.Message != "Channel added to recent list" {
		t.Errorf("unexpected message %q", response.Message)
	}

	if got := cc.Prefs.Recent(0); len(got) != 1 || got[0] != 3 {
		t.Errorf("expected recency list [3], got %v", got)
	}
}

func TestGetFavorites(t *testing.T) {
	cc := newTestContext()
	router := newTestRouter(cc)

	recorder := doRequest(t, router, http.MethodGet, "/api/favorites", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var response struct {
		FavoriteChannels []int `json:"favoriteChannels"`
		Count            int   `json:"count"`
	}
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &response); decodeErr != nil {
		t.Fatal(decodeErr)
	}
	if response.Count != 0 || len(response.FavoriteChannels) != 0 {
		t.Errorf("expected an empty favorites list, got %+v", response)
	}

	doRequest(t, router, http.MethodPost, "/api/channels/6/favorite", "")
	doRequest(t, router, http.MethodPost, "/api/channels/7/favorite", "")

	recorder = doRequest(t, router, http.MethodGet, "/api/favorites", "")
	if decodeErr := json.Unmarshal(recorder.Body.Bytes(), &response); decodeErr != nil {
		t.Fatal(decodeErr)
	}
	if response.Count != 2 || len(response.FavoriteChannels) != 2 {
		t.Errorf("expected 2 favorites, got %+v", response)
	}
}
