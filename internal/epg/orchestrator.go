package epg

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridline-tv/gridline/internal/guideproviders"
	"github.com/gridline-tv/gridline/internal/metrics"
	"github.com/gridline-tv/gridline/internal/models"
	"github.com/gridline-tv/gridline/internal/preferences"
	"github.com/gridline-tv/gridline/internal/utils"
)

// recentChannelLimit caps how many channels the Recent pseudo-category
// resolves to.
const recentChannelLimit = 8

// defaultMaxPrograms bounds the program list attached to each channel when no
// explicit limit is configured.
const defaultMaxPrograms = 12

// guideState names the stages a channel moves through while its schedule is
// assembled. Every failure transition lands on stateEmpty, and stateEmpty
// always advances to stateSynthetic: the guide never comes back without
// programs.
type guideState int

const (
	stateFetched guideState = iota
	stateNormalized
	stateEmpty
	stateSynthetic
)

// Orchestrator assembles the guide for a set of channels: it tries the
// configured source first and falls back to synthetic generation per channel
// on any failure or empty result.
type Orchestrator struct {
	Provider    guideproviders.GuideProvider
	Prefs       *preferences.Store
	MaxPrograms int
	Log         *logrus.Logger

	// NowFn is replaceable in tests; it defaults to time.Now.
	NowFn func() time.Time
}

// NewOrchestrator returns an Orchestrator wired to the given provider and
// preference store.
func NewOrchestrator(provider guideproviders.GuideProvider, prefs *preferences.Store, maxPrograms int, log *logrus.Logger) *Orchestrator {
	if maxPrograms <= 0 {
		maxPrograms = defaultMaxPrograms
	}
	if log == nil {
		log = &logrus.Logger{
			Out: os.Stderr,
			Formatter: &logrus.TextFormatter{
				FullTimestamp: true,
			},
			Hooks: make(logrus.LevelHooks),
			Level: logrus.InfoLevel,
		}
	}
	return &Orchestrator{
		Provider:    provider,
		Prefs:       prefs,
		MaxPrograms: maxPrograms,
		Log:         log,
	}
}

func (o *Orchestrator) now() time.Time {
	if o.NowFn != nil {
		return o.NowFn()
	}
	return time.Now()
}

// Guide returns the selected channels with their program lists populated.
// Provider-side failures never propagate; affected channels carry synthetic
// schedules instead.
func (o *Orchestrator) Guide(ctx context.Context, category string) []models.Channel {
	channels := o.selectChannels(category)
	now := o.now()

	for i := range channels {
		channels[i].Programs = o.channelPrograms(ctx, channels[i], now)
	}

	metrics.ExposedChannels.Set(float64(len(channels)))

	return channels
}

// selectChannels resolves a category filter to a channel list. "Recent" and
// "Favorites" are pseudo-categories answered by the preference store; an empty
// selection falls back to the full directory.
func (o *Orchestrator) selectChannels(category string) []models.Channel {
	switch category {
	case "":
		return models.Directory()
	case "Recent":
		return o.preferenceChannels(o.Prefs.Recent(recentChannelLimit))
	case "Favorites":
		return o.preferenceChannels(o.Prefs.Favorites())
	default:
		return models.ChannelsByCategory(category)
	}
}

func (o *Orchestrator) preferenceChannels(ids []int) []models.Channel {
	channels := make([]models.Channel, 0, len(ids))
	for _, id := range ids {
		if channel, found := models.DirectoryChannel(id); found {
			channels = append(channels, channel)
		}
	}
	if len(channels) == 0 {
		return models.Directory()
	}
	return channels
}

// channelPrograms walks the per-channel state machine. A panic anywhere in the
// pipeline is recovered here and treated as "zero usable programs" so the
// synthetic generator takes over.
func (o *Orchestrator) channelPrograms(ctx context.Context, channel models.Channel, now time.Time) (programs []models.Program) {
	defer func() {
		if r := recover(); r != nil {
			o.Log.WithFields(logrus.Fields{
				"channel":  channel.Name,
				"provider": o.Provider.Name(),
				"fault":    r,
			}).Errorln("internal fault while building guide, serving synthetic schedule")
			metrics.SyntheticFallbacks.WithLabelValues("internal_fault").Inc()
			programs = o.synthetic(channel, now)
		}
	}()

	var raw []guideproviders.RawEntry
	var usable []models.Program
	fallbackReason := "no_data"

	state := stateFetched
	for {
		switch state {
		case stateFetched:
			fetched, fetchErr := o.Provider.FetchRawSchedule(ctx, channel, now)
			if fetchErr != nil {
				o.Log.WithError(fetchErr).WithFields(logrus.Fields{
					"channel":  channel.Name,
					"provider": o.Provider.Name(),
				}).Debugln("guide source yielded no data")
				metrics.GuideFetches.WithLabelValues(o.Provider.Name(), "unavailable").Inc()
				fallbackReason = "source_unavailable"
				state = stateEmpty
				continue
			}
			metrics.GuideFetches.WithLabelValues(o.Provider.Name(), "ok").Inc()
			if len(fetched) == 0 {
				state = stateEmpty
				continue
			}
			raw = fetched
			state = stateNormalized

		case stateNormalized:
			usable = o.normalizeEntries(raw, channel, now)
			if len(usable) == 0 {
				state = stateEmpty
				continue
			}
			metrics.ProgramsReturned.WithLabelValues(o.Provider.Name()).Add(float64(len(usable)))
			return usable

		case stateEmpty:
			state = stateSynthetic

		case stateSynthetic:
			metrics.SyntheticFallbacks.WithLabelValues(fallbackReason).Inc()
			return o.synthetic(channel, now)
		}
	}
}

// normalizeEntries converts raw entries to programs, dropping malformed ones,
// then filters to programs still airing or upcoming, sorts ascending by start
// time, drops duplicate ids and truncates to the configured maximum.
func (o *Orchestrator) normalizeEntries(raw []guideproviders.RawEntry, channel models.Channel, now time.Time) []models.Program {
	localNow := now.In(utils.DisplayTimezone())

	programs := make([]models.Program, 0, len(raw))
	for _, entry := range raw {
		program, normalizeErr := o.Provider.Normalize(entry, channel.ID)
		if normalizeErr != nil {
			o.Log.WithError(normalizeErr).WithFields(logrus.Fields{
				"channel":  channel.Name,
				"provider": o.Provider.Name(),
			}).Debugln("skipping malformed guide entry")
			continue
		}
		if program.ChannelID != channel.ID {
			// Date+country feeds return the whole day's airings; keep only the
			// entries the network mapping attributed to this channel.
			continue
		}
		if !program.EndTime.After(localNow) {
			continue
		}
		programs = append(programs, program)
	}

	sort.SliceStable(programs, func(i, j int) bool {
		return programs[i].StartTime.Before(programs[j].StartTime)
	})

	seen := make(map[string]struct{}, len(programs))
	deduped := programs[:0]
	for _, program := range programs {
		if _, dup := seen[program.ID]; dup {
			continue
		}
		seen[program.ID] = struct{}{}
		deduped = append(deduped, program)
	}

	limit := o.MaxPrograms
	if limit <= 0 {
		limit = defaultMaxPrograms
	}
	if len(deduped) > limit {
		deduped = deduped[:limit]
	}

	return deduped
}

// synthetic fabricates a schedule for the channel, reaching for the hourly
// generator if the realistic one comes back empty.
func (o *Orchestrator) synthetic(channel models.Channel, now time.Time) []models.Program {
	programs := GenerateRealistic(channel.ID, channel.Name, now)
	if len(programs) == 0 {
		programs = GenerateHourly(channel.ID, channel.Name, now)
	}
	return programs
}
