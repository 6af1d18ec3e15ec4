// Package epg builds the program guide: it orchestrates the configured
// external source and fabricates deterministic synthetic schedules whenever
// real data is unavailable.
package epg

import (
	"fmt"
	"strings"
	"time"

	"github.com/gridline-tv/gridline/internal/models"
	"github.com/gridline-tv/gridline/internal/utils"
)

// Channel classification keyword sets. Matching is case-insensitive substring
// against the channel name; the first matching category wins, entertainment is
// the default.
var categoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{"news", []string{"news", "cnn", "bbc", "fox news", "msnbc"}},
	{"sports", []string{"espn", "sports", "fs1", "nfl", "nba"}},
	{"kids", []string{"disney", "nick", "cartoon", "kids"}},
	{"documentary", []string{"discovery", "history", "national geographic", "nature"}},
	{"lifestyle", []string{"food", "hgtv", "lifestyle", "cooking"}},
}

var programmingTemplates = map[string][]string{
	"news":          {"Breaking News", "Morning News", "Midday Update", "Evening Headlines", "Night Report", "Weather Update", "Live Coverage", "News Analysis"},
	"sports":        {"Sports News", "SportsCenter", "Live Game", "Sports Analysis", "Highlights", "Press Conference", "Sports Talk", "Game Replay"},
	"entertainment": {"Comedy Show", "Movie Premiere", "Drama Series", "Reality Show", "Talk Show", "Comedy Special", "Late Night", "Variety Show"},
	"kids":          {"Educational Show", "Morning Cartoons", "Animation Movie", "Kids Game Show", "Learning Time", "Bedtime Stories", "Adventure Time", "Family Movie"},
	"documentary":   {"Wildlife Special", "Nature Documentary", "History Special", "Science Explorer", "Travel Guide", "Biography", "Investigation", "Planet Earth"},
	"lifestyle":     {"Morning Show", "Cooking Show", "Home Improvement", "Fashion Week", "Health & Wellness", "DIY Projects", "Garden Life", "Design Tips"},
}

// Duration options (minutes) and allowed start minute marks per category.
// News runs on the hour or half hour; games can run three hours; kids
// programming turns over on quarter-hour boundaries.
var categoryDurations = map[string][]int{
	"news":          {30, 60},
	"sports":        {30, 90, 120, 180},
	"kids":          {15, 30, 60},
	"entertainment": {30, 60, 90, 120},
	"documentary":   {30, 60, 90},
	"lifestyle":     {30, 60, 90},
}

var categoryMinuteMarks = map[string][]int{
	"news":          {0, 30},
	"sports":        {0, 30},
	"kids":          {0, 15, 30, 45},
	"entertainment": {0, 30},
	"documentary":   {0, 30},
	"lifestyle":     {0, 30},
}

var cannedDescriptions = map[string]string{
	"Breaking News":      "Latest breaking news coverage with live reports from correspondents around the world.",
	"SportsCenter":       "Comprehensive sports coverage featuring highlights, analysis, and breaking sports news.",
	"Movie Premiere":     "Blockbuster movie premiere featuring action, drama, and entertainment for the whole family.",
	"Morning Cartoons":   "Fun-filled animated adventures perfect for kids to start their day with laughter.",
	"Nature Documentary": "Explore the wonders of the natural world with stunning wildlife photography and expert narration.",
	"Cooking Show":       "Learn culinary techniques and delicious recipes from professional chefs and cooking experts.",
	"Comedy Show":        "Hilarious comedy entertainment featuring stand-up performances and comedic sketches.",
	"Live Game":          "Live sports coverage with expert commentary and in-depth analysis of the game.",
	"Reality Show":       "Unscripted reality television featuring real people in dramatic and entertaining situations.",
}

const (
	syntheticWindowLead  = 3 * time.Hour
	syntheticWindowTotal = 8 * time.Hour
	syntheticMaxPrograms = 16
	syntheticMinMinutes  = 15
)

func titleCase(category string) string {
	if category == "" {
		return category
	}
	return strings.ToUpper(category[:1]) + category[1:]
}

// ClassifyChannel determines a channel's programming category from its name.
func ClassifyChannel(channelName string) string {
	lowered := strings.ToLower(channelName)
	for _, set := range categoryKeywords {
		for _, keyword := range set.Keywords {
			if strings.Contains(lowered, keyword) {
				return set.Category
			}
		}
	}
	return "entertainment"
}

// GenerateRealistic fabricates a plausible multi-hour schedule for a channel.
// It is a pure function of its inputs: the same (channelID, channelName, now)
// always yields the same programs. The window spans 8 hours starting 3 hours
// before now, rounded down to the top of the hour.
func GenerateRealistic(channelID int, channelName string, now time.Time) []models.Program {
	eastern := utils.DisplayTimezone()
	localNow := now.In(eastern)

	base := localNow.Add(-syntheticWindowLead)
	base = time.Date(base.Year(), base.Month(), base.Day(), base.Hour(), 0, 0, 0, eastern)
	windowEnd := base.Add(syntheticWindowTotal)

	category := ClassifyChannel(channelName)
	titles := programmingTemplates[category]
	durations := categoryDurations[category]
	minuteMarks := categoryMinuteMarks[category]

	programs := make([]models.Program, 0, syntheticMaxPrograms)
	current := base

	for index := 0; current.Before(windowEnd) && index < syntheticMaxPrograms; index++ {
		duration := time.Duration(durations[index%len(durations)]) * time.Minute

		var start time.Time
		if index == 0 {
			start = current
		} else {
			// Snap to the next allowed minute mark strictly after the previous
			// program's end, rolling into the next hour if none remains.
			preferred := minuteMarks[index%len(minuteMarks)]
			start = time.Date(current.Year(), current.Month(), current.Day(), current.Hour(), preferred, 0, 0, eastern)
			if !start.After(current) {
				start = start.Add(time.Hour)
			}
		}

		end := start.Add(duration)
		if end.After(windowEnd) {
			end = windowEnd
			if end.Sub(start) < syntheticMinMinutes*time.Minute {
				break
			}
		}

		title := titles[index%len(titles)]

		description, found := cannedDescriptions[title]
		if !found {
			description = fmt.Sprintf("Watch %s on %s. Quality programming with engaging content.", title, channelName)
		}

		var episode *string
		if category == "entertainment" || category == "kids" {
			label := fmt.Sprintf("Season %d Episode %d", 2024+(index%3), index+1)
			episode = &label
		}

		rating := "TV-PG"
		if category == "news" || category == "documentary" {
			rating = "TV-14"
		}

		genre := titleCase(category)

		programs = append(programs, models.Program{
			ID:          fmt.Sprintf("epg_%d_%d", channelID, index),
			Title:       title,
			Episode:     episode,
			StartTime:   start,
			EndTime:     end,
			Description: &description,
			Rating:      &rating,
			ChannelID:   channelID,
			Genre:       &genre,
		})

		current = end
	}

	return programs
}
