package epg

import (
	"fmt"
	"time"

	"github.com/gridline-tv/gridline/internal/models"
	"github.com/gridline-tv/gridline/internal/utils"
)

// Last-resort schedule: one program per hour for six hours, with a fixed
// title/genre rotation keyed by channel id.

type hourlyLineup struct {
	Titles []string
	Genres []string
}

var channelProgramming = map[int]hourlyLineup{
	1: { // FOX
		Titles: []string{"FOX & Friends", "The Five", "Tucker Carlson Tonight", "Hannity", "The Ingraham Angle", "Fox News @ Night"},
		Genres: []string{"News", "Talk", "News", "News", "News", "News"},
	},
	2: { // NBC
		Titles: []string{"Today Show", "NBC Nightly News", "The Tonight Show", "Saturday Night Live", "Meet the Press", "Dateline NBC"},
		Genres: []string{"News", "News", "Talk", "Comedy", "News", "Documentary"},
	},
	3: { // ABC
		Titles: []string{"Good Morning America", "World News Tonight", "The Bachelor", "Dancing with the Stars", "20/20", "Nightline"},
		Genres: []string{"News", "News", "Reality", "Reality", "Documentary", "News"},
	},
	4: { // CBS
		Titles: []string{"CBS This Morning", "CBS Evening News", "60 Minutes", "NCIS", "The Big Bang Theory", "Late Show"},
		Genres: []string{"News", "News", "Documentary", "Drama", "Comedy", "Talk"},
	},
	5: { // PBS
		Titles: []string{"PBS NewsHour", "Nature", "NOVA", "Masterpiece", "Antiques Roadshow", "American Experience"},
		Genres: []string{"News", "Documentary", "Documentary", "Drama", "Reality", "Documentary"},
	},
	6: { // ESPN
		Titles: []string{"SportsCenter", "NBA Tonight", "NFL Live", "College GameDay", "Baseball Tonight", "ESPN Films"},
		Genres: []string{"Sports", "Sports", "Sports", "Sports", "Sports", "Sports"},
	},
	7: { // CNN
		Titles: []string{"CNN Newsroom", "Anderson Cooper 360", "The Situation Room", "CNN Tonight", "New Day", "State of the Union"},
		Genres: []string{"News", "News", "News", "News", "News", "News"},
	},
	8: { // TNT
		Titles: []string{"NBA on TNT", "Law & Order", "The Closer", "Major Crimes", "Castle", "Supernatural"},
		Genres: []string{"Sports", "Drama", "Drama", "Drama", "Drama", "Drama"},
	},
	9: { // TBS
		Titles: []string{"Conan", "The Big Bang Theory", "Friends", "Family Guy", "American Dad", "Full Frontal"},
		Genres: []string{"Talk", "Comedy", "Comedy", "Comedy", "Comedy", "Comedy"},
	},
	10: { // USA
		Titles: []string{"WWE Monday Night Raw", "Suits", "Mr. Robot", "Queen of the South", "The Sinner", "Temptation Island"},
		Genres: []string{"Sports", "Drama", "Drama", "Drama", "Drama", "Reality"},
	},
}

var defaultProgramming = hourlyLineup{
	Titles: []string{"Morning Show", "Afternoon Movie", "Evening News", "Prime Time Drama", "Late Night Talk", "Overnight Movies"},
	Genres: []string{"Talk", "Movie", "News", "Drama", "Talk", "Movie"},
}

var genreDescriptions = map[string]string{
	"News":        "Stay informed with the latest breaking news, weather updates, and in-depth analysis on %s.",
	"Talk":        "Join the conversation on %s featuring celebrity interviews, current events, and entertainment.",
	"Sports":      "Catch all the action and highlights on %s with expert commentary and analysis.",
	"Drama":       "Watch the latest episode of %s, the critically acclaimed drama series.",
	"Comedy":      "Laugh along with %s, featuring the best in comedy entertainment.",
	"Reality":     "Don't miss %s, the reality show that's got everyone talking.",
	"Documentary": "Explore fascinating stories and learn something new on %s.",
	"Movie":       "Enjoy %s, a blockbuster movie presentation.",
}

const hourlySlots = 6

// GenerateHourly fabricates six back-to-back one-hour programs starting at the
// top of the current hour. It is the safety net beneath GenerateRealistic and
// is likewise deterministic given its inputs.
func GenerateHourly(channelID int, channelName string, now time.Time) []models.Program {
	eastern := utils.DisplayTimezone()
	localNow := now.In(eastern)
	base := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), localNow.Hour(), 0, 0, 0, eastern)

	lineup, found := channelProgramming[channelID]
	if !found {
		lineup = defaultProgramming
	}

	programs := make([]models.Program, 0, hourlySlots)

	for i := 0; i < hourlySlots; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		end := start.Add(time.Hour)

		title := lineup.Titles[i%len(lineup.Titles)]
		genre := lineup.Genres[i%len(lineup.Genres)]

		description, hasTemplate := genreDescriptions[genre]
		if hasTemplate {
			description = fmt.Sprintf(description, title)
		} else {
			description = fmt.Sprintf("Watch %s on %s.", title, channelName)
		}

		var episode *string
		if genre == "Drama" || genre == "Comedy" {
			label := fmt.Sprintf("Season %d Episode %d", 2024-channelID, i+1)
			episode = &label
		}

		rating := "TV-PG"
		if genre == "Drama" || genre == "News" {
			rating = "TV-14"
		}

		genreValue := genre

		programs = append(programs, models.Program{
			ID:          fmt.Sprintf("realistic_%d_%d", channelID, i),
			Title:       title,
			Episode:     episode,
			StartTime:   start,
			EndTime:     end,
			Description: &description,
			Rating:      &rating,
			ChannelID:   channelID,
			Genre:       &genreValue,
		})
	}

	return programs
}
