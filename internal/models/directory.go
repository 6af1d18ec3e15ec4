package models

// The static channel directory. The lineup is fixed: channel identity, display
// number, logo and the external guide provider id are not user configurable.
// Directory() hands out copies so callers can attach programs without
// clobbering each other.

type directoryEntry struct {
	ID           int
	Number       string
	Name         string
	Logo         string
	LogoURL      string
	EPGChannelID int
	Category     string
}

var channelDirectory = []directoryEntry{
	// Broadcast networks
	{1, "2.1", "FOX", "📺", "https://upload.wikimedia.org/wikipedia/commons/thumb/6/67/Fox_Broadcasting_Company_Logo.svg/200px-Fox_Broadcasting_Company_Logo.svg.png", 403858, "General"},
	{2, "4.1", "NBC", "🦚", "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3f/NBC_logo.svg/200px-NBC_logo.svg.png", 403619, "General"},
	{3, "7.1", "ABC", "🔵", "https://upload.wikimedia.org/wikipedia/commons/thumb/2/2f/ABC-2021-LOGO.svg/200px-ABC-2021-LOGO.svg.png", 403805, "General"},
	{4, "11.1", "CBS", "👁️", "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4e/CBS_logo.svg/200px-CBS_logo.svg.png", 403849, "General"},
	{5, "13.1", "PBS", "📚", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/19/PBS_logo.svg/200px-PBS_logo.svg.png", 403469, "General"},

	// Sports
	{6, "24.1", "ESPN", "⚽", "https://upload.wikimedia.org/wikipedia/commons/thumb/2/2f/ESPN_wordmark.svg/200px-ESPN_wordmark.svg.png", 403793, "Sports"},
	{13, "52.1", "ESPN2", "⚽", "https://upload.wikimedia.org/wikipedia/commons/thumb/2/2f/ESPN_wordmark.svg/200px-ESPN_wordmark.svg.png", 403821, "Sports"},
	{21, "84.1", "FS1", "🏈", "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e4/Fox_Sports_1_logo.svg/200px-Fox_Sports_1_logo.svg.png", 403574, "Sports"},
	{22, "88.1", "NFL Network", "🏈", "https://upload.wikimedia.org/wikipedia/commons/thumb/7/7a/NFL_Network_logo.svg/200px-NFL_Network_logo.svg.png", 403577, "Sports"},

	// News
	{7, "32.1", "CNN", "📰", "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b1/CNN.svg/200px-CNN.svg.png", 403819, "News"},
	{11, "45.1", "Fox News", "📰", "https://upload.wikimedia.org/wikipedia/commons/thumb/6/67/Fox_Broadcasting_Company_Logo.svg/200px-Fox_Broadcasting_Company_Logo.svg.png", 403903, "News"},
	{12, "48.1", "MSNBC", "📰", "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3f/NBC_logo.svg/200px-NBC_logo.svg.png", 403470, "News"},

	// Kids
	{14, "56.1", "Disney Channel", "🏰", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/da/Disney_Channel_logo.svg/200px-Disney_Channel_logo.svg.png", 403788, "Kids"},
	{15, "60.1", "Nickelodeon", "🧽", "https://upload.wikimedia.org/wikipedia/commons/thumb/7/7a/Nickelodeon_2009_logo.svg/200px-Nickelodeon_2009_logo.svg.png", 403620, "Kids"},
	{16, "64.1", "Cartoon Network", "🎨", "https://upload.wikimedia.org/wikipedia/commons/thumb/8/80/Cartoon_Network_2010_logo.svg/200px-Cartoon_Network_2010_logo.svg.png", 403461, "Kids"},
	{23, "92.1", "Disney Junior", "🧸", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/da/Disney_Channel_logo.svg/200px-Disney_Channel_logo.svg.png", 403512, "Kids"},

	// Entertainment
	{8, "35.1", "TNT", "💥", "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c3/TNT_Logo_2016.svg/200px-TNT_Logo_2016.svg.png", 403615, "TV Shows"},
	{9, "39.1", "TBS", "😄", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/de/TBS_logo_2016.svg/200px-TBS_logo_2016.svg.png", 403640, "TV Shows"},
	{10, "42.1", "USA", "🇺🇸", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d7/USA_Network_logo_%282016%29.svg/200px-USA_Network_logo_%282016%29.svg.png", 403626, "TV Shows"},
	{24, "96.1", "FX", "🎭", "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4d/FX_International_logo.svg/200px-FX_International_logo.svg.png", 403550, "TV Shows"},
	{25, "100.1", "AMC", "🎬", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/16/AMC_logo_2016.svg/200px-AMC_logo_2016.svg.png", 403558, "TV Shows"},

	// Movies
	{26, "104.1", "HBO", "🎭", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/de/HBO_logo.svg/200px-HBO_logo.svg.png", 403800, "Movies"},
	{27, "108.1", "Showtime", "🎬", "https://upload.wikimedia.org/wikipedia/commons/thumb/2/22/Showtime.svg/200px-Showtime.svg.png", 403801, "Movies"},
	{28, "112.1", "Starz", "⭐", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/11/Starz_2016.svg/200px-Starz_2016.svg.png", 403802, "Movies"},

	// Documentary
	{17, "68.1", "Discovery", "🔬", "https://upload.wikimedia.org/wikipedia/commons/thumb/2/27/Discovery_Channel_logo.svg/200px-Discovery_Channel_logo.svg.png", 403564, "Documentary"},
	{18, "72.1", "History", "🏛️", "https://upload.wikimedia.org/wikipedia/commons/thumb/0/01/History_%282021%29.svg/200px-History_%282021%29.svg.png", 403795, "Documentary"},
	{19, "76.1", "National Geographic", "🌍", "https://upload.wikimedia.org/wikipedia/commons/thumb/1/13/National_Geographic_Channel.svg/200px-National_Geographic_Channel.svg.png", 403578, "Documentary"},

	// Lifestyle
	{20, "80.1", "Food Network", "🍳", "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d9/Food_Network_logo.svg/200px-Food_Network_logo.svg.png", 403509, "Lifestyle"},
	{29, "116.1", "HGTV", "🏠", "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c5/HGTV_US_Logo_2015.svg/200px-HGTV_US_Logo_2015.svg.png", 403518, "Lifestyle"},
	{30, "120.1", "Bravo", "💃", "https://upload.wikimedia.org/wikipedia/commons/thumb/6/64/Bravo_logo.svg/200px-Bravo_logo.svg.png", 403555, "Lifestyle"},
}

// categoryChannelNames maps the fixed filter categories offered by the API to
// the channel names that belong to them.
var categoryChannelNames = map[string][]string{
	"Sports":   {"ESPN", "ESPN2", "FS1", "NFL Network"},
	"Kids":     {"Disney Channel", "Nickelodeon", "Cartoon Network"},
	"Movies":   {"HBO", "Showtime", "Starz", "AMC", "TNT", "TBS"},
	"TV Shows": {"FOX", "NBC", "ABC", "CBS", "USA", "FX", "Bravo"},
}

func (e directoryEntry) channel() Channel {
	logoURL := e.LogoURL
	epgID := e.EPGChannelID
	return Channel{
		ID:           e.ID,
		Number:       e.Number,
		Name:         e.Name,
		Logo:         e.Logo,
		LogoURL:      &logoURL,
		EPGChannelID: &epgID,
		Category:     e.Category,
		Programs:     []Program{},
	}
}

// Directory returns a fresh copy of every channel in the lineup.
func Directory() []Channel {
	channels := make([]Channel, 0, len(channelDirectory))
	for _, entry := range channelDirectory {
		channels = append(channels, entry.channel())
	}
	return channels
}

// DirectorySize returns the number of channels in the lineup.
func DirectorySize() int {
	return len(channelDirectory)
}

// DirectoryChannel returns the channel with the given id, or false when no
// such channel exists.
func DirectoryChannel(id int) (Channel, bool) {
	for _, entry := range channelDirectory {
		if entry.ID == id {
			return entry.channel(), true
		}
	}
	return Channel{}, false
}

// ChannelsByCategory returns the channels belonging to the given filter
// category. Unknown categories and categories that match no configured channel
// fall back to the full lineup.
func ChannelsByCategory(category string) []Channel {
	names, ok := categoryChannelNames[category]
	if !ok {
		return Directory()
	}

	nameSet := make(map[string]struct{}, len(names))
	for _, name := range names {
		nameSet[name] = struct{}{}
	}

	channels := make([]Channel, 0, len(names))
	for _, entry := range channelDirectory {
		if _, found := nameSet[entry.Name]; found {
			channels = append(channels, entry.channel())
		}
	}

	if len(channels) == 0 {
		return Directory()
	}

	return channels
}
