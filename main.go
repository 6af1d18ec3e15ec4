// gridline is a TV guide service: it exposes a channel lineup annotated with
// EPG data pulled from one of several external providers, falling back to
// synthetically generated schedules when real data is unavailable.
package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gridline-tv/gridline/internal/api"
	"github.com/gridline-tv/gridline/internal/context"
)

var log = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &logrus.TextFormatter{
		FullTimestamp: true,
	},
	Hooks: make(logrus.LevelHooks),
	Level: logrus.InfoLevel,
}

func main() {
	flag.String("web.listen-address", ":6078", "Address to listen on for the API")
	flag.String("log.level", logrus.InfoLevel.String(), "Only log messages with the given severity or above. One of: [debug, info, warn, error]")
	flag.Bool("log.requests", false, "Log HTTP requests")
	flag.String("database.file", "./gridline.db", "Path to the SQLite database used for status check records")
	flag.String("guide.provider", "xmlguide", "EPG source to use. One of: [directory, xmlguide, scheduleapi]")
	flag.String("guide.directory-url", "https://iptv-org.github.io/api/channels.json", "URL of the community channel directory")
	flag.String("guide.xml-guide-url", "https://epg.pw/api/epg.xml", "URL of the per-channel XML guide endpoint")
	flag.String("guide.schedule-api-url", "https://api.tvmaze.com/schedule", "URL of the date+country schedule endpoint")
	flag.String("guide.api-key", "", "Optional API key passed to the schedule endpoint")
	flag.String("guide.country", "US", "Country code passed to the schedule endpoint")
	flag.Int("guide.max-programs", 12, "Maximum number of programs attached to a channel")
	flag.Parse()

	if bindErr := viper.BindPFlags(flag.CommandLine); bindErr != nil {
		log.WithError(bindErr).Panicln("error binding flags to viper")
	}

	viper.SetEnvPrefix("GRIDLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	level, levelErr := logrus.ParseLevel(viper.GetString("log.level"))
	if levelErr != nil {
		log.WithError(levelErr).Panicln("error parsing log level")
	}
	log.SetLevel(level)

	log.Infoln("gridline is preparing the guide...")

	cc, ccErr := context.NewCContext(log)
	if ccErr != nil {
		log.WithError(ccErr).Panicln("error building application context")
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Infoln("shutting down, releasing provider connections")
		cc.Close()
		os.Exit(0)
	}()

	api.ServeAPI(cc)
}
