// Package context provides the gridline application context: the initialized
// guide provider, preference store, orchestrator and SQL access that get
// passed around the application.
package context

import (
	ctx "context"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // the SQLite driver
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/gridline-tv/gridline/internal/epg"
	"github.com/gridline-tv/gridline/internal/guideproviders"
	"github.com/gridline-tv/gridline/internal/models"
	"github.com/gridline-tv/gridline/internal/preferences"
)

// CContext is a context struct that gets passed around the application.
type CContext struct {
	API      *models.APICollection
	Ctx      ctx.Context
	Guide    *epg.Orchestrator
	Log      *logrus.Logger
	Prefs    *preferences.Store
	Provider guideproviders.GuideProvider

	RawSQL *sqlx.DB
}

// Copy returns a cloned version of the input CContext.
func (cc *CContext) Copy() *CContext {
	return &CContext{
		API:      cc.API,
		Ctx:      cc.Ctx,
		Guide:    cc.Guide,
		Log:      cc.Log,
		Prefs:    cc.Prefs,
		Provider: cc.Provider,
		RawSQL:   cc.RawSQL,
	}
}

// Close releases the provider connections and the database handle.
func (cc *CContext) Close() {
	if cc.Provider != nil {
		cc.Provider.Close()
	}
	if cc.RawSQL != nil {
		if closeErr := cc.RawSQL.Close(); closeErr != nil {
			cc.Log.WithError(closeErr).Warnln("error closing database")
		}
	}
}

const statusCheckSchema = `
CREATE TABLE IF NOT EXISTS status_check (
  id          TEXT PRIMARY KEY,
  client_name TEXT NOT NULL,
  timestamp   DATETIME NOT NULL
);`

// NewCContext returns an initialized CContext struct.
func NewCContext(log *logrus.Logger) (*CContext, error) {
	theCtx := ctx.Background()

	sql, dbErr := sqlx.Open("sqlite3", viper.GetString("database.file"))
	if dbErr != nil {
		log.WithError(dbErr).Panicln("Unable to open database")
	}

	if _, execErr := sql.Exec(`PRAGMA foreign_keys = ON;`); execErr != nil {
		log.WithError(execErr).Panicln("error enabling foreign keys")
	}

	if _, execErr := sql.Exec(statusCheckSchema); execErr != nil {
		log.WithError(execErr).Panicln("error ensuring status_check schema")
	}

	api := models.NewAPICollection(theCtx, sql)

	providerCfg := guideproviders.Configuration{
		Name:           "default",
		Provider:       viper.GetString("guide.provider"),
		DirectoryURL:   viper.GetString("guide.directory-url"),
		XMLGuideURL:    viper.GetString("guide.xml-guide-url"),
		ScheduleAPIURL: viper.GetString("guide.schedule-api-url"),
		APIKey:         viper.GetString("guide.api-key"),
		Country:        viper.GetString("guide.country"),
	}

	provider, providerErr := providerCfg.GetProvider()
	if providerErr != nil {
		log.WithError(providerErr).Panicln("error initializing guide provider")
	}

	log.Infof("Initialized guide provider %s", provider.Name())

	prefs := preferences.NewStore()
	guide := epg.NewOrchestrator(provider, prefs, viper.GetInt("guide.max-programs"), log)

	context := &CContext{
		API:      api,
		Ctx:      theCtx,
		Guide:    guide,
		Log:      log,
		Prefs:    prefs,
		Provider: provider,
		RawSQL:   sql,
	}

	log.Debugln("Context: Context build complete")

	return context, nil
}
