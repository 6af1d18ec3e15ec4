// Package api provides the REST API for the guide service.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/gridline-tv/gridline/internal/context"
)

// ServeAPI starts up the gridline REST API.
func ServeAPI(cc *context.CContext) {
	cc.Log.Debugln("creating webserver routes")

	if viper.GetString("log.level") != logrus.DebugLevel.String() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newGin()

	apiGroup := router.Group("/api")

	apiGroup.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TV EPG API"})
	})

	apiGroup.GET("/channels", wrapContext(cc, getChannels))
	apiGroup.POST("/channels/:channelID/favorite", wrapContext(cc, toggleChannelFavorite))
	apiGroup.POST("/channels/:channelID/recent", wrapContext(cc, markChannelRecent))
	apiGroup.GET("/favorites", wrapContext(cc, getUserFavorites))

	apiGroup.POST("/status", wrapContext(cc, createStatusCheck))
	apiGroup.GET("/status", wrapContext(cc, getStatusChecks))

	cc.Log.Infoln("gridline is live and on the air!")
	cc.Log.Infof("Serving guide from http://%s/api/channels", viper.GetString("web.listen-address"))

	if err := router.Run(viper.GetString("web.listen-address")); err != nil {
		cc.Log.WithError(err).Panicln("Error starting up web server")
	}
}
