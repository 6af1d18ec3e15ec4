package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gridline-tv/gridline/internal/context"
	"github.com/gridline-tv/gridline/internal/models"
)

// channelFromParam resolves the :channelID route parameter against the static
// directory. Unknown ids produce a client error; nothing here reaches the
// upstream providers.
func channelFromParam(c *gin.Context) (models.Channel, bool) {
	channelID, parseErr := strconv.Atoi(c.Param("channelID"))
	if parseErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channel id must be an integer"})
		return models.Channel{}, false
	}

	channel, found := models.DirectoryChannel(channelID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no channel with id " + c.Param("channelID")})
		return models.Channel{}, false
	}

	return channel, true
}

func toggleChannelFavorite(cc *context.CContext, c *gin.Context) {
	channel, ok := channelFromParam(c)
	if !ok {
		return
	}

	isFavorite := cc.Prefs.ToggleFavorite(channel.ID)

	message := "Channel removed from favorites"
	if isFavorite {
		message = "Channel added to favorites"
	}

	c.JSON(http.StatusOK, gin.H{
		"channelId":  channel.ID,
		"isFavorite": isFavorite,
		"message":    message,
	})
}

func markChannelRecent(cc *context.CContext, c *gin.Context) {
	channel, ok := channelFromParam(c)
	if !ok {
		return
	}

	cc.Prefs.MarkRecent(channel.ID)

	c.JSON(http.StatusOK, gin.H{
		"channelId": channel.ID,
		"message":   "Channel added to recent list",
	})
}

func getUserFavorites(cc *context.CContext, c *gin.Context) {
	favorites := cc.Prefs.Favorites()

	c.JSON(http.StatusOK, gin.H{
		"favoriteChannels": favorites,
		"count":            len(favorites),
	})
}
