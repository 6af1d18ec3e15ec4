package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridline-tv/gridline/internal/context"
)

// getChannels returns the channel lineup with populated program guides. The
// optional category query parameter filters the lineup; unknown categories
// fall back to the full directory. Provider-side failures never surface here:
// affected channels carry synthetic schedules instead.
func getChannels(cc *context.CContext, c *gin.Context) {
	category := c.Query("category")

	channels := cc.Guide.Guide(c.Request.Context(), category)

	c.JSON(http.StatusOK, channels)
}
