package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridline-tv/gridline/internal/context"
	"github.com/gridline-tv/gridline/internal/models"
)

func createStatusCheck(cc *context.CContext, c *gin.Context) {
	var payload models.StatusCheckCreate
	if bindErr := c.BindJSON(&payload); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientName is required"})
		return
	}

	check, insertErr := cc.API.StatusCheck.InsertStatusCheck(payload)
	if insertErr != nil {
		log.WithError(insertErr).Errorln("error inserting status check")
		c.AbortWithError(http.StatusInternalServerError, insertErr)
		return
	}

	c.JSON(http.StatusOK, check)
}

func getStatusChecks(cc *context.CContext, c *gin.Context) {
	checks, checksErr := cc.API.StatusCheck.GetAllStatusChecks()
	if checksErr != nil {
		log.WithError(checksErr).Errorln("error getting status checks")
		c.AbortWithError(http.StatusInternalServerError, checksErr)
		return
	}

	c.JSON(http.StatusOK, checks)
}
