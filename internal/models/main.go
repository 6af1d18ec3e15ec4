// Package models contains the data structures served by the guide API along
// with the SQL-backed collection for status check records.
package models

import (
	"context"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

var log = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &logrus.TextFormatter{
		FullTimestamp: true,
	},
	Hooks: make(logrus.LevelHooks),
	Level: logrus.InfoLevel,
}

// APICollection is a struct containing all models.
type APICollection struct {
	StatusCheck StatusCheckAPI
}

// NewAPICollection returns an initialized APICollection struct.
func NewAPICollection(ctx context.Context, db *sqlx.DB) *APICollection {
	api := &APICollection{}

	api.StatusCheck = newStatusCheckDB(db, api)
	return api
}
