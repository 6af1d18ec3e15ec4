package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// StatusCheckDB is a struct containing initialized the SQL connection as well as the APICollection.
type StatusCheckDB struct {
	SQL        *sqlx.DB
	Collection *APICollection
}

func newStatusCheckDB(
	SQL *sqlx.DB,
	Collection *APICollection,
) *StatusCheckDB {
	db := &StatusCheckDB{
		SQL:        SQL,
		Collection: Collection,
	}
	return db
}

func (db *StatusCheckDB) tableName() string {
	return "status_check"
}

// StatusCheck is a client-submitted health check record.
type StatusCheck struct {
	ID         string    `db:"id"         json:"id"`
	ClientName string    `db:"client_name" json:"clientName"`
	Timestamp  time.Time `db:"timestamp"  json:"timestamp"`
}

// StatusCheckCreate is the payload accepted when creating a StatusCheck.
type StatusCheckCreate struct {
	ClientName string `json:"clientName" binding:"required"`
}

// StatusCheckAPI contains all methods for the StatusCheck struct.
type StatusCheckAPI interface {
	InsertStatusCheck(payload StatusCheckCreate) (*StatusCheck, error)
	GetAllStatusChecks() ([]StatusCheck, error)
}

// InsertStatusCheck inserts a new StatusCheck into the database.
func (db *StatusCheckDB) InsertStatusCheck(payload StatusCheckCreate) (*StatusCheck, error) {
	check := StatusCheck{
		ID:         uuid.New().String(),
		ClientName: payload.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	_, err := db.SQL.NamedExec(`
    INSERT INTO status_check (id, client_name, timestamp)
    VALUES (:id, :client_name, :timestamp)`, check)
	if err != nil {
		return nil, fmt.Errorf("error when inserting status_check row: %s", err)
	}

	outputCheck := StatusCheck{}
	if getErr := db.SQL.Get(&outputCheck, "SELECT * FROM status_check WHERE id = $1", check.ID); getErr != nil {
		return nil, fmt.Errorf("error when selecting newly inserted row during status_check insert: %s", getErr)
	}
	return &outputCheck, nil
}

// GetAllStatusChecks returns the most recent status checks, capped at 1000.
func (db *StatusCheckDB) GetAllStatusChecks() ([]StatusCheck, error) {
	checks := make([]StatusCheck, 0)
	err := db.SQL.Select(&checks, `SELECT * FROM status_check ORDER BY timestamp DESC LIMIT 1000`)
	if err != nil {
		return nil, fmt.Errorf("error when selecting all status_check rows: %s", err)
	}
	return checks, nil
}
