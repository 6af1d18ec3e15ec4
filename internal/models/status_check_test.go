package models

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func newTestCollection(t *testing.T) *APICollection {
	t.Helper()

	sql, openErr := sqlx.Open("sqlite3", ":memory:")
	if openErr != nil {
		t.Fatal(openErr)
	}
	t.Cleanup(func() { sql.Close() })

	if _, execErr := sql.Exec(`
CREATE TABLE IF NOT EXISTS status_check (
  id          TEXT PRIMARY KEY,
  client_name TEXT NOT NULL,
  timestamp   DATETIME NOT NULL
);`); execErr != nil {
		t.Fatal(execErr)
	}

	return NewAPICollection(context.Background(), sql)
}

func TestInsertStatusCheck(t *testing.T) {
	api := newTestCollection(t)

	check, insertErr := api.StatusCheck.InsertStatusCheck(StatusCheckCreate{ClientName: "living-room"})
	if insertErr != nil {
		t.Fatal(insertErr)
	}

	if check.ID == "" {
		t.Error("expected a generated id")
	}
	if check.ClientName != "living-room" {
		t.Errorf("expected client name living-room, got %q", check.ClientName)
	}
	if check.Timestamp.IsZero() {
		t.Error("expected a recorded timestamp")
	}
}

func TestGetAllStatusChecks(t *testing.T) {
	api := newTestCollection(t)

	for _, name := range []string{"bedroom", "kitchen", "den"} {
		if _, insertErr := api.StatusCheck.InsertStatusCheck(StatusCheckCreate{ClientName: name}); insertErr != nil {
			t.Fatal(insertErr)
		}
	}

	checks, checksErr := api.StatusCheck.GetAllStatusChecks()
	if checksErr != nil {
		t.Fatal(checksErr)
	}
	if len(checks) != 3 {
		t.Fatalf("expected 3 status checks, got %d", len(checks))
	}
}

func TestGetAllStatusChecksEmpty(t *testing.T) {
	api := newTestCollection(t)

	checks, checksErr := api.StatusCheck.GetAllStatusChecks()
	if checksErr != nil {
		t.Fatal(checksErr)
	}
	if len(checks) != 0 {
		t.Errorf("expected no status checks, got %d", len(checks))
	}
}
