// Package gateway persists whole stores as named binary snapshots in the
// conference database.
package gateway

import (
	"database/sql"
	"encoding"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/gommon/log"
	_ "github.com/mattn/go-sqlite3"

	"uk.co.dudmesh.convene/internal/boot"
)

const (
	MessagesSnapshot = "messages"
	RequestsSnapshot = "requests"
)

type snapshot struct {
	Name    string    `db:"Name"`
	SavedAt time.Time `db:"SavedAt"`
	Payload []byte    `db:"Payload"`
}

type gateway struct {
	db *sqlx.DB
}

func Open(config *boot.Config) (*gateway, error) {
	if err := os.MkdirAll(config.DataDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", "file:"+config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	g := &gateway{db}
	if err := g.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return g, nil
}

func (g *gateway) Close() error {
	return g.db.Close()
}

func (g *gateway) createTables() error {
	_, err := g.db.Exec(`create table if not exists snapshot(
		Name    text not null primary key,
		SavedAt DATETIME not null,
		Payload blob not null
	)`)
	if err != nil {
		return fmt.Errorf("creating snapshot table: %w", err)
	}
	return nil
}

// Save replaces the snapshot stored under name.
func (g *gateway) Save(name string, v encoding.BinaryMarshaler) error {
	payload, err := v.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", name, err)
	}

	res, err := g.db.NamedExec(`insert into snapshot (Name, SavedAt, Payload)
		values(:Name, :SavedAt, :Payload)
		on conflict(Name) do update set SavedAt = excluded.SavedAt, Payload = excluded.Payload`,
		&snapshot{Name: name, SavedAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		return fmt.Errorf("saving %s: %w", name, err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	log.Debugf("saved %s snapshot (%d bytes)", name, len(payload))
	return nil
}

// Load fills v from the snapshot stored under name. It reports false, and
// leaves v untouched, when nothing has been saved under that name yet.
func (g *gateway) Load(name string, v encoding.BinaryUnmarshaler) (bool, error) {
	s := snapshot{}
	err := g.db.Get(&s, `select * from snapshot where Name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("fetching %s: %w", name, err)
	}

	if err := v.UnmarshalBinary(s.Payload); err != nil {
		return false, fmt.Errorf("unmarshalling %s: %w", name, err)
	}

	log.Debugf("loaded %s snapshot saved at %s", name, s.SavedAt.Format(time.RFC3339))
	return true, nil
}
