package userstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"uk.co.dudmesh.convene/internal/boot"
	"uk.co.dudmesh.convene/internal/model"
)

type userstore struct {
	db *sqlx.DB
}

// Open connects to the conference database, creating the data directory
// and the user table on first use.
func Open(config *boot.Config) (*userstore, error) {
	if err := os.MkdirAll(config.DataDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", "file:"+config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &userstore{db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return store, nil
}

func (d *userstore) Close() error {
	return d.db.Close()
}

func (d *userstore) createTables() error {
	_, err := d.db.Exec(`create table if not exists user(
		ID text not null primary key,
		CreatedAt DATETIME not null,
		UpdatedAt DATETIME null,
		Status    tinyint not null default 0,
		Handle    text not null unique,
		Type      text not null,
		Password  text not null
	)`)
	if err != nil {
		return fmt.Errorf("creating user table: %w", err)
	}
	return nil
}

func (d *userstore) Create(user *model.User) error {
	res, err := d.db.NamedExec(`insert into user
		(ID, CreatedAt, Status, Handle, Type, Password)
		values(:ID, :CreatedAt, :Status, :Handle, :Type, :Password)`, user)

	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

func (d *userstore) FetchByHandle(handle model.Username) (*model.User, error) {
	user := &model.User{}
	err := d.db.Get(user, `select * from user where Handle = ?`, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func (d *userstore) Exists(handle model.Username) (bool, error) {
	var count int
	if err := d.db.Get(&count, `select count(*) from user where Handle = ?`, handle); err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	return count > 0, nil
}

// ListByType returns the handles of every user of the given type in sign up
// order.
func (d *userstore) ListByType(userType model.UserType) ([]model.Username, error) {
	handles := []model.Username{}
	err := d.db.Select(&handles, `select Handle from user where Type = ? order by CreatedAt, rowid`, userType)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return handles, nil
}
