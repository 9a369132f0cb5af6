package database

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/mysql"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/zeyes/config"
	"github.com/sisu-network/zeyes/types"
)

// Database journals every operation the daemon tracks so that state survives
// a restart and callers can ask about operations submitted earlier. Trackers
// themselves never touch the journal; the processor writes it on their
// behalf.
type Database interface {
	Init() error

	SaveOperation(op *types.TrackedOperation) error
	UpdateOperation(op *types.TrackedOperation) error
	LoadOperation(kind, identifier string) (*types.TrackedOperation, error)
	LoadUnfinishedOperations() ([]*types.TrackedOperation, error)
}

type DefaultDatabase struct {
	cfg config.Zeyes
	db  *sql.DB
}

type dbLogger struct {
}

func (logger *dbLogger) Printf(format string, v ...interface{}) {
	log.Infof(format, v...)
}

func (logger *dbLogger) Verbose() bool {
	return true
}

func NewDb(cfg config.Zeyes) Database {
	return &DefaultDatabase{
		cfg: cfg,
	}
}

func (d *DefaultDatabase) Init() error {
	if d.cfg.InMemory {
		return d.connectInMemory()
	}

	err := d.connect()
	if err != nil {
		log.Error("Failed to connect to DB. Err = ", err)
		return err
	}

	return d.doMigration()
}

func (d *DefaultDatabase) connect() error {
	host := d.cfg.DbHost
	if host == "" {
		return fmt.Errorf("DB host cannot be empty")
	}

	username := d.cfg.DbUsername
	password := d.cfg.DbPassword
	schema := d.cfg.DbSchema

	url := fmt.Sprintf("%s:%s@tcp(%s:%d)/", username, password, host, d.cfg.DbPort)
	database, err := sql.Open("mysql", url)
	if err != nil {
		return err
	}
	_, err = database.Exec("CREATE DATABASE IF NOT EXISTS " + schema)
	if err != nil {
		return err
	}
	database.Close()

	database, err = sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", username, password, host, d.cfg.DbPort, schema))
	if err != nil {
		return err
	}

	d.db = database
	log.Info("Db is connected successfully")
	return nil
}

func (d *DefaultDatabase) doMigration() error {
	driver, err := mysql.WithInstance(d.db, &mysql.Config{})
	if err != nil {
		return err
	}

	migrationDir, err := MigrationsTempDir()
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationDir,
		"mysql",
		driver,
	)
	if err != nil {
		return err
	}

	m.Log = &dbLogger{}
	m.Up()

	return nil
}

func (d *DefaultDatabase) connectInMemory() error {
	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return err
	}

	_, err = database.Exec(`CREATE TABLE IF NOT EXISTS operations (
		kind VARCHAR(16) NOT NULL,
		identifier VARCHAR(256) NOT NULL,
		serial_id BIGINT NOT NULL DEFAULT -1,
		state VARCHAR(16) NOT NULL,
		fail_reason TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (kind, identifier)
	)`)
	if err != nil {
		return err
	}

	d.db = database
	return nil
}

func (d *DefaultDatabase) SaveOperation(op *types.TrackedOperation) error {
	identifier := op.Identifier
	if len(identifier) > 256 {
		identifier = identifier[:256]
	}

	// REPLACE works on both mysql and sqlite.
	_, err := d.db.Exec(
		"REPLACE INTO operations (kind, identifier, serial_id, state, fail_reason) VALUES (?, ?, ?, ?, ?)",
		op.Kind, identifier, op.SerialID, op.State, op.FailReason)

	return err
}

func (d *DefaultDatabase) UpdateOperation(op *types.TrackedOperation) error {
	_, err := d.db.Exec(
		"UPDATE operations SET serial_id = ?, state = ?, fail_reason = ? WHERE kind = ? AND identifier = ?",
		op.SerialID, op.State, op.FailReason, op.Kind, op.Identifier)

	return err
}

func (d *DefaultDatabase) LoadOperation(kind, identifier string) (*types.TrackedOperation, error) {
	rows, err := d.db.Query(
		"SELECT kind, identifier, serial_id, state, fail_reason FROM operations WHERE kind = ? AND identifier = ?",
		kind, identifier)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	return scanOperation(rows)
}

func (d *DefaultDatabase) LoadUnfinishedOperations() ([]*types.TrackedOperation, error) {
	rows, err := d.db.Query(
		"SELECT kind, identifier, serial_id, state, fail_reason FROM operations WHERE state NOT IN (?, ?)",
		"verified", "failed")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ops := make([]*types.TrackedOperation, 0)
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, nil
}

func scanOperation(rows *sql.Rows) (*types.TrackedOperation, error) {
	op := &types.TrackedOperation{}
	err := rows.Scan(&op.Kind, &op.Identifier, &op.SerialID, &op.State, &op.FailReason)
	if err != nil {
		return nil, err
	}

	return op, nil
}
