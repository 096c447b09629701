package sqlite

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// schemaMu guards schema creation when several components open the same
// database during startup.
var schemaMu sync.Mutex

// Database wraps the SQL database connection and its connection pool
type Database struct {
	db   *sql.DB
	pool *Pool
}

// New creates a new database connection, initializes the schema and
// pre-opens the connection pool
func New(dbPath string, poolSize int, acquireTimeout time.Duration) (*Database, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	database := &Database{db: db}

	schemaMu.Lock()
	err = database.initSchema()
	schemaMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	pool, err := NewPool(db, poolSize, acquireTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize connection pool: %w", err)
	}
	database.pool = pool

	return database, nil
}

// Close closes the pool and the database connection
func (d *Database) Close() error {
	if d.pool != nil {
		d.pool.Close()
	}
	return d.db.Close()
}

// Acquire checks a connection out of the pool
func (d *Database) Acquire() (*sql.Conn, error) {
	return d.pool.Acquire()
}

// Release returns a connection to the pool
func (d *Database) Release(conn *sql.Conn) {
	d.pool.Release(conn)
}

// initSchema creates the database tables
func (d *Database) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pseudonym TEXT,
		submission_type TEXT,
		standard_selections TEXT,
		custom_inputs TEXT,
		latitude TEXT,
		longitude TEXT,
		venue_title TEXT,
		venue_address TEXT,
		additional_info TEXT,
		timestamp TEXT
	);

	CREATE TABLE IF NOT EXISTS user_preferences (
		pseudonym TEXT PRIMARY KEY,
		consent BOOLEAN,
		last_active TEXT,
		age TEXT,
		gender TEXT,
		occupation TEXT,
		time_in_turku TEXT,
		language TEXT DEFAULT 'en'
	);

	CREATE TABLE IF NOT EXISTS user_nicknames (
		external_id TEXT PRIMARY KEY,
		pseudonym TEXT NOT NULL,
		created_at TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_pseudonym ON submissions(pseudonym);
	CREATE INDEX IF NOT EXISTS idx_submissions_timestamp ON submissions(timestamp);
	`

	_, err := d.db.Exec(schema)
	return err
}
