package db

import (
	"database/sql"
)

// Database abstracts the backing store so the rest of the service
// depends only on *sql.DB and tests can swap in an in-memory instance.
type Database interface {
	Connect() error
	Close() error
	DB() *sql.DB
}
