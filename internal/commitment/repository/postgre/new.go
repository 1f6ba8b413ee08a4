package postgre

import (
	"database/sql"
	"fmt"

	"ai-life-planner/internal/commitment/repository"
	"ai-life-planner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the commitment domain.
// The *sql.DB is expected to be opened with the pgx stdlib driver.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("commitment/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("commitment/repository/postgre.%s", method)
}
