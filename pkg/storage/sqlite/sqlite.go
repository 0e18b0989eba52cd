package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/AntonioSertic23/nextup/pkg/logger"
	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

// New opens the sqlite database at filePath and applies pending migrations.
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// sqlite allows one writer; a single pooled connection also keeps
	// :memory: databases from splitting per connection
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return SQLite{
		db: db,
	}, nil
}

func (s SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debugw("failed to init transaction", "error", err)
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debugw("failed to execute statement", "query", stmt.DebugSql(), "error", err)
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}

// timestampValue renders t the way sqlite stores CURRENT_TIMESTAMP so the
// driver can read it back as time.Time.
func timestampValue(t time.Time) sqlite.TimestampExpression {
	return sqlite.TimestampExp(sqlite.String(t.UTC().Format("2006-01-02 15:04:05")))
}
