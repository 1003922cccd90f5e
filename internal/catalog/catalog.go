// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog mirrors a written recipe index into a SQLite database
// for consumers that prefer relational access over the flat index file.
// It stores the same records the index holds and adds no search index of
// its own.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jimg-beep/recipes/internal/index"
	"github.com/jimg-beep/recipes/pkg/types"
)

// DefaultDBFile is the catalog database filename used when none is given.
const DefaultDBFile = "recipes_catalog.db"

// Store manages the recipe catalog database.
type Store struct {
	db *sql.DB
}

// IndexPath resolves the index file location for cfg.
func IndexPath(cfg types.CatalogConfig) string {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	file := cfg.IndexFile
	if file == "" {
		file = index.DefaultOutputFile
	}
	return filepath.Join(dir, file)
}

// NewStore opens (or creates) the catalog database for cfg and ensures the
// schema exists.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	file := cfg.DBFile
	if file == "" {
		file = DefaultDBFile
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, file))
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			id INTEGER PRIMARY KEY,
			filename TEXT NOT NULL,
			file_path TEXT NOT NULL,
			type TEXT NOT NULL,
			content TEXT NOT NULL,
			preview TEXT NOT NULL,
			size INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_type ON recipes(type)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// Rebuild replaces the catalog contents with recipes in one transaction,
// so rebuilding from the same index is idempotent and a failed rebuild
// leaves the previous contents intact.
func (s *Store) Rebuild(ctx context.Context, recipes []types.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipes"); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO recipes (id, filename, file_path, type, content, preview, size)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recipes {
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.Filename, r.FilePath, string(r.Type), r.Content, r.Preview, r.Size,
		); err != nil {
			return fmt.Errorf("inserting recipe %d (%s): %w", r.ID, r.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rebuild: %w", err)
	}
	return nil
}

// Count returns the number of cataloged recipes.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM recipes").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting recipes: %w", err)
	}
	return n, nil
}

// TypeStat aggregates the cataloged recipes of one document type.
type TypeStat struct {
	Type      types.FileType
	Count     int
	TotalSize int64
}

// StatsByType returns per-type record counts and combined source sizes,
// ordered by type name.
func (s *Store) StatsByType(ctx context.Context) ([]TypeStat, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT type, count(*), sum(size) FROM recipes GROUP BY type ORDER BY type")
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	defer rows.Close()

	var stats []TypeStat
	for rows.Next() {
		var st TypeStat
		var typ string
		if err := rows.Scan(&typ, &st.Count, &st.TotalSize); err != nil {
			return nil, fmt.Errorf("scanning stats row: %w", err)
		}
		st.Type = types.FileType(typ)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading stats rows: %w", err)
	}
	return stats, nil
}

// Lookup returns the cataloged recipe with the given id.
func (s *Store) Lookup(ctx context.Context, id int) (*types.Recipe, error) {
	var r types.Recipe
	var typ string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, filename, file_path, type, content, preview, size
		 FROM recipes WHERE id = ?`, id).
		Scan(&r.ID, &r.Filename, &r.FilePath, &typ, &r.Content, &r.Preview, &r.Size)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipe %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up recipe %d: %w", id, err)
	}
	r.Type = types.FileType(typ)
	return &r, nil
}
